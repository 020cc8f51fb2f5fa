package usecase

import (
	"context"
	"fmt"

	"github.com/trebuchet-org/xform/internal/config"
	domainconfig "github.com/trebuchet-org/xform/internal/domain/config"
)

// ExplainFileParams contains parameters for explaining a file
type ExplainFileParams struct {
	Path string
	Env  domainconfig.EnvMode
	// PickFrom is the directory offered for interactive selection when Path is empty
	PickFrom string
}

// ExplainFileResult shows how a file's configuration was assembled
type ExplainFileResult struct {
	Path       string
	Normalized string
	Env        domainconfig.EnvMode
	Matches    []config.OverrideMatch
	Config     *domainconfig.ResolvedConfig
	Ignored    bool
	IgnoredBy  domainconfig.IgnorePattern
}

// ExplainFile is a use case for explaining the resolution of a single file
type ExplainFile struct {
	resolver ConfigResolver
	lister   SourceFileLister
	selector FileSelector
	cfg      *domainconfig.RuntimeConfig
}

// NewExplainFile creates a new ExplainFile use case
func NewExplainFile(resolver ConfigResolver, lister SourceFileLister, selector FileSelector, cfg *domainconfig.RuntimeConfig) *ExplainFile {
	return &ExplainFile{
		resolver: resolver,
		lister:   lister,
		selector: selector,
		cfg:      cfg,
	}
}

// Run executes the explain file use case
func (uc *ExplainFile) Run(ctx context.Context, params ExplainFileParams) (*ExplainFileResult, error) {
	env := params.Env
	if env == "" {
		env = uc.cfg.Env
	}

	path := params.Path
	if path == "" {
		var err error
		path, err = uc.pickFile(ctx, params.PickFrom)
		if err != nil {
			return nil, err
		}
	}

	pattern, ignored := uc.resolver.IsIgnored(path, env)

	return &ExplainFileResult{
		Path:       path,
		Normalized: config.NormalizePath(uc.cfg.ProjectRoot, path),
		Env:        env,
		Matches:    uc.resolver.MatchOverrides(path),
		Config:     uc.resolver.Resolve(path, env),
		Ignored:    ignored,
		IgnoredBy:  pattern,
	}, nil
}

func (uc *ExplainFile) pickFile(ctx context.Context, dir string) (string, error) {
	if dir == "" {
		dir = "."
	}

	files, err := uc.lister.ListSourceFiles(ctx, []string{dir})
	if err != nil {
		return "", fmt.Errorf("failed to list source files: %w", err)
	}
	if len(files) == 0 {
		return "", fmt.Errorf("no source files found in %s", dir)
	}

	return uc.selector.SelectFile(ctx, files, "Select a file to explain")
}
