package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"
	"github.com/trebuchet-org/xform/internal/domain/config"
	"golang.org/x/sync/errgroup"
)

// ResolveFilesParams contains parameters for resolving files
type ResolveFilesParams struct {
	Paths       []string
	Env         config.EnvMode
	Walk        bool // Treat Paths as directories and resolve every source file below them
	SkipIgnored bool
}

// ResolvedFile is the resolution of one input path
type ResolvedFile struct {
	Path      string
	Config    *config.ResolvedConfig
	Ignored   bool
	IgnoredBy config.IgnorePattern
}

// ResolveFilesResult contains the resolved files in input order
type ResolveFilesResult struct {
	Env   config.EnvMode
	Files []ResolvedFile

	// Single is set when exactly one explicit file was asked for, however many
	// files survive filtering.
	Single bool
}

// ResolveFiles resolves transform configuration for a batch of files
type ResolveFiles struct {
	resolver ConfigResolver
	lister   SourceFileLister
	cfg      *config.RuntimeConfig
	log      *slog.Logger
	progress ProgressSink
}

// NewResolveFiles creates a new ResolveFiles use case
func NewResolveFiles(resolver ConfigResolver, lister SourceFileLister, cfg *config.RuntimeConfig, log *slog.Logger, progress ProgressSink) *ResolveFiles {
	return &ResolveFiles{
		resolver: resolver,
		lister:   lister,
		cfg:      cfg,
		log:      log,
		progress: progress,
	}
}

// Run executes the resolve files use case
func (uc *ResolveFiles) Run(ctx context.Context, params ResolveFilesParams) (*ResolveFilesResult, error) {
	if len(params.Paths) == 0 {
		return nil, fmt.Errorf("no paths given")
	}

	env := params.Env
	if env == "" {
		env = uc.cfg.Env
	}

	paths := params.Paths
	if params.Walk {
		uc.progress.OnProgress(ctx, ProgressEvent{
			Stage:   "listing",
			Message: "Listing source files",
			Spinner: true,
		})
		var err error
		paths, err = uc.lister.ListSourceFiles(ctx, params.Paths)
		if err != nil {
			uc.progress.OnProgress(ctx, ProgressEvent{Stage: "failed"})
			uc.progress.Error(fmt.Sprintf("Could not list source files under %s", strings.Join(params.Paths, ", ")))
			return nil, fmt.Errorf("failed to list source files: %w", err)
		}
		uc.log.Debug("listed source files", "roots", params.Paths, "count", len(paths))
	}

	files := make([]ResolvedFile, len(paths))
	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   "resolving",
		Total:   len(paths),
		Message: fmt.Sprintf("Resolving %d files", len(paths)),
		Spinner: params.Walk,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(uc.cfg.Concurrency, 1))
	for i, p := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			pattern, ignored := uc.resolver.IsIgnored(p, env)
			files[i] = ResolvedFile{
				Path:      p,
				Config:    uc.resolver.Resolve(p, env),
				Ignored:   ignored,
				IgnoredBy: pattern,
			}
			return nil
		})
	}
	err := g.Wait()
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "completed", Current: len(paths), Total: len(paths)})
	if err != nil {
		return nil, err
	}

	if params.SkipIgnored {
		kept := lo.Filter(files, func(f ResolvedFile, _ int) bool {
			return !f.Ignored
		})
		if skipped := len(files) - len(kept); skipped > 0 {
			uc.progress.Info(fmt.Sprintf("Skipped %d ignored of %d files (env %s)", skipped, len(files), env))
		}
		files = kept
	}

	uc.log.Debug("resolved files", "count", len(files))

	return &ResolveFilesResult{
		Env:    env,
		Files:  files,
		Single: !params.Walk && len(params.Paths) == 1,
	}, nil
}
