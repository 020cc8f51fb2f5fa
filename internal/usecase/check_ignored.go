package usecase

import (
	"context"

	"github.com/trebuchet-org/xform/internal/domain/config"
)

// IgnoreVerdict says whether one path is excluded from transformation
type IgnoreVerdict struct {
	Path      string
	Ignored   bool
	IgnoredBy config.IgnorePattern
}

// CheckIgnoredResult contains verdicts in input order
type CheckIgnoredResult struct {
	Env      config.EnvMode
	Verdicts []IgnoreVerdict
}

// CheckIgnored is a use case for checking paths against the ignore rule
type CheckIgnored struct {
	resolver ConfigResolver
	cfg      *config.RuntimeConfig
}

// NewCheckIgnored creates a new CheckIgnored use case
func NewCheckIgnored(resolver ConfigResolver, cfg *config.RuntimeConfig) *CheckIgnored {
	return &CheckIgnored{
		resolver: resolver,
		cfg:      cfg,
	}
}

// Run executes the check ignored use case
func (uc *CheckIgnored) Run(ctx context.Context, paths []string, env config.EnvMode) (*CheckIgnoredResult, error) {
	if env == "" {
		env = uc.cfg.Env
	}

	result := &CheckIgnoredResult{Env: env}
	for _, p := range paths {
		pattern, ignored := uc.resolver.IsIgnored(p, env)
		result.Verdicts = append(result.Verdicts, IgnoreVerdict{
			Path:      p,
			Ignored:   ignored,
			IgnoredBy: pattern,
		})
	}

	return result, nil
}
