package usecase

import (
	"context"

	"github.com/samber/lo"
	"github.com/trebuchet-org/xform/internal/domain/config"
)

// OverrideSummary describes one override rule for display
type OverrideSummary struct {
	Index       int
	Label       string
	Test        []string
	Targets     config.Targets // nil when the rule keeps inherited targets
	Assumptions map[string]bool
	Presets     []string
	Plugins     []string
}

// ListOverridesResult contains the base config and its overrides in order
type ListOverridesResult struct {
	Base         config.BaseConfig
	Overrides    []OverrideSummary
	Ignore       []config.IgnorePattern
	ConfigSource string
	ConfigPath   string
}

// ListOverrides is a use case for listing the static rule set
type ListOverrides struct {
	resolver ConfigResolver
	cfg      *config.RuntimeConfig
}

// NewListOverrides creates a new ListOverrides use case
func NewListOverrides(resolver ConfigResolver, cfg *config.RuntimeConfig) *ListOverrides {
	return &ListOverrides{
		resolver: resolver,
		cfg:      cfg,
	}
}

// Run executes the list overrides use case
func (uc *ListOverrides) Run(ctx context.Context) (*ListOverridesResult, error) {
	refNames := func(r config.Ref, _ int) string { return r.Name }

	summaries := lo.Map(uc.resolver.Overrides(), func(rule config.OverrideRule, i int) OverrideSummary {
		return OverrideSummary{
			Index:       i,
			Label:       rule.Label(i),
			Test:        rule.Test,
			Targets:     rule.Targets,
			Assumptions: rule.Assumptions,
			Presets:     lo.Map(rule.Presets, refNames),
			Plugins:     lo.Map(rule.Plugins, refNames),
		}
	})

	return &ListOverridesResult{
		Base:         uc.cfg.Transform.Base,
		Overrides:    summaries,
		Ignore:       uc.cfg.Transform.Ignore.Patterns,
		ConfigSource: uc.cfg.ConfigSource,
		ConfigPath:   uc.cfg.ConfigPath,
	}, nil
}
