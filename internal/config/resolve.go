package config

import (
	"github.com/bmatcuk/doublestar/v4"
	"github.com/samber/lo"
	"github.com/trebuchet-org/xform/internal/domain"
	"github.com/trebuchet-org/xform/internal/domain/config"
)

// OverrideMatch records which predicate of which override rule matched a path
type OverrideMatch struct {
	Index     int
	Label     string
	Predicate string
}

type compiledOverride struct {
	rule       config.OverrideRule
	label      string
	predicates [][]string
}

// Resolver computes the configuration for individual files from a static rule
// set. It holds no mutable state after construction and is safe for concurrent use.
type Resolver struct {
	root      string
	base      config.BaseConfig
	overrides []compiledOverride
	ignore    config.IgnoreRule
	matcher   *IgnoreMatcher
}

// NewResolver compiles the override predicates and ignore patterns of cfg.
// root is the directory override paths are written relative to.
func NewResolver(cfg *config.TransformConfig, root string) (*Resolver, error) {
	if cfg == nil {
		return nil, &domain.ConfigError{Source: config.ConfigSourceBuiltin, Reason: "base configuration is missing"}
	}

	matcher, err := NewIgnoreMatcher(cfg.Ignore.Patterns)
	if err != nil {
		return nil, &domain.ConfigError{Source: root, Reason: "invalid ignore pattern", Err: err}
	}

	r := &Resolver{
		root:    root,
		base:    cfg.Base,
		ignore:  cfg.Ignore,
		matcher: matcher,
	}

	for i, rule := range cfg.Overrides {
		r.overrides = append(r.overrides, compiledOverride{
			rule:  rule,
			label: rule.Label(i),
			predicates: lo.Map(rule.Test, func(p string, _ int) []string {
				return splitSegments(NormalizePath(root, p))
			}),
		})
	}

	return r, nil
}

// ProvideResolver creates a Resolver for Wire dependency injection
func ProvideResolver(cfg *config.RuntimeConfig) (*Resolver, error) {
	return NewResolver(cfg.Transform, cfg.ProjectRoot)
}

// Root returns the directory override paths are resolved against
func (r *Resolver) Root() string {
	return r.root
}

// Resolve returns the configuration for filePath under env. The base is copied,
// then every matching override is applied in declaration order: targets are
// replaced (the last matching rule wins), presets and plugins are appended and
// assumptions are merged.
func (r *Resolver) Resolve(filePath string, env config.EnvMode) *config.ResolvedConfig {
	resolved := &config.ResolvedConfig{
		Targets:          r.base.Targets.Clone(),
		Assumptions:      make(map[string]bool, len(r.base.Assumptions)),
		Presets:          config.CloneRefs(r.base.Presets),
		Plugins:          config.CloneRefs(r.base.Plugins),
		Ignore:           r.ignore.ForEnv(env),
		MatchedOverrides: []string{},
	}
	for k, v := range r.base.Assumptions {
		resolved.Assumptions[k] = v
	}

	segments := splitSegments(NormalizePath(r.root, filePath))
	for _, o := range r.overrides {
		if _, ok := o.match(segments); !ok {
			continue
		}

		if o.rule.Targets != nil {
			resolved.Targets = o.rule.Targets.Clone()
		}
		for k, v := range o.rule.Assumptions {
			resolved.Assumptions[k] = v
		}
		resolved.Presets = append(resolved.Presets, config.CloneRefs(o.rule.Presets)...)
		resolved.Plugins = append(resolved.Plugins, config.CloneRefs(o.rule.Plugins)...)
		resolved.MatchedOverrides = append(resolved.MatchedOverrides, o.label)
	}

	return resolved
}

// MatchOverrides lists the override rules that apply to filePath, in order
func (r *Resolver) MatchOverrides(filePath string) []OverrideMatch {
	segments := splitSegments(NormalizePath(r.root, filePath))
	matches := []OverrideMatch{}
	for i, o := range r.overrides {
		if idx, ok := o.match(segments); ok {
			matches = append(matches, OverrideMatch{
				Index:     i,
				Label:     o.label,
				Predicate: o.rule.Test[idx],
			})
		}
	}
	return matches
}

// IsIgnored reports whether filePath is excluded from transformation under env,
// and by which pattern.
func (r *Resolver) IsIgnored(filePath string, env config.EnvMode) (config.IgnorePattern, bool) {
	if env.IsTest() {
		return "", false
	}
	return r.matcher.Match(NormalizePath(r.root, filePath))
}

// Overrides returns the override rules in declaration order
func (r *Resolver) Overrides() []config.OverrideRule {
	return lo.Map(r.overrides, func(o compiledOverride, _ int) config.OverrideRule {
		return o.rule
	})
}

// match returns the index of the first predicate that is a segment prefix of path
func (o compiledOverride) match(path []string) (int, bool) {
	for i, predicate := range o.predicates {
		if matchPrefix(predicate, path) {
			return i, true
		}
	}
	return -1, false
}

// matchPrefix reports whether the predicate segments match the leading segments
// of path. "packages/router" matches "packages/router/src/a.ts" but not
// "packages/routerx". Segments may hold glob syntax; "**" spans any number of them.
func matchPrefix(predicate, path []string) bool {
	if len(predicate) == 0 {
		return true
	}
	if predicate[0] == "**" {
		for i := 0; i <= len(path); i++ {
			if matchPrefix(predicate[1:], path[i:]) {
				return true
			}
		}
		return false
	}
	if len(path) == 0 {
		return false
	}
	ok, err := doublestar.Match(predicate[0], path[0])
	if err != nil || !ok {
		return false
	}
	return matchPrefix(predicate[1:], path[1:])
}
