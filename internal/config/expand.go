package config

import (
	"fmt"
	"regexp"

	"github.com/trebuchet-org/xform/internal/domain"
	"github.com/trebuchet-org/xform/internal/domain/config"
)

// Placeholders that may appear in preset and plugin option strings
const (
	PlaceholderRuntimeVersion  = "RUNTIME_VERSION"
	PlaceholderPolyfillVersion = "POLYFILL_VERSION"
)

var placeholderPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// ExpandVersions substitutes the derived versions into every option string of
// the base and override references. It runs once at startup so the resolver
// only ever sees final option values.
func ExpandVersions(cfg *config.TransformConfig, versions config.DerivedVersions, source string) error {
	values := map[string]string{
		PlaceholderRuntimeVersion:  versions.RuntimeVersion,
		PlaceholderPolyfillVersion: versions.PolyfillVersion,
	}

	expand := func(refs []config.Ref) error {
		for i := range refs {
			for key, value := range refs[i].Options {
				expanded, err := expandValue(value, values)
				if err != nil {
					return &domain.ConfigError{
						Source: source,
						Reason: fmt.Sprintf("option %s of %s", key, refs[i].Name),
						Err:    err,
					}
				}
				refs[i].Options[key] = expanded
			}
		}
		return nil
	}

	if err := expand(cfg.Base.Presets); err != nil {
		return err
	}
	if err := expand(cfg.Base.Plugins); err != nil {
		return err
	}
	for _, rule := range cfg.Overrides {
		if err := expand(rule.Presets); err != nil {
			return err
		}
		if err := expand(rule.Plugins); err != nil {
			return err
		}
	}
	return nil
}

func expandValue(v any, values map[string]string) (any, error) {
	switch val := v.(type) {
	case string:
		return expandString(val, values)
	case map[string]any:
		for k, item := range val {
			expanded, err := expandValue(item, values)
			if err != nil {
				return nil, err
			}
			val[k] = expanded
		}
		return val, nil
	case []any:
		for i, item := range val {
			expanded, err := expandValue(item, values)
			if err != nil {
				return nil, err
			}
			val[i] = expanded
		}
		return val, nil
	default:
		return v, nil
	}
}

func expandString(s string, values map[string]string) (string, error) {
	var unknown string
	out := placeholderPattern.ReplaceAllStringFunc(s, func(match string) string {
		name := placeholderPattern.FindStringSubmatch(match)[1]
		value, ok := values[name]
		if !ok {
			unknown = name
			return match
		}
		return value
	})
	if unknown != "" {
		return "", fmt.Errorf("unknown placeholder ${%s}", unknown)
	}
	return out, nil
}
