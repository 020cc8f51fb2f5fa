package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/trebuchet-org/xform/internal/domain"
	"github.com/trebuchet-org/xform/internal/domain/config"
)

// ValidateTransformConfig checks the static rule set before any file is resolved
func ValidateTransformConfig(cfg *config.TransformConfig, source string) error {
	if cfg == nil {
		return &domain.ConfigError{Source: source, Reason: "base configuration is missing"}
	}

	fail := func(format string, args ...any) error {
		return &domain.ConfigError{Source: source, Reason: fmt.Sprintf(format, args...)}
	}

	if len(cfg.Base.Targets) == 0 {
		return fail("base configuration declares no targets")
	}
	if err := validateTargets(cfg.Base.Targets); err != nil {
		return fail("base targets: %v", err)
	}
	if err := validateRefs(cfg.Base.Presets); err != nil {
		return fail("base presets: %v", err)
	}
	if err := validateRefs(cfg.Base.Plugins); err != nil {
		return fail("base plugins: %v", err)
	}

	for i, rule := range cfg.Overrides {
		label := rule.Label(i)
		if len(rule.Test) == 0 {
			return fail("override %s has no test paths", label)
		}
		for _, predicate := range rule.Test {
			if strings.TrimSpace(predicate) == "" {
				return fail("override %s has an empty test path", label)
			}
			for _, segment := range splitSegments(normalizeSlashes(predicate)) {
				if !doublestar.ValidatePattern(segment) {
					return fail("override %s: invalid test path %q", label, predicate)
				}
			}
		}
		if rule.Targets != nil {
			if len(rule.Targets) == 0 {
				return fail("override %s sets empty targets", label)
			}
			if err := validateTargets(rule.Targets); err != nil {
				return fail("override %s targets: %v", label, err)
			}
		}
		if err := validateRefs(rule.Presets); err != nil {
			return fail("override %s presets: %v", label, err)
		}
		if err := validateRefs(rule.Plugins); err != nil {
			return fail("override %s plugins: %v", label, err)
		}
	}

	for _, p := range cfg.Ignore.Patterns {
		if err := validateIgnorePattern(p); err != nil {
			return fail("ignore pattern %q: %v", p, err)
		}
	}

	for name, value := range map[string]string{
		"versions.namespace":        cfg.Versions.Namespace,
		"versions.runtime_package":  cfg.Versions.RuntimePackage,
		"versions.polyfill_package": cfg.Versions.PolyfillPackage,
	} {
		if value == "" {
			return fail("%s must not be empty", name)
		}
	}

	return nil
}

func validateTargets(targets config.Targets) error {
	for runtime, constraint := range targets {
		if runtime == "" {
			return fmt.Errorf("empty runtime identifier")
		}
		if len(constraint) == 0 {
			return fmt.Errorf("%s has no constraint", runtime)
		}
		for _, c := range constraint {
			if strings.TrimSpace(c) == "" {
				return fmt.Errorf("%s has an empty constraint", runtime)
			}
		}
	}
	return nil
}

func validateRefs(refs []config.Ref) error {
	for i, ref := range refs {
		if strings.TrimSpace(ref.Name) == "" {
			return fmt.Errorf("entry %d has no name", i)
		}
	}
	return nil
}

func validateIgnorePattern(p config.IgnorePattern) error {
	if p.Expr() == "" {
		return fmt.Errorf("empty pattern")
	}
	if p.IsRegexp() {
		_, err := regexp.Compile(p.Expr())
		return err
	}
	if !doublestar.ValidatePattern(string(p)) {
		return fmt.Errorf("invalid glob")
	}
	return nil
}
