package config

import (
	"fmt"
	"regexp"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/trebuchet-org/xform/internal/domain/config"
)

type compiledPattern struct {
	raw  config.IgnorePattern
	re   *regexp.Regexp
	glob string
}

// IgnoreMatcher decides whether a normalized path is excluded by a pattern list.
// Regular expressions match anywhere in the path; globs match the path itself or
// anything below a matching directory.
type IgnoreMatcher struct {
	patterns []compiledPattern
}

// NewIgnoreMatcher compiles patterns. An empty list ignores nothing.
func NewIgnoreMatcher(patterns []config.IgnorePattern) (*IgnoreMatcher, error) {
	m := &IgnoreMatcher{}
	for _, p := range patterns {
		cp := compiledPattern{raw: p}
		if p.IsRegexp() {
			re, err := regexp.Compile(p.Expr())
			if err != nil {
				return nil, fmt.Errorf("%s: %w", p, err)
			}
			cp.re = re
		} else {
			glob := NormalizePath("", string(p))
			if !doublestar.ValidatePattern(glob) {
				return nil, fmt.Errorf("%s: invalid glob", p)
			}
			cp.glob = glob
		}
		m.patterns = append(m.patterns, cp)
	}
	return m, nil
}

// Match returns the first pattern that excludes p
func (m *IgnoreMatcher) Match(p string) (config.IgnorePattern, bool) {
	p = NormalizePath("", p)
	for _, cp := range m.patterns {
		if cp.matches(p) {
			return cp.raw, true
		}
	}
	return "", false
}

func (cp compiledPattern) matches(p string) bool {
	if cp.re != nil {
		return cp.re.MatchString(p)
	}
	if ok, _ := doublestar.Match(cp.glob, p); ok {
		return true
	}
	ok, _ := doublestar.Match(cp.glob+"/**", p)
	return ok
}
