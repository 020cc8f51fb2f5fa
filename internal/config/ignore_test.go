package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/xform/internal/domain/config"
)

func TestIgnoreMatcherDefaultPatterns(t *testing.T) {
	m, err := NewIgnoreMatcher(DefaultIgnoreRule().Patterns)
	require.NoError(t, err)

	tests := []struct {
		path    string
		ignored bool
		by      config.IgnorePattern
	}{
		{"packages/web/src/Link.test.ts", true, TestFilePattern},
		{"packages/web/src/Link.test.js", true, TestFilePattern},
		{"packages/web/src/Link.test.tsx", true, TestFilePattern},
		{"packages/web/src/__tests__/Link.tsx", true, "**/__tests__"},
		{"__tests__/setup.js", true, "**/__tests__"},
		{"packages/web/src/__mocks__/fs.js", true, "**/__mocks__"},
		{"packages/web/src/__tests__/__snapshots__/Link.test.tsx.snap", true, TestFilePattern},
		{"packages/web/src/__snapshots__/x.snap", true, "**/__snapshots__"},
		{"packages/web/src/Link.tsx", false, ""},
		{"packages/web/src/testing.ts", false, ""},
		{"packages/web/src/my__tests__/a.ts", false, ""},
		{`packages\web\src\__mocks__\fs.js`, true, "**/__mocks__"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			by, ignored := m.Match(tt.path)
			assert.Equal(t, tt.ignored, ignored)
			assert.Equal(t, tt.by, by)
		})
	}
}

func TestIgnoreMatcherEmpty(t *testing.T) {
	m, err := NewIgnoreMatcher([]config.IgnorePattern{})
	require.NoError(t, err)

	_, ignored := m.Match("packages/web/src/__tests__/Link.tsx")
	assert.False(t, ignored)
}

func TestIgnoreMatcherInvalid(t *testing.T) {
	_, err := NewIgnoreMatcher([]config.IgnorePattern{"/(unclosed/"})
	assert.Error(t, err)

	_, err = NewIgnoreMatcher([]config.IgnorePattern{"packages/[web"})
	assert.Error(t, err)
}

func TestIgnorePattern(t *testing.T) {
	assert.True(t, config.IgnorePattern(`/\.test\.(js|ts)/`).IsRegexp())
	assert.Equal(t, `\.test\.(js|ts)`, config.IgnorePattern(`/\.test\.(js|ts)/`).Expr())
	assert.False(t, config.IgnorePattern("**/__tests__").IsRegexp())
	assert.False(t, config.IgnorePattern("/").IsRegexp())
	assert.Equal(t, "**/__tests__", config.IgnorePattern("**/__tests__").Expr())
}
