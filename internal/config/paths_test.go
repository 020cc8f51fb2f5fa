package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		root string
		path string
		want string
	}{
		{"", "./packages/web/src/index.ts", "packages/web/src/index.ts"},
		{"", "packages/web/", "packages/web"},
		{"", `.\packages\web\src`, "packages/web/src"},
		{"/repo", "/repo/packages/web/a.ts", "packages/web/a.ts"},
		{"/repo/", "/repo/packages/web/a.ts", "packages/web/a.ts"},
		{"/repo", "/repo", "."},
		{"/repo", "/repository/a.ts", "/repository/a.ts"},
		{`C:\work\repo`, `C:\work\repo\packages\web\a.ts`, "packages/web/a.ts"},
		{"/repo", "packages/../packages/web/a.ts", "packages/web/a.ts"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePath(tt.root, tt.path))
		})
	}
}

func TestSplitSegments(t *testing.T) {
	assert.Nil(t, splitSegments("."))
	assert.Equal(t, []string{"packages", "web"}, splitSegments("packages/web"))
	assert.Equal(t, []string{"", "repo", "a.ts"}, splitSegments("/repo/a.ts"))
}

func TestMatchPrefix(t *testing.T) {
	assert.True(t, matchPrefix(nil, []string{"anything"}))
	assert.True(t, matchPrefix([]string{"packages", "web"}, []string{"packages", "web"}))
	assert.False(t, matchPrefix([]string{"packages", "web"}, []string{"packages"}))
	assert.False(t, matchPrefix([]string{"packages", "web"}, []string{"packages", "webapp", "a.ts"}))
	assert.True(t, matchPrefix([]string{"**", "web"}, []string{"a", "b", "web", "c.ts"}))
}
