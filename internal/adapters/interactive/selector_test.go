package interactive

import (
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/xform/internal/domain/config"
)

func TestSelectFile_WithoutPrompt(t *testing.T) {
	ctx := context.Background()
	selector := NewSelectorAdapter(&config.RuntimeConfig{NonInteractive: true})

	_, err := selector.SelectFile(ctx, nil, "pick")
	assert.ErrorContains(t, err, "no files provided")

	file, err := selector.SelectFile(ctx, []string{"packages/web/src/index.ts"}, "pick")
	require.NoError(t, err)
	assert.Equal(t, "packages/web/src/index.ts", file)

	_, err = selector.SelectFile(ctx, []string{"a.ts", "b.ts"}, "pick")
	assert.ErrorContains(t, err, "a path is required in non-interactive mode (2 candidate files)")
}

func TestFormatFileOptions(t *testing.T) {
	color.NoColor = true
	assert.Equal(t, []string{
		"index.ts (packages/web/src)",
		"babel.config.js",
	}, formatFileOptions([]string{"packages/web/src/index.ts", "babel.config.js"}))
}

func TestFuzzySearch(t *testing.T) {
	items := []string{"packages/router/src/Link.tsx", "packages/forms/src/Form.tsx"}
	search := createFuzzySearchFunc(items)

	assert.True(t, search("", 0))
	assert.True(t, search("LINK", 0))
	assert.False(t, search("LINK", 1))
	assert.True(t, search("frmtsx", 1))
}
