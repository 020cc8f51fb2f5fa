package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/xform/internal/domain"
	"github.com/trebuchet-org/xform/internal/domain/config"
)

func TestExpandVersions(t *testing.T) {
	cfg := &config.TransformConfig{
		Base: config.BaseConfig{
			Plugins: []config.Ref{
				{Name: "runtime", Options: map[string]any{"version": "${RUNTIME_VERSION}"}},
				{Name: "polyfill", Options: map[string]any{
					"version": "${POLYFILL_VERSION}",
					"nested":  map[string]any{"list": []any{"core-js@${POLYFILL_VERSION}", true}},
					"literal": "$HOME stays as written",
				}},
			},
		},
		Overrides: []config.OverrideRule{
			{Name: "web", Presets: []config.Ref{{Name: "env", Options: map[string]any{"corejs": "${POLYFILL_VERSION}"}}}},
		},
	}

	require.NoError(t, ExpandVersions(cfg, testVersions, "transform.toml"))

	assert.Equal(t, "7.22.15", cfg.Base.Plugins[0].Options["version"])
	assert.Equal(t, "3.36", cfg.Base.Plugins[1].Options["version"])
	assert.Equal(t, map[string]any{"list": []any{"core-js@3.36", true}}, cfg.Base.Plugins[1].Options["nested"])
	assert.Equal(t, "$HOME stays as written", cfg.Base.Plugins[1].Options["literal"])
	assert.Equal(t, "3.36", cfg.Overrides[0].Presets[0].Options["corejs"])
}

func TestExpandVersionsUnknownPlaceholder(t *testing.T) {
	cfg := &config.TransformConfig{
		Base: config.BaseConfig{
			Plugins: []config.Ref{{Name: "runtime", Options: map[string]any{"version": "${RUNTIME}"}}},
		},
	}

	err := ExpandVersions(cfg, testVersions, "transform.toml")
	var cfgErr *domain.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "option version of runtime", cfgErr.Reason)
	assert.Contains(t, err.Error(), "unknown placeholder ${RUNTIME}")
}
