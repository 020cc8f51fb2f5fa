package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/xform/internal/domain"
	"github.com/trebuchet-org/xform/internal/domain/config"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseTransformFileMatchesBuiltin(t *testing.T) {
	want := DefaultTransformConfig()
	require.NoError(t, ExpandVersions(want, testVersions, "built-in"))

	for _, name := range []string{"transform.toml", "transform.yaml"} {
		t.Run(name, func(t *testing.T) {
			cfg, err := ParseTransformFile(filepath.Join("testdata", name))
			require.NoError(t, err)
			require.NoError(t, ExpandVersions(cfg, testVersions, name))
			require.NoError(t, ValidateTransformConfig(cfg, name))

			assert.Equal(t, want.Base, cfg.Base)
			assert.Equal(t, want.Overrides, cfg.Overrides)
			assert.Equal(t, want.Ignore, cfg.Ignore)
			assert.Equal(t, want.Versions, cfg.Versions)
		})
	}
}

func TestLoadTransformConfig(t *testing.T) {
	t.Run("falls back to built-in config", func(t *testing.T) {
		cfg, path, source, err := LoadTransformConfig(t.TempDir(), "")
		require.NoError(t, err)
		assert.Equal(t, "", path)
		assert.Equal(t, config.ConfigSourceBuiltin, source)
		assert.Equal(t, DefaultTransformConfig(), cfg)
	})

	t.Run("finds transform.toml in project root", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "transform.toml", "[targets]\nnode = \"18\"\n")

		cfg, path, source, err := LoadTransformConfig(dir, "")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "transform.toml"), path)
		assert.Equal(t, config.ConfigSourceTOML, source)
		assert.Equal(t, config.Targets{"node": {"18"}}, cfg.Base.Targets)
		assert.Equal(t, DefaultIgnoreRule(), cfg.Ignore, "missing [ignore] keeps default patterns")
	})

	t.Run("prefers toml over yaml", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "transform.yaml", "targets:\n  node: \"16\"\n")
		writeFile(t, dir, "transform.toml", "[targets]\nnode = \"18\"\n")

		_, _, source, err := LoadTransformConfig(dir, "")
		require.NoError(t, err)
		assert.Equal(t, config.ConfigSourceTOML, source)
	})

	t.Run("explicit relative path", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0755))
		writeFile(t, filepath.Join(dir, "config"), "web.yml", "targets:\n  browsers: [defaults]\n")

		cfg, path, source, err := LoadTransformConfig(dir, "config/web.yml")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "config", "web.yml"), path)
		assert.Equal(t, config.ConfigSourceYAML, source)
		assert.Equal(t, config.Targets{"browsers": {"defaults"}}, cfg.Base.Targets)
	})

	t.Run("explicit path that does not exist", func(t *testing.T) {
		_, _, _, err := LoadTransformConfig(t.TempDir(), "missing.toml")
		var cfgErr *domain.ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "config file not found", cfgErr.Reason)
	})
}

func TestParseTransformFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		reason  string
	}{
		{"invalid toml", "transform.toml", "invalid [[ toml", "failed to parse TOML"},
		{"invalid yaml", "transform.yaml", "targets: [node", "failed to parse YAML"},
		{"unsupported format", "transform.json", "{}", `unsupported config format ".json"`},
		{"bad target type", "transform.toml", "[targets]\nnode = true\n", "failed to parse TOML"},
		{"bad override targets", "transform.toml", "[[overrides]]\nname = \"web\"\ntest = [\"web\"]\ntargets = { browsers = [1] }\n", "failed to parse TOML"},
		{"nested yaml target", "transform.yaml", "targets:\n  node:\n    min: 18\n", "failed to parse YAML"},
		{"plugin without name", "transform.toml", "[[plugins]]\noptions = { loose = true }\n", "failed to parse TOML"},
		{"unknown reference key", "transform.toml", "plugins = [{ name = \"a\", option = 1 }]\n", "failed to parse TOML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), tt.file, tt.content)

			_, err := ParseTransformFile(path)
			var cfgErr *domain.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.reason, cfgErr.Reason)
			assert.Equal(t, path, cfgErr.Source)
		})
	}
}

func TestParseTransformFileShortReferences(t *testing.T) {
	path := writeFile(t, t.TempDir(), "transform.toml", `
presets = ["@babel/preset-react", { name = "@babel/preset-env", options = { targets = { esmodules = true }, corejs = 3 } }]

[targets]
node = "current"
`)

	cfg, err := ParseTransformFile(path)
	require.NoError(t, err)
	assert.Equal(t, []config.Ref{
		{Name: "@babel/preset-react"},
		{Name: "@babel/preset-env", Options: map[string]any{
			"targets": map[string]any{"esmodules": true},
			"corejs":  int64(3),
		}},
	}, cfg.Base.Presets)
}

func TestParseTransformFileCustomVersionSources(t *testing.T) {
	path := writeFile(t, t.TempDir(), "transform.yaml", `
versions:
  polyfill_package: core-js
targets:
  node: "20"
`)

	cfg, err := ParseTransformFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.VersionSources{
		Namespace:       "devDependencies",
		RuntimePackage:  "@babel/runtime",
		PolyfillPackage: "core-js",
	}, cfg.Versions)
}

func TestParseTransformFileNumericTargets(t *testing.T) {
	t.Run("yaml keeps the written version", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "transform.yaml", `
targets:
  node: 14.20
  deno: 2
overrides:
  - test: ["packages/web"]
    targets:
      browsers: [defaults, 100.0]
`)

		cfg, err := ParseTransformFile(path)
		require.NoError(t, err)
		assert.Equal(t, config.Targets{"node": {"14.20"}, "deno": {"2"}}, cfg.Base.Targets)
		assert.Equal(t, config.Targets{"browsers": {"defaults", "100.0"}}, cfg.Overrides[0].Targets)
	})

	t.Run("toml integer is accepted", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "transform.toml", "[targets]\nnode = 18\n")

		cfg, err := ParseTransformFile(path)
		require.NoError(t, err)
		assert.Equal(t, config.Targets{"node": {"18"}}, cfg.Base.Targets)
	})

	t.Run("toml float must be quoted", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "transform.toml", "[targets]\nnode = 14.20\n")

		_, err := ParseTransformFile(path)
		var cfgErr *domain.ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "failed to parse TOML", cfgErr.Reason)
		assert.ErrorContains(t, err, "quote version constraints")
	})

	t.Run("yaml null target fails validation", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "transform.yaml", "targets:\n  node:\n")

		cfg, err := ParseTransformFile(path)
		require.NoError(t, err)
		assert.Error(t, ValidateTransformConfig(cfg, path))
	})
}
