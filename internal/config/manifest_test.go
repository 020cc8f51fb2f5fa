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

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDerivedVersions(t *testing.T) {
	t.Run("reads runtime verbatim and truncates polyfill", func(t *testing.T) {
		path := writeManifest(t, t.TempDir(), `{
  "name": "monorepo",
  "devDependencies": {
    "@babel/runtime": "7.22.15",
    "core-js-pure": "3.36.1"
  }
}`)

		versions, err := LoadDerivedVersions(path, config.DefaultVersionSources())
		require.NoError(t, err)
		assert.Equal(t, "7.22.15", versions.RuntimeVersion)
		assert.Equal(t, "3.36", versions.PolyfillVersion)
	})

	t.Run("custom namespace and packages", func(t *testing.T) {
		path := writeManifest(t, t.TempDir(), `{
  "dependencies": {"my-runtime": "^2.1.0", "my-polyfills": "4.0.9"}
}`)

		versions, err := LoadDerivedVersions(path, config.VersionSources{
			Namespace:       "dependencies",
			RuntimePackage:  "my-runtime",
			PolyfillPackage: "my-polyfills",
		})
		require.NoError(t, err)
		assert.Equal(t, "^2.1.0", versions.RuntimeVersion)
		assert.Equal(t, "4.0", versions.PolyfillVersion)
	})

	t.Run("single component polyfill version fails", func(t *testing.T) {
		path := writeManifest(t, t.TempDir(), `{
  "devDependencies": {"@babel/runtime": "7.22.15", "core-js-pure": "3"}
}`)

		_, err := LoadDerivedVersions(path, config.DefaultVersionSources())
		var verErr *domain.VersionParseError
		require.ErrorAs(t, err, &verErr)
		assert.Equal(t, "core-js-pure", verErr.Field)
	})

	t.Run("missing manifest", func(t *testing.T) {
		_, err := LoadDerivedVersions(filepath.Join(t.TempDir(), ManifestFile), config.DefaultVersionSources())
		var cfgErr *domain.ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid json", func(t *testing.T) {
		path := writeManifest(t, t.TempDir(), `{"devDependencies": `)

		_, err := LoadDerivedVersions(path, config.DefaultVersionSources())
		var cfgErr *domain.ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "manifest is not valid JSON", cfgErr.Reason)
	})

	t.Run("missing dependency", func(t *testing.T) {
		path := writeManifest(t, t.TempDir(), `{"devDependencies": {"core-js-pure": "3.36.1"}}`)

		_, err := LoadDerivedVersions(path, config.DefaultVersionSources())
		var cfgErr *domain.ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Contains(t, cfgErr.Reason, "devDependencies.@babel/runtime")
	})

	t.Run("missing namespace", func(t *testing.T) {
		path := writeManifest(t, t.TempDir(), `{"dependencies": {}}`)

		_, err := LoadDerivedVersions(path, config.DefaultVersionSources())
		var cfgErr *domain.ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "manifest has no devDependencies object", cfgErr.Reason)
	})
}

func TestIsWorkspaceRoot(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, IsWorkspaceRoot(filepath.Join(dir, ManifestFile)))

	path := writeManifest(t, dir, `{"private": true, "workspaces": ["packages/*"]}`)
	assert.True(t, IsWorkspaceRoot(path))

	path = writeManifest(t, t.TempDir(), `{"name": "@scope/web"}`)
	assert.False(t, IsWorkspaceRoot(path))
}
