package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/xform/internal/domain"
	domainconfig "github.com/trebuchet-org/xform/internal/domain/config"
)

func TestLocalConfigStoreAdapter(t *testing.T) {
	ctx := context.Background()
	dataDir := filepath.Join(t.TempDir(), ".xform")
	store := NewLocalConfigStoreAt(dataDir)

	assert.False(t, store.Exists())
	assert.Equal(t, filepath.Join(dataDir, LocalConfigFile), store.GetPath())

	cfg, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domainconfig.DefaultLocalConfig(), cfg)

	cfg.Env = "test"
	cfg.Config = "config/transform.yaml"
	require.NoError(t, store.Save(ctx, cfg))
	assert.True(t, store.Exists())

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	t.Run("unset env stays unset", func(t *testing.T) {
		require.NoError(t, os.WriteFile(store.GetPath(), []byte(`{"config":"transform.toml"}`), 0644))
		loaded, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, &domainconfig.LocalConfig{Config: "transform.toml"}, loaded)
	})

	t.Run("env is stored in canonical form", func(t *testing.T) {
		require.NoError(t, os.WriteFile(store.GetPath(), []byte(`{"env":" Production "}`), 0644))
		loaded, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "production", loaded.Env)
	})

	t.Run("unknown env is kept for repair", func(t *testing.T) {
		require.NoError(t, os.WriteFile(store.GetPath(), []byte(`{"env":"staging"}`), 0644))
		loaded, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "staging", loaded.Env)
	})

	t.Run("only set keys are written", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, &domainconfig.LocalConfig{Env: "development"}))
		data, err := os.ReadFile(store.GetPath())
		require.NoError(t, err)
		assert.JSONEq(t, `{"env": "development"}`, string(data))

		entries, err := os.ReadDir(dataDir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("clearing every key removes the file", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, &domainconfig.LocalConfig{}))
		assert.False(t, store.Exists())
		require.NoError(t, store.Save(ctx, &domainconfig.LocalConfig{}))
	})

	t.Run("malformed file", func(t *testing.T) {
		require.NoError(t, os.WriteFile(store.GetPath(), []byte(`{`), 0644))
		_, err := store.Load(ctx)
		var cfgErr *domain.ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "failed to parse config file", cfgErr.Reason)
		assert.Equal(t, store.GetPath(), cfgErr.Source)
	})
}
