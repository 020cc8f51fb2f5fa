package fs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/trebuchet-org/xform/internal/domain"
	"github.com/trebuchet-org/xform/internal/domain/config"
	"github.com/trebuchet-org/xform/internal/usecase"
)

// LocalConfigFile is the name of the local defaults file inside the data dir
const LocalConfigFile = "config.local.json"

// LocalConfigStoreAdapter keeps local defaults in <data dir>/config.local.json,
// the same file viper reads as its config layer.
type LocalConfigStoreAdapter struct {
	configPath string
}

// NewLocalConfigStoreAt creates a LocalConfigStoreAdapter for the given data dir
func NewLocalConfigStoreAt(dataDir string) *LocalConfigStoreAdapter {
	return &LocalConfigStoreAdapter{
		configPath: filepath.Join(dataDir, LocalConfigFile),
	}
}

// Exists checks if the config file exists
func (s *LocalConfigStoreAdapter) Exists() bool {
	_, err := os.Stat(s.configPath)
	return err == nil
}

// Load reads the local defaults. A missing file means nothing is set. A known
// env mode is stored in canonical form; an unknown one is kept as written so
// it can still be shown and overwritten.
func (s *LocalConfigStoreAdapter) Load(ctx context.Context) (*config.LocalConfig, error) {
	data, err := os.ReadFile(s.configPath)
	if errors.Is(err, os.ErrNotExist) {
		return config.DefaultLocalConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var local config.LocalConfig
	if err := json.Unmarshal(data, &local); err != nil {
		return nil, &domain.ConfigError{Source: s.configPath, Reason: "failed to parse config file", Err: err}
	}

	if local.Env != "" {
		if env, err := config.ParseEnvMode(local.Env); err == nil {
			local.Env = string(env)
		}
	}

	return &local, nil
}

// Save writes the local defaults. Clearing every key removes the file so
// viper stops layering it.
func (s *LocalConfigStoreAdapter) Save(ctx context.Context, cfg *config.LocalConfig) error {
	if cfg.IsEmpty() {
		if err := os.Remove(s.configPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to remove config file: %w", err)
		}
		return nil
	}

	dir := filepath.Dir(s.configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write next to the target and rename so a reader never sees half a file
	tmp, err := os.CreateTemp(dir, LocalConfigFile+".*")
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetPath returns the path to the config file
func (s *LocalConfigStoreAdapter) GetPath() string {
	return s.configPath
}

// Ensure LocalConfigStoreAdapter implements LocalConfigStore
var _ usecase.LocalConfigStore = (*LocalConfigStoreAdapter)(nil)
