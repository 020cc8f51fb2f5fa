package usecase

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/trebuchet-org/xform/internal/domain/config"
)

// SetConfigParams contains parameters for setting configuration
type SetConfigParams struct {
	Key   string
	Value string
}

// SetConfigResult contains the result of setting configuration
type SetConfigResult struct {
	UpdatedConfig *config.LocalConfig
	ConfigPath    string
	Key           config.ConfigKey
	Value         string
}

// SetConfig is a use case for setting configuration values
type SetConfig struct {
	store LocalConfigStore
}

// NewSetConfig creates a new SetConfig use case
func NewSetConfig(store LocalConfigStore) *SetConfig {
	return &SetConfig{
		store: store,
	}
}

// Run executes the set config use case
func (uc *SetConfig) Run(ctx context.Context, params SetConfigParams) (*SetConfigResult, error) {
	key, err := normalizeLocalKey(params.Key)
	if err != nil {
		return nil, err
	}

	value := params.Value
	if key == config.ConfigKeyEnv {
		env, err := config.ParseEnvMode(value)
		if err != nil {
			modes := lo.Map(config.EnvModes(), func(m config.EnvMode, _ int) string { return string(m) })
			if hint := Suggest(value, modes); hint != "" {
				return nil, fmt.Errorf("%w (%s)", err, hint)
			}
			return nil, err
		}
		value = string(env)
	}

	// Load existing config or create new one
	cfg, err := uc.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	cfg.Set(key, value)

	// Save the updated config
	if err := uc.store.Save(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}

	return &SetConfigResult{
		UpdatedConfig: cfg,
		ConfigPath:    uc.store.GetPath(),
		Key:           key,
		Value:         value,
	}, nil
}
