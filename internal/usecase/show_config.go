package usecase

import (
	"context"
	"fmt"

	"github.com/trebuchet-org/xform/internal/domain/config"
)

// ShowConfigResult contains the result of showing configuration
type ShowConfigResult struct {
	Config     *config.LocalConfig
	ConfigPath string
	Exists     bool

	// Unset lists the keys that fall through to flags and the environment
	Unset []config.ConfigKey

	// Problems found in the stored values; the next command would fail on them
	Warnings []string
}

// ShowConfig is a use case for showing configuration
type ShowConfig struct {
	store LocalConfigStore
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(store LocalConfigStore) *ShowConfig {
	return &ShowConfig{
		store: store,
	}
}

// Run loads the local defaults and reports which keys are set and whether
// the stored values would be accepted.
func (uc *ShowConfig) Run(ctx context.Context) (*ShowConfigResult, error) {
	exists := uc.store.Exists()

	cfg, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	result := &ShowConfigResult{
		Config:     cfg,
		ConfigPath: uc.store.GetPath(),
		Exists:     exists,
	}

	for _, key := range config.ValidConfigKeys() {
		if cfg.Get(key) == "" {
			result.Unset = append(result.Unset, key)
		}
	}

	if cfg.Env != "" {
		if _, err := config.ParseEnvMode(cfg.Env); err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%v; fix it with: xform config set env <mode>", err))
		}
	}

	return result, nil
}
