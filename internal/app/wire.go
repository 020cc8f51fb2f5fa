//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/xform/internal/adapters"
	"github.com/trebuchet-org/xform/internal/config"
	"github.com/trebuchet-org/xform/internal/logging"
	"github.com/trebuchet-org/xform/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewResolveFiles,
		usecase.NewExplainFile,
		usecase.NewCheckIgnored,
		usecase.NewListOverrides,
		usecase.NewShowVersions,

		// App
		NewApp,
	)
	return nil, nil
}

// InitConfigApp creates the local config use cases for the given data dir
func InitConfigApp(dataDir string) *ConfigApp {
	wire.Build(
		adapters.LocalConfigSet,

		usecase.NewShowConfig,
		usecase.NewSetConfig,
		usecase.NewRemoveConfig,

		NewConfigApp,
	)
	return nil
}
