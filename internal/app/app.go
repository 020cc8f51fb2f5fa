package app

import (
	"log/slog"

	"github.com/trebuchet-org/xform/internal/domain/config"
	"github.com/trebuchet-org/xform/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Use cases
	ResolveFiles  *usecase.ResolveFiles
	ExplainFile   *usecase.ExplainFile
	CheckIgnored  *usecase.CheckIgnored
	ListOverrides *usecase.ListOverrides
	ShowVersions  *usecase.ShowVersions
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	resolveFiles *usecase.ResolveFiles,
	explainFile *usecase.ExplainFile,
	checkIgnored *usecase.CheckIgnored,
	listOverrides *usecase.ListOverrides,
	showVersions *usecase.ShowVersions,
) (*App, error) {
	log.Debug("app initialized",
		"root", cfg.ProjectRoot,
		"config", cfg.ConfigSource,
		"runtime", cfg.Versions.RuntimeVersion,
		"polyfill", cfg.Versions.PolyfillVersion,
	)

	return &App{
		Config:        cfg,
		Log:           log,
		ResolveFiles:  resolveFiles,
		ExplainFile:   explainFile,
		CheckIgnored:  checkIgnored,
		ListOverrides: listOverrides,
		ShowVersions:  showVersions,
	}, nil
}

// ConfigApp holds the use cases that manage local defaults. It is built
// without loading the transform config so a broken setup can still be repaired.
type ConfigApp struct {
	ShowConfig   *usecase.ShowConfig
	SetConfig    *usecase.SetConfig
	RemoveConfig *usecase.RemoveConfig
}

// NewConfigApp creates a new config application instance
func NewConfigApp(
	showConfig *usecase.ShowConfig,
	setConfig *usecase.SetConfig,
	removeConfig *usecase.RemoveConfig,
) *ConfigApp {
	return &ConfigApp{
		ShowConfig:   showConfig,
		SetConfig:    setConfig,
		RemoveConfig: removeConfig,
	}
}
