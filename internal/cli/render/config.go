package render

import (
	"fmt"
	"io"

	"github.com/trebuchet-org/xform/internal/domain/config"
	"github.com/trebuchet-org/xform/internal/usecase"
)

// ConfigRenderer renders config-related output
type ConfigRenderer struct {
	out io.Writer
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer) *ConfigRenderer {
	return &ConfigRenderer{
		out: out,
	}
}

// RenderConfig renders the configuration display
func (r *ConfigRenderer) RenderConfig(result *usecase.ShowConfigResult) error {
	if !result.Exists {
		fmt.Fprintf(r.out, "❌ No .xform/config.local.json file found\n")
		fmt.Fprintf(r.out, "⚠️  Without config, the environment comes from --env, XFORM_ENV or NODE_ENV\n")
		return nil
	}

	fmt.Fprintln(r.out, "📋 Current config:")

	if result.Config.Env != "" {
		fmt.Fprintf(r.out, "Env:    %s\n", result.Config.Env)
	} else {
		fmt.Fprintf(r.out, "Env:    %s\n", "(from --env, XFORM_ENV or NODE_ENV)")
	}

	if result.Config.Config != "" {
		fmt.Fprintf(r.out, "Config: %s\n", result.Config.Config)
	} else {
		fmt.Fprintf(r.out, "Config: %s\n", "(auto-detect)")
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(r.out, "⚠️  %s\n", warning)
	}

	fmt.Fprintf(r.out, "\n📁 config file: %s\n", getRelativePath(result.ConfigPath))

	return nil
}

// RenderSet renders the result of setting a configuration value
func (r *ConfigRenderer) RenderSet(result *usecase.SetConfigResult) error {
	fmt.Fprintf(r.out, "✅ Set %s to: %s\n", result.Key, result.Value)
	fmt.Fprintf(r.out, "📁 config saved to: %s\n", getRelativePath(result.ConfigPath))
	return nil
}

// RenderRemove renders the result of removing a configuration value
func (r *ConfigRenderer) RenderRemove(result *usecase.RemoveConfigResult) error {
	switch result.Key {
	case config.ConfigKeyEnv:
		fmt.Fprintf(r.out, "✅ Removed env (falls back to XFORM_ENV, NODE_ENV, then %s)\n", config.EnvOther)
	case config.ConfigKeyConfig:
		fmt.Fprintf(r.out, "✅ Removed config path (transform config will be auto-detected)\n")
	}

	fmt.Fprintf(r.out, "📁 config saved to: %s\n", getRelativePath(result.ConfigPath))
	return nil
}
