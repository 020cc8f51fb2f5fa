package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/xform/internal/app"
	"github.com/trebuchet-org/xform/internal/config"
	domainconfig "github.com/trebuchet-org/xform/internal/domain/config"
	"github.com/trebuchet-org/xform/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
	// configAppKey is the context key for the local config app instance
	configAppKey contextKey = "config-app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xform",
		Short: "Per-file transform configuration for a multi-package repository",
		Long: `xform resolves the transform configuration (targets, assumptions, presets,
plugins and ignore patterns) that applies to each source file of a monorepo.

A base configuration is combined with the path-scoped overrides whose prefixes
match the file, in declaration order. Test runs transform every file; other
environments skip tests, mocks and snapshots.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if skipsAppInit(cmd) {
				return nil
			}

			if err := validateEnvFlag(cmd); err != nil {
				return err
			}

			// Find project root
			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			// Local config commands must work even when the transform config does not load
			if isConfigCommand(cmd) {
				configApp := app.InitConfigApp(filepath.Join(projectRoot, config.DataDirName))
				cmd.SetContext(context.WithValue(cmd.Context(), configAppKey, configApp))
				return nil
			}

			// Set up viper
			v := config.SetupViper(projectRoot, cmd)

			// Initialize app with DI
			appInstance, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			// Store app in context
			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			// Add timeout if configured
			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				// Store cancel func to be called on command completion
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("env", "e", "", "Environment mode: test, development, production, other (defaults to XFORM_ENV or NODE_ENV)")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Transform config file (defaults to transform.toml or transform.yaml in the project root)")
	rootCmd.PersistentFlags().String("manifest", "", "Package manifest to read versions from (defaults to package.json in the project root)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Int("concurrency", 0, "Maximum files resolved in parallel (defaults to 8)")

	// Add command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	// Main commands
	resolveCmd := NewResolveCmd()
	resolveCmd.GroupID = "main"
	rootCmd.AddCommand(resolveCmd)

	explainCmd := NewExplainCmd()
	explainCmd.GroupID = "main"
	rootCmd.AddCommand(explainCmd)

	ignoredCmd := NewIgnoredCmd()
	ignoredCmd.GroupID = "main"
	rootCmd.AddCommand(ignoredCmd)

	// Management commands
	overridesCmd := NewOverridesCmd()
	overridesCmd.GroupID = "management"
	rootCmd.AddCommand(overridesCmd)

	versionsCmd := NewVersionsCmd()
	versionsCmd.GroupID = "management"
	rootCmd.AddCommand(versionsCmd)

	configCmd := NewConfigCmd()
	configCmd.GroupID = "management"
	rootCmd.AddCommand(configCmd)

	// Version command
	versionCmd := NewVersionCmd()
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

// skipsAppInit reports whether cmd runs without any project setup
func skipsAppInit(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "help", "completion", "__complete":
		return true
	}
	return false
}

// isConfigCommand reports whether cmd is "config" or one of its subcommands
func isConfigCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "config" && c.HasParent() && !c.Parent().HasParent() {
			return true
		}
	}
	return false
}

// validateEnvFlag rejects an unknown --env early with a suggestion
func validateEnvFlag(cmd *cobra.Command) error {
	f := cmd.Flag("env")
	if f == nil || !f.Changed {
		return nil
	}
	if _, err := domainconfig.ParseEnvMode(f.Value.String()); err != nil {
		modes := lo.Map(domainconfig.EnvModes(), func(m domainconfig.EnvMode, _ int) string { return string(m) })
		if hint := usecase.Suggest(f.Value.String(), modes); hint != "" {
			return fmt.Errorf("%w (%s)", err, hint)
		}
		return err
	}
	return nil
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}

// getConfigApp retrieves the local config app instance from the command context
func getConfigApp(cmd *cobra.Command) (*app.ConfigApp, error) {
	configApp, ok := cmd.Context().Value(configAppKey).(*app.ConfigApp)
	if !ok || configApp == nil {
		return nil, fmt.Errorf("config app not initialized")
	}
	return configApp, nil
}
