package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/xform/internal/cli/render"
)

// NewOverridesCmd creates the overrides command
func NewOverridesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "overrides",
		Aliases: []string{"ls"},
		Short:   "List the base configuration and path overrides",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListOverrides.Run(cmd.Context())
			if err != nil {
				return err
			}

			renderer := render.NewOverridesRenderer(cmd.OutOrStdout(), app.Config.JSON)
			return renderer.Render(result)
		},
	}
}
