package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/xform/internal/cli/render"
)

// NewVersionsCmd creates the versions command
func NewVersionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "versions",
		Short: "Show the runtime and polyfill versions read from the manifest",
		Long: `Show the versions injected into plugin options as ${RUNTIME_VERSION} and
${POLYFILL_VERSION}. The runtime version is used as written; the polyfill
version is truncated to major.minor.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ShowVersions.Run(cmd.Context())
			if err != nil {
				return err
			}

			renderer := render.NewVersionsRenderer(cmd.OutOrStdout(), app.Config.JSON)
			return renderer.Render(result)
		},
	}
}
