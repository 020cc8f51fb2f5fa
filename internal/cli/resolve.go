package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/xform/internal/cli/render"
	"github.com/trebuchet-org/xform/internal/usecase"
)

// NewResolveCmd creates the resolve command
func NewResolveCmd() *cobra.Command {
	var (
		walk        bool
		skipIgnored bool
	)

	cmd := &cobra.Command{
		Use:   "resolve <path...>",
		Short: "Resolve the transform configuration for files",
		Long: `Resolve the transform configuration that applies to each given file.

Paths may be absolute or relative to the working directory. With --all every source
file below the given directories is resolved. With --json one explicit file
(without --all) prints the bare configuration object, or null when
--skip-ignored drops it. Every other call prints a list of
{path, ignored, ignoredBy, config} entries, even with one entry or none.`,
		Example: `  # Resolve one file for a production build
  xform resolve packages/router/src/index.ts --env production --json

  # Resolve every file of a package, skipping ignored ones
  xform resolve packages/web --all --skip-ignored`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			paths, err := projectPaths(app.Config.ProjectRoot, args)
			if err != nil {
				return err
			}

			params := usecase.ResolveFilesParams{
				Paths:       paths,
				Env:         app.Config.Env,
				Walk:        walk,
				SkipIgnored: skipIgnored,
			}

			result, err := app.ResolveFiles.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			renderer := render.NewResolveRenderer(cmd.OutOrStdout(), app.Config.JSON)
			return renderer.Render(result)
		},
	}

	cmd.Flags().BoolVarP(&walk, "all", "a", false, "Resolve every source file below the given directories")
	cmd.Flags().BoolVar(&skipIgnored, "skip-ignored", false, "Leave out files excluded by the ignore rule")

	return cmd
}
