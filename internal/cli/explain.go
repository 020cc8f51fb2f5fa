package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/xform/internal/cli/render"
	"github.com/trebuchet-org/xform/internal/usecase"
)

// NewExplainCmd creates the explain command
func NewExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain [path]",
		Short: "Show which overrides shape a file's configuration",
		Long: `Explain how the configuration of one file is assembled: the normalized path,
every override rule that matched (and through which path prefix), the ignore
verdict for the current environment and the resulting configuration.

Without a path, the source files below the working directory are offered for
interactive selection.`,
		Example: `  xform explain packages/forms/src/index.ts
  xform explain packages/forms/src/__tests__/Form.test.tsx --env test

  # Pick a file interactively
  cd packages/router && xform explain`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			// The working directory doubles as the selection root
			paths, err := projectPaths(app.Config.ProjectRoot, append([]string{"."}, args...))
			if err != nil {
				return err
			}

			params := usecase.ExplainFileParams{
				Env:      app.Config.Env,
				PickFrom: paths[0],
			}
			if len(args) == 1 {
				params.Path = paths[1]
			}

			result, err := app.ExplainFile.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			renderer := render.NewExplainRenderer(cmd.OutOrStdout(), app.Config.JSON)
			return renderer.Render(result)
		},
	}
}
