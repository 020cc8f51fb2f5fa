package cli

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/xform/internal/cli/render"
	"github.com/trebuchet-org/xform/internal/usecase"
)

// NewIgnoredCmd creates the ignored command
func NewIgnoredCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "ignored <path...>",
		Short: "Report whether files are excluded from transformation",
		Long: `Report for each path whether the ignore rule of the current environment
excludes it, and which pattern does. Nothing is ignored under --env test.

With --check the command exits with an error when any path is ignored.`,
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

			result, err := app.CheckIgnored.Run(cmd.Context(), paths, app.Config.Env)
			if err != nil {
				return err
			}

			renderer := render.NewIgnoredRenderer(cmd.OutOrStdout(), app.Config.JSON)
			if err := renderer.Render(result); err != nil {
				return err
			}

			if check {
				ignored := lo.CountBy(result.Verdicts, func(v usecase.IgnoreVerdict) bool { return v.Ignored })
				if ignored > 0 {
					return fmt.Errorf("%d of %d paths are ignored", ignored, len(result.Verdicts))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Fail when any path is ignored")

	return cmd
}
