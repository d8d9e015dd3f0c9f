package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/gantt/internal/app"
)

func (c *CLI) newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Browse the chart interactively",
		Long: "Browse the chart interactively. Without a terminal, or with --output=linear, " +
			"the chart is printed once instead.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outputMode, _ := cmd.Flags().GetString("output")
			watch, _ := cmd.Flags().GetBool("watch")
			return c.app.View(cmd.Context(), app.ViewOptions{
				ProjectOptions: projectOptions(cmd),
				OutputMode:     outputMode,
				Watch:          watch,
			})
		},
	}
	cmd.Flags().StringP("output", "o", "auto", "Output mode: auto, tui or linear")
	cmd.Flags().BoolP("watch", "w", false, "Reload the chart when the project file changes")
	return cmd
}
