package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/gantt/internal/app"
)

func (c *CLI) newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the chart once as text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			width, _ := cmd.Flags().GetInt("width")
			height, _ := cmd.Flags().GetInt("height")
			return c.app.Render(cmd.Context(), app.RenderOptions{
				ProjectOptions: projectOptions(cmd),
				Width:          width,
				Height:         height,
			})
		},
	}
	cmd.Flags().Int("width", 0, "Terminal width for virtualized charts (default: detected)")
	cmd.Flags().Int("height", 0, "Terminal height for virtualized charts (default: detected)")
	return cmd
}
