package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/gantt/internal/app"
)

func (c *CLI) newSpanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "span [task...]",
		Short: "Show the columns each task occupies",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Span(cmd.Context(), app.SpanOptions{
				ProjectOptions: projectOptions(cmd),
				TaskIDs:        args,
			})
		},
	}
}
