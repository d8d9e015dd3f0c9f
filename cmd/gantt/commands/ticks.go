package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/gantt/internal/app"
)

func (c *CLI) newTicksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ticks START END",
		Short: "Print the column ticks for a date range",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit, _ := cmd.Flags().GetString("unit")
			locale, _ := cmd.Flags().GetString("locale")
			tz, _ := cmd.Flags().GetString("tz")
			dateFormat, _ := cmd.Flags().GetString("date-format")
			timeFormat, _ := cmd.Flags().GetString("time-format")
			return c.app.Ticks(cmd.Context(), app.TicksOptions{
				Start:      args[0],
				End:        args[1],
				Unit:       unit,
				Locale:     locale,
				Timezone:   tz,
				DateFormat: dateFormat,
				TimeFormat: timeFormat,
			})
		},
	}
	cmd.Flags().String("tz", "", "IANA timezone for dates without an offset (default: UTC)")
	cmd.Flags().String("date-format", "", "Go reference layout for day, week, month and year labels")
	cmd.Flags().String("time-format", "", "Go reference layout for hour labels")
	return cmd
}
