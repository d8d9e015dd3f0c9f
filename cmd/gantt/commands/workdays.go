package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/gantt/internal/app"
)

func (c *CLI) newWorkdaysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workdays START END",
		Short: "Count working days between two dates, inclusive",
		Long: "Count working days between two dates, inclusive. Weekends are skipped, as are " +
			"--holiday dates and, when --project is given, the project's holidays.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			holidays, _ := cmd.Flags().GetStringSlice("holiday")
			tz, _ := cmd.Flags().GetString("tz")
			project, _ := cmd.Flags().GetString("project")
			return c.app.Workdays(cmd.Context(), app.WorkdaysOptions{
				Start:    args[0],
				End:      args[1],
				Timezone: tz,
				Holidays: holidays,
				Project:  project,
			})
		},
	}
	cmd.Flags().StringSlice("holiday", nil, "Additional holiday date, repeatable")
	cmd.Flags().String("tz", "", "IANA timezone for dates without an offset (default: UTC)")
	return cmd
}
