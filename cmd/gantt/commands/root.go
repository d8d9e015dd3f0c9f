// Package commands implements the CLI commands for the gantt chart tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/gantt/internal/app"
	"go.trai.ch/gantt/internal/build"
)

// CLI represents the command line interface for gantt.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	ConfigureLogging(level string, json bool) error
	Render(ctx context.Context, opts app.RenderOptions) error
	View(ctx context.Context, opts app.ViewOptions) error
	Ticks(ctx context.Context, opts app.TicksOptions) error
	Span(ctx context.Context, opts app.SpanOptions) error
	Validate(ctx context.Context, opts app.ProjectOptions) error
	Workdays(ctx context.Context, opts app.WorkdaysOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "gantt",
		Short:         "Lay out and render Gantt charts from project files",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.String("log-level", "info", "Log level: debug, info, warn or error")
	flags.Bool("json", false, "Write logs as JSON")
	flags.StringP("project", "p", "", "Project file (default: search gantt.yaml, gantt.yml, gantt.toml upwards)")
	flags.StringP("unit", "u", "", "Override the timeline unit: hour, day, week, month, year or auto")
	flags.String("locale", "", "Override the timeline locale, e.g. en-US or de-DE")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		level, _ := cmd.Flags().GetString("log-level")
		json, _ := cmd.Flags().GetBool("json")
		return c.app.ConfigureLogging(level, json)
	}

	rootCmd.AddCommand(c.newRenderCmd())
	rootCmd.AddCommand(c.newViewCmd())
	rootCmd.AddCommand(c.newTicksCmd())
	rootCmd.AddCommand(c.newSpanCmd())
	rootCmd.AddCommand(c.newValidateCmd())
	rootCmd.AddCommand(c.newWorkdaysCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func projectOptions(cmd *cobra.Command) app.ProjectOptions {
	path, _ := cmd.Flags().GetString("project")
	unit, _ := cmd.Flags().GetString("unit")
	locale, _ := cmd.Flags().GetString("locale")
	return app.ProjectOptions{Path: path, Unit: unit, Locale: locale}
}
