package app

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"go.trai.ch/gantt/internal/adapters/config"
	"go.trai.ch/gantt/internal/adapters/locale"
	"go.trai.ch/gantt/internal/core/domain"
	"go.trai.ch/gantt/internal/engine/spanmap"
	"go.trai.ch/gantt/internal/engine/timeaxis"
	"go.trai.ch/gantt/internal/ui/output"
	"go.trai.ch/gantt/internal/ui/style"
	"go.trai.ch/zerr"
)

// TicksOptions configuration for the Ticks method.
type TicksOptions struct {
	Start      string
	End        string
	Unit       string
	Locale     string
	Timezone   string
	DateFormat string
	TimeFormat string
}

// Ticks prints the tick sequence for a range, one tick and its header label per line.
func (a *App) Ticks(_ context.Context, opts TicksOptions) error {
	loc, err := loadLocation(opts.Timezone)
	if err != nil {
		return err
	}
	start, err := config.ParseDate(opts.Start, loc)
	if err != nil {
		return zerr.With(err, "field", "start")
	}
	end, err := config.ParseDate(opts.End, loc)
	if err != nil {
		return zerr.With(err, "field", "end")
	}
	lc, err := locale.Resolve(opts.Locale)
	if err != nil {
		return err
	}

	unit := spanmap.OptimalTimeUnit(start, end, domain.DefaultMaxColumns)
	if opts.Unit != "" && opts.Unit != AutoUnit {
		if unit, err = domain.ParseTimeUnit(opts.Unit); err != nil {
			return err
		}
	}
	if ok, reason := spanmap.ValidateTimeRange(start, end, unit); !ok {
		return zerr.With(zerr.Wrap(domain.ErrInvalidTimelineRange, reason), "unit", unit.String())
	}

	ticks := a.cache.Ticks(start, end, unit, lc)
	labels := timeaxis.FormatTicks(ticks, unit, opts.DateFormat, opts.TimeFormat, lc)
	for i, tick := range ticks {
		_, _ = fmt.Fprintf(a.stdout, "%s\t%s\n", tick.Format(time.RFC3339), labels[i])
	}
	return nil
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidTimezone, err.Error()), "timezone", name)
	}
	return loc, nil
}

// SpanOptions configuration for the Span method.
type SpanOptions struct {
	ProjectOptions
	// TaskIDs limits the report to these tasks. Empty reports every task.
	TaskIDs []string
}

// Span prints the columns each task occupies and the dates those columns cover.
func (a *App) Span(_ context.Context, opts SpanOptions) error {
	project, err := a.LoadProject(opts.ProjectOptions)
	if err != nil {
		return err
	}

	tasks, err := selectTasks(project.Tasks, opts.TaskIDs)
	if err != nil {
		return err
	}

	timeline := project.Timeline
	ticks := a.cache.Ticks(timeline.Start, timeline.End, timeline.Unit, timeline.Locale)
	mapper := spanmap.New(timeline.Locale)

	rows := make([][]string, 0, len(tasks))
	for _, task := range tasks {
		span := mapper.TaskSpan(ticks, task.Start, task.End, timeline.Unit)
		from, to := mapper.SpanDates(ticks, span)
		rows = append(rows, []string{
			task.ID.String(),
			strconv.Itoa(task.RowIndex),
			strconv.Itoa(span.StartIndex),
			strconv.Itoa(span.ColumnSpan),
			timeaxis.FormatTick(from, timeline.Unit, timeline.DateFormat, timeline.TimeFormat, timeline.Locale),
			timeaxis.FormatTick(to, timeline.Unit, timeline.DateFormat, timeline.TimeFormat, timeline.Locale),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(style.Slate)).
		Headers("TASK", "ROW", "COLUMN", "SPAN", "FROM", "TO").
		Rows(rows...)
	_, _ = fmt.Fprintln(a.stdout, t.Render())
	return nil
}

func selectTasks(tasks []domain.Task, ids []string) ([]domain.Task, error) {
	if len(ids) == 0 {
		return tasks, nil
	}
	selected := make([]domain.Task, 0, len(ids))
	for _, id := range ids {
		i := slices.IndexFunc(tasks, func(t domain.Task) bool { return t.ID.String() == id })
		if i < 0 {
			return nil, zerr.With(zerr.Wrap(domain.ErrTaskNotFound, "select tasks"), "task", id)
		}
		selected = append(selected, tasks[i])
	}
	return selected, nil
}

// Validate loads a project, reports tasks that will not be drawn and prints a summary.
func (a *App) Validate(_ context.Context, opts ProjectOptions) error {
	project, err := a.LoadProject(opts)
	if err != nil {
		return err
	}

	timeline := project.Timeline
	ticks := a.cache.Ticks(timeline.Start, timeline.End, timeline.Unit, timeline.Locale)

	for _, task := range project.Tasks {
		if task.End.Before(timeline.Start) || task.Start.After(timeline.End) {
			a.logger.Warn(fmt.Sprintf("task %s lies outside the timeline and is pinned to its edge", task.ID))
		}
		visible := project.Layout.VisibleRows
		if visible > 0 && task.RowIndex >= visible && !project.Layout.ClampTasksToVisibleRows {
			a.logger.Warn(fmt.Sprintf("task %s is on row %d beyond visibleRows %d and will be skipped",
				task.ID, task.RowIndex, visible))
		}
	}

	out := output.New(a.stdout)
	check := out.String(style.Check).Foreground(out.Color(string(style.Green)))
	_, _ = fmt.Fprintf(out, "%s %s: %d tasks, %d holidays, %d %s columns\n",
		check, filepath.Base(project.Path), len(project.Tasks), len(project.Holidays), len(ticks), timeline.Unit)
	return nil
}

// WorkdaysOptions configuration for the Workdays method.
type WorkdaysOptions struct {
	Start    string
	End      string
	Timezone string
	Holidays []string
	// Project adds the holidays of a project file. Empty ignores project files.
	Project string
}

// Workdays prints the number of working days from start to end inclusive.
func (a *App) Workdays(_ context.Context, opts WorkdaysOptions) error {
	loc, err := loadLocation(opts.Timezone)
	if err != nil {
		return err
	}

	var holidays []time.Time
	if opts.Project != "" {
		project, err := a.loader.Load(a.cwd(), opts.Project)
		if err != nil {
			return err
		}
		holidays = append(holidays, project.Holidays...)
	}
	for _, h := range opts.Holidays {
		day, err := config.ParseDate(h, loc)
		if err != nil {
			return zerr.With(err, "field", "holiday")
		}
		holidays = append(holidays, day)
	}

	start, err := config.ParseDate(opts.Start, loc)
	if err != nil {
		return zerr.With(err, "field", "start")
	}
	end, err := config.ParseDate(opts.End, loc)
	if err != nil {
		return zerr.With(err, "field", "end")
	}

	_, _ = fmt.Fprintln(a.stdout, spanmap.WorkingDays(start, end, holidays...))
	return nil
}
