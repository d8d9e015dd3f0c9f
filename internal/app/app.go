// Package app implements the application layer for gantt.
package app

import (
	"context"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/gantt/internal/adapters/detector"
	"go.trai.ch/gantt/internal/adapters/locale"
	"go.trai.ch/gantt/internal/adapters/logger"
	"go.trai.ch/gantt/internal/adapters/telemetry"
	"go.trai.ch/gantt/internal/adapters/tickcache"
	"go.trai.ch/gantt/internal/core/domain"
	"go.trai.ch/gantt/internal/core/ports"
	"go.trai.ch/gantt/internal/engine/layout"
	"go.trai.ch/gantt/internal/engine/pool"
	"go.trai.ch/gantt/internal/engine/spanmap"
	"go.trai.ch/zerr"
)

// AutoUnit selects the unit from the timeline's maxColumns.
const AutoUnit = "auto"

// App represents the main application logic.
type App struct {
	loader    ports.ProjectLoader
	cache     *tickcache.Cache
	scheduler ports.Scheduler
	tracer    ports.Tracer
	watcher   ports.Watcher
	logger    ports.Logger

	stdout     io.Writer
	stderr     io.Writer
	workDir    string
	teaOptions []tea.ProgramOption
	detect     func() detector.OutputMode
	telemetry  func(ports.Logger) func(context.Context) error
}

// New creates a new App instance.
func New(
	loader ports.ProjectLoader,
	cache *tickcache.Cache,
	scheduler ports.Scheduler,
	tracer ports.Tracer,
	watcher ports.Watcher,
	log ports.Logger,
) *App {
	return &App{
		loader:    loader,
		cache:     cache,
		scheduler: scheduler,
		tracer:    tracer,
		watcher:   watcher,
		logger:    log,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		detect:    detector.DetectEnvironment,
		telemetry: telemetry.Setup,
	}
}

// WithOutput redirects chart and report output.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithWorkDir sets the directory project files are searched from. It defaults to the process working directory.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// WithTeaOptions adds bubbletea program options to the viewer.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithDetector replaces terminal detection for the view command.
func (a *App) WithDetector(detect func() detector.OutputMode) *App {
	a.detect = detect
	return a
}

// WithoutTelemetry keeps the global tracer provider untouched.
func (a *App) WithoutTelemetry() *App {
	a.telemetry = nil
	return a
}

// ConfigureLogging applies the --log-level and --json flags to loggers that support them.
func (a *App) ConfigureLogging(level string, json bool) error {
	lvl, err := logger.ParseLevel(level)
	if err != nil {
		return err
	}
	configurable, ok := a.logger.(interface {
		SetLevel(slog.Level)
		SetJSON(bool)
	})
	if !ok {
		return nil
	}
	configurable.SetLevel(lvl)
	configurable.SetJSON(json)
	return nil
}

// ProjectOptions selects a project file and overrides parts of its timeline.
type ProjectOptions struct {
	// Path is the project file. Empty searches the working directory and its parents.
	Path string
	// Unit overrides timeline.unit. AutoUnit derives it from timeline.maxColumns.
	Unit string
	// Locale overrides timeline.locale.
	Locale string
}

// LoadProject loads, overrides and validates a project, and applies its cache settings.
func (a *App) LoadProject(opts ProjectOptions) (*domain.Project, error) {
	project, err := a.loader.Load(a.cwd(), opts.Path)
	if err != nil {
		return nil, err
	}

	timeline := &project.Timeline
	if opts.Locale != "" {
		if timeline.Locale, err = locale.Resolve(opts.Locale); err != nil {
			return nil, err
		}
	}
	switch opts.Unit {
	case "":
	case AutoUnit:
		timeline.AutoUnit = true
	default:
		if timeline.Unit, err = domain.ParseTimeUnit(opts.Unit); err != nil {
			return nil, err
		}
		timeline.AutoUnit = false
	}

	if timeline.AutoUnit {
		timeline.Unit = spanmap.OptimalTimeUnit(timeline.Start, timeline.End, maxColumns(timeline.MaxColumns))
		a.logger.Debug("picked " + timeline.Unit.String() + " columns for " + project.Path)
	}

	if ok, reason := spanmap.ValidateTimeRange(timeline.Start, timeline.End, timeline.Unit); !ok {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrInvalidTimelineRange, reason),
			"unit", timeline.Unit.String()), "path", project.Path)
	}

	a.cache.Configure(project.Cache)
	return project, nil
}

func (a *App) cwd() string {
	if a.workDir != "" {
		return a.workDir
	}
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	return dir
}

func maxColumns(n int) int {
	if n <= 0 {
		return domain.DefaultMaxColumns
	}
	return n
}

// newOrchestrator creates an orchestrator for project without inputs.
func (a *App) newOrchestrator(project *domain.Project) *layout.Orchestrator {
	return layout.New(a.scheduler, a.cache, pool.New(project.Pool.MaxSize), a.tracer, a.logger)
}

// apply copies project into the orchestrator's inputs.
func apply(o *layout.Orchestrator, project *domain.Project) {
	timeline := project.Timeline
	o.SetOptions(project.Layout)
	o.SetRange(timeline.Start, timeline.End)
	o.SetUnit(timeline.Unit)
	o.SetLocale(timeline.Locale)
	o.SetFormats(timeline.DateFormat, timeline.TimeFormat)
	o.SetTasks(project.Tasks)
}

// warmKeys lists the project's timeline at every unit the range can be rendered with.
func warmKeys(project *domain.Project) []domain.TimelineKey {
	timeline := project.Timeline
	keys := make([]domain.TimelineKey, 0, len(domain.TimeUnits))
	for _, unit := range domain.TimeUnits {
		if ok, _ := spanmap.ValidateTimeRange(timeline.Start, timeline.End, unit); !ok {
			continue
		}
		keys = append(keys, domain.NewTimelineKey(timeline.Start, timeline.End, unit, timeline.Locale))
	}
	return keys
}

// startTelemetry installs the span-to-log bridge and returns its shutdown function.
func (a *App) startTelemetry(ctx context.Context) func() {
	if a.telemetry == nil {
		return func() {}
	}
	shutdown := a.telemetry(a.logger)
	return func() {
		_ = shutdown(context.WithoutCancel(ctx))
	}
}
