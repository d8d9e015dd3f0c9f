package app

import (
	"context"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/gantt/internal/adapters/detector"
	"go.trai.ch/gantt/internal/adapters/linear"
	"go.trai.ch/gantt/internal/adapters/tui"
	"go.trai.ch/gantt/internal/core/domain"
	"go.trai.ch/gantt/internal/engine/layout"
	"go.trai.ch/zerr"
)

// Fallback terminal size for virtualized renders when stdout is not a terminal.
const (
	fallbackWidth  = 120
	fallbackHeight = 40
	// charsPerColumn approximates one rendered column including its separator.
	charsPerColumn = 8
)

// RenderOptions configuration for the Render method.
type RenderOptions struct {
	ProjectOptions
	// Width and Height bound a virtualized render, in terminal cells. Zero uses the terminal size.
	Width  int
	Height int
}

// Render builds the project's layout once and prints it as a text chart.
func (a *App) Render(ctx context.Context, opts RenderOptions) error {
	stop := a.startTelemetry(ctx)
	defer stop()

	project, err := a.LoadProject(opts.ProjectOptions)
	if err != nil {
		return err
	}

	o := a.newOrchestrator(project).WithSink(linear.NewRenderer(a.stdout, a.stderr))
	defer func() { _ = o.Close() }()

	apply(o, project)
	if project.Layout.EnableVirtualization {
		width, height := opts.Width, opts.Height
		if width <= 0 || height <= 0 {
			width, height = detector.TerminalSize(fallbackWidth, fallbackHeight)
		}
		o.SetViewport(terminalViewport(width, height, project.Layout))
	}

	if _, err := o.Flush(ctx); err != nil {
		return zerr.With(err, "path", project.Path)
	}
	return nil
}

// terminalViewport converts a terminal size into layout units, reserving the header and summary lines.
func terminalViewport(width, height int, opts domain.LayoutOptions) domain.Viewport {
	rowHeight := orDefault(opts.RowHeight, domain.DefaultRowHeight)
	columnWidth := orDefault(opts.ColumnWidth, domain.DefaultColumnWidth)
	return domain.Viewport{
		Width:  float64(max(1, width/charsPerColumn)) * columnWidth,
		Height: float64(max(1, height-2)) * rowHeight,
	}
}

func orDefault(v, fallback float64) float64 {
	if v <= 0 {
		return fallback
	}
	return v
}

// ViewOptions configuration for the View method.
type ViewOptions struct {
	ProjectOptions
	// OutputMode is auto, tui or linear.
	OutputMode string
	// Watch reloads the project whenever its file changes.
	Watch bool
}

// View opens the interactive viewer, or renders once when no terminal is attached.
func (a *App) View(ctx context.Context, opts ViewOptions) error {
	mode := detector.ResolveMode(a.detect(), opts.OutputMode)
	if mode != detector.ModeTUI {
		a.logger.Debug("interactive viewer unavailable, rendering once")
		return a.Render(ctx, RenderOptions{ProjectOptions: opts.ProjectOptions})
	}

	stop := a.startTelemetry(ctx)
	defer stop()

	project, err := a.LoadProject(opts.ProjectOptions)
	if err != nil {
		return err
	}

	if err := a.cache.Warm(ctx, warmKeys(project)); err != nil {
		a.logger.Warn(err.Error())
	}

	o := a.newOrchestrator(project)
	model := tui.NewModel(o, tui.Options{
		Title:       filepath.Base(project.Path),
		Unit:        project.Timeline.Unit,
		RowHeight:   project.Layout.RowHeight,
		ColumnWidth: project.Layout.ColumnWidth,
	})
	viewer := tui.NewViewer(model, append([]tea.ProgramOption{tea.WithAltScreen()}, a.teaOptions...)...)
	o.WithSink(viewer)
	defer func() { _ = o.Close() }()

	apply(o, project)

	if opts.Watch {
		if err := a.watcher.Start(ctx, project.Path); err != nil {
			return err
		}
		o.Subscribe(func() { _ = a.watcher.Stop() })
		go a.follow(o, viewer, opts.ProjectOptions)
	}

	return viewer.Run(ctx)
}

// notifier shows reload results to the user.
type notifier interface {
	Notify(text string, err error)
}

// follow reloads the project on every watch event until the watcher stops.
func (a *App) follow(o *layout.Orchestrator, n notifier, opts ProjectOptions) {
	for event := range a.watcher.Events() {
		project, err := a.LoadProject(opts)
		if err != nil {
			n.Notify("", err)
			continue
		}
		apply(o, project)
		n.Notify("reloaded "+filepath.Base(event.Path), nil)
	}
}
