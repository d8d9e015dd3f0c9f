// Package layout turns timeline inputs into placed chart elements.
package layout

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"go.trai.ch/gantt/internal/core/domain"
	"go.trai.ch/gantt/internal/core/ports"
	"go.trai.ch/gantt/internal/engine/pool"
	"go.trai.ch/zerr"
)

// RebuildKey is the scheduler key rebuilds are debounced under.
const RebuildKey = "layout.rebuild"

// State is the rebuild state of an Orchestrator.
type State uint8

const (
	// StateClean means the last layout reflects every input.
	StateClean State = iota
	// StateDirty means an input changed and a rebuild is scheduled.
	StateDirty
	// StateRebuilding means a rebuild is running.
	StateRebuilding
)

func (s State) String() string {
	switch s {
	case StateClean:
		return "clean"
	case StateDirty:
		return "dirty"
	case StateRebuilding:
		return "rebuilding"
	default:
		return "unknown"
	}
}

// Inputs is everything a rebuild reads.
type Inputs struct {
	Start      time.Time
	End        time.Time
	Unit       domain.TimeUnit
	Locale     domain.Locale
	DateFormat string
	TimeFormat string
	Tasks      []domain.Task
	Viewport   domain.Viewport
	Options    domain.LayoutOptions
}

// Orchestrator tracks invalidations and rebuilds the layout after a debounce delay.
//
// Inputs are guarded by mu. Rebuilds are serialized by rebuildMu, which also
// guards the pool and the visible elements, since the scheduler fires on its own goroutine.
type Orchestrator struct {
	scheduler ports.Scheduler
	ticks     ports.TickProvider
	tracer    ports.Tracer
	logger    ports.Logger
	sink      ports.LayoutSink
	host      ports.ElementHost

	mu            sync.Mutex
	in            Inputs
	dirty         bool
	rebuilding    bool
	closed        bool
	reasons       []string
	unsubscribers []func()

	rebuildMu sync.Mutex
	pool      *pool.Pool
	visible   []domain.Element
	last      *domain.Layout
	rebuilds  int
}

// New creates an Orchestrator with default layout options and the invariant locale.
func New(
	scheduler ports.Scheduler,
	ticks ports.TickProvider,
	elements *pool.Pool,
	tracer ports.Tracer,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		scheduler: scheduler,
		ticks:     ticks,
		pool:      elements,
		tracer:    tracer,
		logger:    logger,
		in: Inputs{
			Unit:    domain.UnitDay,
			Locale:  domain.InvariantLocale,
			Options: domain.DefaultLayoutOptions(),
		},
	}
}

// WithSink sets the sink every layout is presented to.
func (o *Orchestrator) WithSink(sink ports.LayoutSink) *Orchestrator {
	o.sink = sink
	return o
}

// WithHost sets the host elements are attached to.
func (o *Orchestrator) WithHost(host ports.ElementHost) *Orchestrator {
	o.host = host
	return o
}

// SetRange sets the timeline bounds.
func (o *Orchestrator) SetRange(start, end time.Time) {
	o.update("range", func(in *Inputs) {
		in.Start, in.End = start, end
	})
}

// SetUnit sets the column granularity.
func (o *Orchestrator) SetUnit(unit domain.TimeUnit) {
	if !unit.Valid() {
		panic(domain.UnsupportedUnit(unit))
	}
	o.update("unit", func(in *Inputs) {
		in.Unit = unit
	})
}

// SetLocale sets the calendar conventions.
func (o *Orchestrator) SetLocale(locale domain.Locale) {
	o.update("locale", func(in *Inputs) {
		in.Locale = locale
	})
}

// SetFormats sets the header label overrides. Empty strings select the defaults.
func (o *Orchestrator) SetFormats(dateFormat, timeFormat string) {
	o.update("formats", func(in *Inputs) {
		in.DateFormat, in.TimeFormat = dateFormat, timeFormat
	})
}

// SetTasks replaces the task collection. The slice is copied.
func (o *Orchestrator) SetTasks(tasks []domain.Task) {
	tasks = slices.Clone(tasks)
	o.update("tasks", func(in *Inputs) {
		in.Tasks = tasks
	})
}

// SetViewport sets the visible scroll window.
func (o *Orchestrator) SetViewport(vp domain.Viewport) {
	o.update("viewport", func(in *Inputs) {
		in.Viewport = vp
	})
}

// SetOptions replaces the layout options.
func (o *Orchestrator) SetOptions(opts domain.LayoutOptions) {
	o.update("options", func(in *Inputs) {
		in.Options = opts
	})
}

// Inputs returns a snapshot of the current inputs.
func (o *Orchestrator) Inputs() Inputs {
	o.mu.Lock()
	defer o.mu.Unlock()
	in := o.in
	in.Tasks = slices.Clone(in.Tasks)
	return in
}

func (o *Orchestrator) update(reason string, apply func(*Inputs)) {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}
	apply(&o.in)
	o.mu.Unlock()

	o.Invalidate(reason)
}

// Invalidate marks the layout dirty and re-arms the debounced rebuild.
// It is ignored after Close.
func (o *Orchestrator) Invalidate(reason string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return
	}
	o.dirty = true
	o.reasons = append(o.reasons, reason)

	delay := o.in.Options.DebounceDelay
	if delay <= 0 {
		delay = domain.DefaultDebounceDelay
	}
	o.scheduler.Schedule(RebuildKey, delay, o.onTimer)
}

// onTimer runs the debounced rebuild. A timer that fires while Close runs finds
// the orchestrator closed and returns quietly.
func (o *Orchestrator) onTimer() {
	_, err := o.Rebuild(context.Background())
	if err != nil && !errors.Is(err, domain.ErrOrchestratorClosed) {
		o.logger.Error(err)
	}
}

// State reports the rebuild state.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch {
	case o.rebuilding:
		return StateRebuilding
	case o.dirty:
		return StateDirty
	default:
		return StateClean
	}
}

// Flush cancels the pending rebuild and rebuilds immediately.
func (o *Orchestrator) Flush(ctx context.Context) (*domain.Layout, error) {
	o.scheduler.Cancel(RebuildKey)
	return o.Rebuild(ctx)
}

// Rebuild recomputes the layout from the current inputs and presents it to the sink.
// Rebuilds never overlap; a call made while another rebuild runs waits for it.
func (o *Orchestrator) Rebuild(ctx context.Context) (*domain.Layout, error) {
	o.rebuildMu.Lock()
	defer o.rebuildMu.Unlock()

	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return nil, domain.ErrOrchestratorClosed
	}
	in := o.in
	reasons := o.reasons
	o.reasons = nil
	o.dirty = false
	o.rebuilding = true
	o.mu.Unlock()

	defer func() {
		o.mu.Lock()
		o.rebuilding = false
		o.mu.Unlock()
	}()

	_, span := o.tracer.Start(ctx, RebuildKey,
		ports.WithAttribute("tasks", len(in.Tasks)),
		ports.WithAttribute("unit", in.Unit.String()),
		ports.WithAttribute("reasons", reasons),
	)
	defer span.End()

	if in.Start.IsZero() || in.End.IsZero() {
		err := zerr.Wrap(domain.ErrMissingTimelineRange, "rebuild layout")
		span.RecordError(err)
		return nil, err
	}

	layout := o.build(in)
	o.last = layout
	o.rebuilds++

	span.SetAttribute("virtualized", layout.Virtualized)
	span.SetAttribute("placements", len(layout.Placements))
	span.SetAttribute("skipped", layout.Skipped)
	o.logger.Debug(fmt.Sprintf("layout rebuilt: %d columns, %d rows, %d placed, %d skipped",
		layout.Columns.Len(), layout.Rows.Len(), len(layout.Placements), layout.Skipped))

	if o.sink != nil {
		o.sink.Present(layout)
	}
	return layout, nil
}

// Last returns the most recent layout, or nil before the first rebuild.
func (o *Orchestrator) Last() *domain.Layout {
	o.rebuildMu.Lock()
	defer o.rebuildMu.Unlock()
	return o.last
}

// Subscribe registers a callback that Close runs to detach an external listener.
// After Close the callback runs immediately.
func (o *Orchestrator) Subscribe(unsubscribe func()) {
	if unsubscribe == nil {
		return
	}
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		unsubscribe()
		return
	}
	o.unsubscribers = append(o.unsubscribers, unsubscribe)
	o.mu.Unlock()
}

// Close cancels the pending rebuild, returns every visible element to the pool
// and runs the registered unsubscribe callbacks in reverse order.
// Later invalidations are ignored. Close is idempotent.
func (o *Orchestrator) Close() error {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return nil
	}
	o.closed = true
	o.dirty = false
	unsubscribers := o.unsubscribers
	o.unsubscribers = nil
	o.mu.Unlock()

	o.scheduler.Cancel(RebuildKey)

	o.rebuildMu.Lock()
	o.recycle()
	o.rebuildMu.Unlock()

	for _, fn := range slices.Backward(unsubscribers) {
		fn()
	}
	return nil
}

// Stats is a diagnostic snapshot of an Orchestrator.
type Stats struct {
	State    State
	Rebuilds int
	Visible  int
	Pool     pool.Stats
}

// Stats returns rebuild, element and pool counters.
func (o *Orchestrator) Stats() Stats {
	state := o.State()

	o.rebuildMu.Lock()
	defer o.rebuildMu.Unlock()
	return Stats{
		State:    state,
		Rebuilds: o.rebuilds,
		Visible:  len(o.visible),
		Pool:     o.pool.Stats(),
	}
}
