//nolint:testpackage // Drives the unexported reload loop directly.
package app

import (
	"errors"
	"iter"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gantt/internal/adapters/debounce"
	"go.trai.ch/gantt/internal/adapters/telemetry"
	"go.trai.ch/gantt/internal/adapters/tickcache"
	"go.trai.ch/gantt/internal/core/domain"
	"go.trai.ch/gantt/internal/core/ports"
	"go.trai.ch/gantt/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type scriptedWatcher struct {
	ports.Watcher
	events []ports.WatchEvent
}

func (w *scriptedWatcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for _, e := range w.events {
			if !yield(e) {
				return
			}
		}
	}
}

type note struct {
	text string
	err  error
}

type recordingNotifier struct {
	notes []note
}

func (n *recordingNotifier) Notify(text string, err error) {
	n.notes = append(n.notes, note{text: text, err: err})
}

func TestFollow_ReloadsOnEveryEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockProjectLoader(ctrl)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	updated := &domain.Project{
		Path: "/work/gantt.yaml",
		Timeline: domain.TimelineSettings{
			Start: start, End: start.AddDate(0, 0, 9), Unit: domain.UnitDay, Locale: domain.InvariantLocale,
		},
		Tasks: []domain.Task{{ID: domain.NewInternedString("ship"), Start: start, End: start}},
	}

	gomock.InOrder(
		loader.EXPECT().Load(gomock.Any(), "").Return(nil, domain.ErrConfigParseFailed),
		loader.EXPECT().Load(gomock.Any(), "").Return(updated, nil),
	)

	w := &scriptedWatcher{events: []ports.WatchEvent{
		{Path: "/work/gantt.yaml", Operation: ports.OpWrite},
		{Path: "/work/gantt.yaml", Operation: ports.OpCreate},
	}}
	sched := debounce.NewScheduler()
	defer sched.Stop()

	a := New(loader, tickcache.New(), sched, telemetry.NewNoOpTracer(), w, log).WithWorkDir("/work")
	o := a.newOrchestrator(updated)
	defer func() { _ = o.Close() }()

	n := &recordingNotifier{}
	a.follow(o, n, ProjectOptions{})

	require.Len(t, n.notes, 2)
	assert.True(t, errors.Is(n.notes[0].err, domain.ErrConfigParseFailed))
	assert.Equal(t, note{text: "reloaded gantt.yaml"}, n.notes[1])

	in := o.Inputs()
	assert.Equal(t, updated.Tasks, in.Tasks)
	assert.Equal(t, updated.Timeline.End, in.End)
}

func TestWarmKeys_SkipsUnrenderableUnits(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	project := &domain.Project{Timeline: domain.TimelineSettings{
		Start: start, End: start.AddDate(1, 6, 0), Locale: domain.InvariantLocale,
	}}

	keys := warmKeys(project)

	units := make([]domain.TimeUnit, 0, len(keys))
	for _, k := range keys {
		units = append(units, k.Unit)
	}
	assert.Equal(t, []domain.TimeUnit{domain.UnitWeek, domain.UnitMonth, domain.UnitYear}, units)
}

func TestTerminalViewport(t *testing.T) {
	vp := terminalViewport(80, 24, domain.LayoutOptions{})
	assert.Equal(t, domain.Viewport{Width: 600, Height: 704}, vp)
}
