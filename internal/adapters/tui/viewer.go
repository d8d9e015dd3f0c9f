package tui

import (
	"context"
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/gantt/internal/core/domain"
)

const noteBuffer = 8

// Viewer runs a Model as a Bubble Tea program and implements ports.LayoutSink.
type Viewer struct {
	program *tea.Program
	model   *Model

	layouts chan *domain.Layout
	notes   chan MsgStatus
	done    chan struct{}

	doneOnce sync.Once
}

// NewViewer creates a viewer for model.
func NewViewer(model *Model, opts ...tea.ProgramOption) *Viewer {
	v := &Viewer{
		model:   model,
		layouts: make(chan *domain.Layout, 1),
		notes:   make(chan MsgStatus, noteBuffer),
		done:    make(chan struct{}),
	}
	model.layouts = v.layouts
	model.notes = v.notes
	model.done = v.done
	v.program = tea.NewProgram(model, opts...)
	return v
}

// Present hands layout to the program. Only the newest undelivered layout is kept, so
// Present never blocks the rebuild that produced it.
func (v *Viewer) Present(layout *domain.Layout) {
	for {
		select {
		case v.layouts <- layout:
			return
		default:
		}
		select {
		case <-v.layouts:
		default:
		}
	}
}

// Notify shows text on the status line, or err when it is non-nil.
// Notes are dropped while the buffer is full.
func (v *Viewer) Notify(text string, err error) {
	select {
	case v.notes <- MsgStatus{Text: text, Err: err}:
	default:
	}
}

// Run blocks until the user quits or ctx is canceled.
func (v *Viewer) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, v.program.Quit)
	defer stop()

	_, err := v.program.Run()
	v.doneOnce.Do(func() { close(v.done) })
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return errors.Join(domain.ErrViewerFailed, err)
	}
	return nil
}

// Quit asks the program to exit.
func (v *Viewer) Quit() {
	v.program.Quit()
}
