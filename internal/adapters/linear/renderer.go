// Package linear prints layouts as plain text charts for pipes, CI and one-shot renders.
package linear

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/gantt/internal/core/domain"
	"go.trai.ch/gantt/internal/ui/chart"
	"go.trai.ch/gantt/internal/ui/output"
	"go.trai.ch/gantt/internal/ui/style"
)

// Renderer implements ports.LayoutSink by writing each layout as a text chart.
// The chart goes to stdout and a one-line summary goes to stderr.
type Renderer struct {
	stdout *termenv.Output
	stderr *termenv.Output

	mu        sync.Mutex
	presented int
}

// NewRenderer creates a Renderer. Nil writers default to os.Stdout and os.Stderr.
func NewRenderer(stdout, stderr io.Writer) *Renderer {
	return newRenderer(stdout, stderr, output.ColorProfile)
}

func newRenderer(stdout, stderr io.Writer, profile func() termenv.Profile) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &Renderer{
		stdout: output.NewWithProfile(stdout, profile),
		stderr: output.NewWithProfile(stderr, profile),
	}
}

// Present writes layout to the renderer's outputs. Consecutive layouts are separated by a blank line.
func (r *Renderer) Present(layout *domain.Layout) {
	if layout == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.presented > 0 {
		_, _ = fmt.Fprintln(r.stdout)
	}
	r.presented++

	_, _ = io.WriteString(r.stdout, chart.Render(layout, r.styles()))

	icon, color := style.Check, style.Green
	if layout.Skipped > 0 {
		icon, color = style.Warning, style.Yellow
	}
	prefix := r.stderr.String(icon).Foreground(r.stderr.Color(string(color)))
	summary := r.stderr.String(chart.Summary(layout)).Faint()
	_, _ = fmt.Fprintf(r.stderr, "%s %s\n", prefix, summary)
}

// Presented returns how many layouts have been written.
func (r *Renderer) Presented() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.presented
}

func (r *Renderer) styles() chart.Styles {
	out := r.stdout
	color := func(c string) func(string) string {
		return func(s string) string {
			return out.String(s).Foreground(out.Color(c)).String()
		}
	}
	return chart.Styles{
		Header: func(s string) string { return out.String(s).Bold().String() },
		Bar:    color(string(style.Iris)),
		Empty:  color(string(style.Slate)),
		Weekend: func(s string) string {
			return out.String(s).Faint().String()
		},
	}
}
