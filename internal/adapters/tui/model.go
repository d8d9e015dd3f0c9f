// Package tui provides the interactive terminal chart viewer.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/gantt/internal/core/domain"
	"go.trai.ch/gantt/internal/ui/chart"
	"go.trai.ch/gantt/internal/ui/style"
)

// Lines used by everything except the chart body: title, column header, status and help.
const chromeHeight = 4

// Column and gutter widths assumed until the first layout arrives.
const (
	fallbackGutter      = chart.MinLabelWidth + 2
	fallbackColumnWidth = 7
)

// Controller receives the viewer's requests for new layouts.
type Controller interface {
	SetViewport(vp domain.Viewport)
	SetUnit(unit domain.TimeUnit)
	Invalidate(reason string)
}

// Options configure a Model.
type Options struct {
	Title       string
	Unit        domain.TimeUnit
	RowHeight   float64
	ColumnWidth float64
}

// Model is the Bubble Tea model of the chart viewer.
// It scrolls in whole rows and columns and reports the resulting viewport to its Controller.
type Model struct {
	ctrl Controller
	opts Options
	keys keyMap
	help help.Model

	layouts <-chan *domain.Layout
	notes   <-chan MsgStatus
	done    <-chan struct{}

	layout    *domain.Layout
	unit      domain.TimeUnit
	width     int
	height    int
	row       int
	col       int
	status    string
	statusErr bool
}

// NewModel creates a viewer model driving ctrl.
func NewModel(ctrl Controller, opts Options) *Model {
	if opts.RowHeight <= 0 {
		opts.RowHeight = domain.DefaultRowHeight
	}
	if opts.ColumnWidth <= 0 {
		opts.ColumnWidth = domain.DefaultColumnWidth
	}
	if opts.Title == "" {
		opts.Title = "gantt"
	}
	return &Model{
		ctrl: ctrl,
		opts: opts,
		keys: defaultKeyMap(),
		help: help.New(),
		unit: opts.Unit,
	}
}

// Init starts listening for layouts and status notes.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(waitForLayout(m.layouts, m.done), waitForNote(m.notes, m.done))
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.clampScroll()
		m.syncViewport()

	case MsgLayout:
		m.layout = msg.Layout
		if m.clampScroll() {
			m.syncViewport()
		}
		return m, waitForLayout(m.layouts, m.done)

	case MsgStatus:
		m.status = msg.Text
		m.statusErr = msg.Err != nil
		if msg.Err != nil {
			m.status = msg.Err.Error()
		}
		return m, waitForNote(m.notes, m.done)

	case MsgFeedClosed:
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.scroll(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.scroll(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.scroll(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.scroll(0, 1)
	case key.Matches(msg, m.keys.PageUp):
		m.scroll(-m.bodyRows(), 0)
	case key.Matches(msg, m.keys.PageDown):
		m.scroll(m.bodyRows(), 0)
	case key.Matches(msg, m.keys.Home):
		m.scroll(-m.row, -m.col)
	case key.Matches(msg, m.keys.ZoomIn):
		m.zoom(-1)
	case key.Matches(msg, m.keys.ZoomOut):
		m.zoom(1)
	case key.Matches(msg, m.keys.Refresh):
		m.ctrl.Invalidate("refresh")
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return nil
}

func (m *Model) scroll(rows, cols int) {
	prevRow, prevCol := m.row, m.col
	m.row += rows
	m.col += cols
	m.clampScroll()
	if m.row != prevRow || m.col != prevCol {
		m.syncViewport()
	}
}

// zoom moves step units along domain.TimeUnits and restarts at the first column.
func (m *Model) zoom(step int) {
	next := int(m.unit) + step
	if next < 0 || next >= len(domain.TimeUnits) {
		return
	}
	m.unit = domain.TimeUnits[next]
	m.col = 0
	m.ctrl.SetUnit(m.unit)
	m.syncViewport()
}

// clampScroll keeps the scroll position inside the chart. It reports whether anything moved.
func (m *Model) clampScroll() bool {
	prevRow, prevCol := m.row, m.col
	rows, cols := 0, 0
	if m.layout != nil {
		rows, cols = m.layout.RowCount, len(m.layout.Ticks)
	}
	m.row = max(0, min(m.row, rows-m.bodyRows()))
	m.col = max(0, min(m.col, cols-m.bodyCols()))
	return m.row != prevRow || m.col != prevCol
}

func (m *Model) bodyRows() int {
	return max(1, m.height-chromeHeight)
}

func (m *Model) bodyCols() int {
	gutter, width := fallbackGutter, fallbackColumnWidth
	if m.layout != nil && len(m.layout.Labels) > 0 {
		gutter, width = chart.GutterWidth(m.layout), chart.ColumnWidth(m.layout)
	}
	return max(1, (m.width-gutter)/width)
}

// Viewport returns the viewport in layout units for the current scroll position and size.
func (m *Model) Viewport() domain.Viewport {
	return domain.Viewport{
		OffsetX: float64(m.col) * m.opts.ColumnWidth,
		OffsetY: float64(m.row) * m.opts.RowHeight,
		Width:   float64(m.bodyCols()) * m.opts.ColumnWidth,
		Height:  float64(m.bodyRows()) * m.opts.RowHeight,
	}
}

func (m *Model) syncViewport() {
	if m.width == 0 || m.height == 0 {
		return
	}
	m.ctrl.SetViewport(m.Viewport())
}

// View renders the title, the visible part of the chart, the status line and the key help.
func (m *Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.opts.Title + " · " + m.unit.String()))
	b.WriteString("\n")
	b.WriteString(m.body())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) body() string {
	if m.layout == nil {
		return statusStyle.Render("Loading layout...")
	}
	rows := domain.VisibleRange{StartIndex: m.row, EndIndex: m.row + m.bodyRows() - 1}
	cols := domain.VisibleRange{StartIndex: m.col, EndIndex: m.col + m.bodyCols() - 1}
	out := chart.Render(chart.Crop(m.layout, rows, cols), chartStyles())
	return strings.TrimSuffix(out, "\n")
}

func (m *Model) statusLine() string {
	if m.statusErr {
		return errorStyle.Render(style.Cross + " " + m.status)
	}
	parts := make([]string, 0, 2)
	if m.layout != nil {
		parts = append(parts, chart.Summary(m.layout))
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	return statusStyle.Render(strings.Join(parts, " · "))
}

func waitForLayout(layouts <-chan *domain.Layout, done <-chan struct{}) tea.Cmd {
	if layouts == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case l := <-layouts:
			return MsgLayout{Layout: l}
		case <-done:
			return MsgFeedClosed{}
		}
	}
}

func waitForNote(notes <-chan MsgStatus, done <-chan struct{}) tea.Cmd {
	if notes == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case note := <-notes:
			return note
		case <-done:
			return MsgFeedClosed{}
		}
	}
}
