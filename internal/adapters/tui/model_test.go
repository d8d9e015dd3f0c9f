//nolint:testpackage // Tests drive unexported scroll state.
package tui

import (
	"errors"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gantt/internal/core/domain"
)

type fakeController struct {
	viewports   []domain.Viewport
	units       []domain.TimeUnit
	invalidated []string
}

func (f *fakeController) SetViewport(vp domain.Viewport) { f.viewports = append(f.viewports, vp) }
func (f *fakeController) SetUnit(unit domain.TimeUnit)   { f.units = append(f.units, unit) }
func (f *fakeController) Invalidate(reason string)       { f.invalidated = append(f.invalidated, reason) }

func (f *fakeController) lastViewport(t *testing.T) domain.Viewport {
	t.Helper()
	require.NotEmpty(t, f.viewports)
	return f.viewports[len(f.viewports)-1]
}

// bigLayout has 50 rows and 30 day columns labelled D01..D30.
func bigLayout() *domain.Layout {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ticks := make([]time.Time, 30)
	labels := make([]string, 30)
	for i := range ticks {
		ticks[i] = start.AddDate(0, 0, i)
		labels[i] = fmt.Sprintf("D%02d", i+1)
	}
	placements := make([]domain.Placement, 50)
	for i := range placements {
		placements[i] = domain.Placement{Name: fmt.Sprintf("T%d", i%10), RowIndex: i, StartIndex: i % 30, ColumnSpan: 2}
	}
	return &domain.Layout{
		Ticks:      ticks,
		Labels:     labels,
		Unit:       domain.UnitDay,
		Columns:    domain.FullRange(30),
		Rows:       domain.FullRange(50),
		RowCount:   50,
		Placements: placements,
	}
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel() (*Model, *fakeController) {
	ctrl := &fakeController{}
	m := NewModel(ctrl, Options{Title: "roadmap", Unit: domain.UnitDay})
	return m, ctrl
}

func TestModel_ResizeReportsViewport(t *testing.T) {
	m, ctrl := newTestModel()

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	// Fallback geometry: gutter 6, column 7 gives 10 columns; 24-4 gives 20 rows.
	assert.Equal(t, domain.Viewport{Width: 600, Height: 640}, ctrl.lastViewport(t))
}

func TestModel_ScrollWithinBounds(t *testing.T) {
	m, ctrl := newTestModel()
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m.Update(MsgLayout{Layout: bigLayout()})

	// Gutter 6 and column width 4 give 18 columns.
	require.Equal(t, 18, m.bodyCols())
	require.Equal(t, 20, m.bodyRows())

	m.Update(runeKey("j"))
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, domain.Viewport{OffsetX: 60, OffsetY: 32, Width: 1080, Height: 640}, ctrl.lastViewport(t))

	m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, 30, m.row, "row stops at RowCount minus visible rows")

	for range 40 {
		m.Update(runeKey("l"))
	}
	assert.Equal(t, 12, m.col, "column stops at tick count minus visible columns")

	m.Update(runeKey("g"))
	assert.Equal(t, 0, m.row)
	assert.Equal(t, 0, m.col)
	assert.Equal(t, domain.Viewport{Width: 1080, Height: 640}, ctrl.lastViewport(t))
}

func TestModel_ScrollAtEdgeDoesNotReport(t *testing.T) {
	m, ctrl := newTestModel()
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m.Update(MsgLayout{Layout: bigLayout()})
	reported := len(ctrl.viewports)

	m.Update(runeKey("k"))
	m.Update(runeKey("h"))

	assert.Len(t, ctrl.viewports, reported)
}

func TestModel_SmallerLayoutClampsScroll(t *testing.T) {
	m, ctrl := newTestModel()
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m.Update(MsgLayout{Layout: bigLayout()})
	m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	require.Equal(t, 20, m.row)

	small := bigLayout()
	small.RowCount = 25
	small.Rows = domain.FullRange(25)
	m.Update(MsgLayout{Layout: small})

	assert.Equal(t, 5, m.row)
	assert.InDelta(t, 160.0, ctrl.lastViewport(t).OffsetY, 0)
}

func TestModel_Zoom(t *testing.T) {
	m, ctrl := newTestModel()
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m.Update(MsgLayout{Layout: bigLayout()})
	m.Update(runeKey("l"))

	m.Update(runeKey("-"))
	assert.Equal(t, []domain.TimeUnit{domain.UnitWeek}, ctrl.units)
	assert.Equal(t, 0, m.col)

	m.Update(runeKey("+"))
	m.Update(runeKey("+"))
	m.Update(runeKey("+"))
	assert.Equal(t, []domain.TimeUnit{domain.UnitWeek, domain.UnitDay, domain.UnitHour}, ctrl.units,
		"zooming past the finest unit is ignored")
}

func TestModel_Refresh(t *testing.T) {
	m, ctrl := newTestModel()

	m.Update(runeKey("r"))

	assert.Equal(t, []string{"refresh"}, ctrl.invalidated)
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel()

	_, cmd := m.Update(runeKey("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestModel_Status(t *testing.T) {
	m, _ := newTestModel()
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	m.Update(MsgStatus{Text: "reloaded gantt.yaml"})
	assert.Contains(t, m.View(), "reloaded gantt.yaml")

	m.Update(MsgStatus{Err: errors.New("parse failed")})
	assert.True(t, m.statusErr)
	assert.Contains(t, m.View(), "parse failed")
}

func TestModel_View(t *testing.T) {
	m, _ := newTestModel()
	assert.Equal(t, "Initializing...", m.View())

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Contains(t, m.View(), "Loading layout...")

	m.Update(MsgLayout{Layout: bigLayout()})
	m.Update(runeKey("l"))
	view := m.View()

	assert.Contains(t, view, "roadmap · day")
	assert.Contains(t, view, "D02")
	assert.NotContains(t, view, "D01", "scrolled-out columns are not drawn")
	assert.Contains(t, view, "50 placed, 0 skipped, 30 of 30 day columns")
}

func TestModel_FeedClosed(t *testing.T) {
	m, _ := newTestModel()
	done := make(chan struct{})
	close(done)

	cmd := waitForLayout(make(chan *domain.Layout), done)
	require.NotNil(t, cmd)
	assert.Equal(t, MsgFeedClosed{}, cmd())

	_, next := m.Update(MsgFeedClosed{})
	assert.Nil(t, next)
	assert.Nil(t, waitForNote(nil, done))
}
