package linear_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/muesli/termenv"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/gantt/internal/adapters/linear"
	"go.trai.ch/gantt/internal/core/domain"
)

func ascii() termenv.Profile { return termenv.Ascii }

func sprintLayout() *domain.Layout {
	start := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	ticks := make([]time.Time, 7)
	labels := make([]string, 7)
	for i := range ticks {
		ticks[i] = start.AddDate(0, 0, i)
		labels[i] = ticks[i].Format("Mon")
	}
	return &domain.Layout{
		Ticks:    ticks,
		Labels:   labels,
		Unit:     domain.UnitDay,
		Columns:  domain.FullRange(7),
		Rows:     domain.FullRange(3),
		RowCount: 3,
		Placements: []domain.Placement{
			{Name: "Design", RowIndex: 0, StartIndex: 0, ColumnSpan: 3},
			{Name: "Build", RowIndex: 1, StartIndex: 2, ColumnSpan: 3},
			{Name: "Ship", RowIndex: 2, StartIndex: 6, ColumnSpan: 1},
		},
	}
}

func TestRenderer_Present(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := linear.NewRendererWithProfile(&stdout, &stderr, ascii)

	r.Present(sprintLayout())

	g := goldie.New(t)
	g.Assert(t, "present_sprint", stdout.Bytes())
	assert.Equal(t, "✓ 3 placed, 0 skipped, 7 of 7 day columns\n", stderr.String())
	assert.Equal(t, 1, r.Presented())
}

func TestRenderer_PresentSkipped(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := linear.NewRendererWithProfile(&stdout, &stderr, ascii)

	l := sprintLayout()
	l.Skipped = 2
	r.Present(l)

	assert.Equal(t, "! 3 placed, 2 skipped, 7 of 7 day columns\n", stderr.String())
}

func TestRenderer_SeparatesLayouts(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := linear.NewRendererWithProfile(&stdout, &stderr, ascii)

	r.Present(sprintLayout())
	first := stdout.String()
	r.Present(sprintLayout())

	assert.Equal(t, first+"\n"+first, stdout.String())
	assert.Equal(t, 2, r.Presented())
}

func TestRenderer_IgnoresNil(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := linear.NewRendererWithProfile(&stdout, &stderr, ascii)

	r.Present(nil)

	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
	assert.Equal(t, 0, r.Presented())
}

func TestRenderer_Colors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := linear.NewRendererWithProfile(&stdout, &stderr, func() termenv.Profile { return termenv.ANSI })

	r.Present(sprintLayout())

	assert.Contains(t, stdout.String(), "\x1b[")
	assert.Contains(t, stdout.String(), "███")
}
