// Package chart draws a layout as a fixed-width text grid.
package chart

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.trai.ch/gantt/internal/core/domain"
	"go.trai.ch/gantt/internal/ui/style"
)

// Label gutter bounds, in runes.
const (
	MinLabelWidth = 4
	MaxLabelWidth = 24
)

// Styles decorate the parts of a chart. Nil functions leave text unchanged.
type Styles struct {
	Header  func(string) string
	Label   func(string) string
	Bar     func(string) string
	Empty   func(string) string
	Weekend func(string) string
}

func apply(fn func(string) string, s string) string {
	if fn == nil {
		return s
	}
	return fn(s)
}

// ColumnWidth returns the width of one column: the widest label plus a space.
func ColumnWidth(l *domain.Layout) int {
	width := 1
	for _, label := range l.Labels {
		width = max(width, utf8.RuneCountInString(label))
	}
	return width + 1
}

// Render draws the header line and one line per materialized row.
func Render(l *domain.Layout, s Styles) string {
	if l == nil || l.Columns.IsEmpty() {
		return ""
	}

	colWidth := ColumnWidth(l)
	rows := rowLabels(l)
	gutter := labelWidth(rows)

	var b strings.Builder

	b.WriteString(apply(s.Label, pad("Task", gutter)))
	b.WriteString(style.Separator)
	for _, label := range l.Labels {
		b.WriteString(apply(s.Header, pad(label, colWidth)))
	}
	b.WriteString("\n")

	bars := barsByRow(l)
	for r := l.Rows.StartIndex; r <= l.Rows.EndIndex; r++ {
		b.WriteString(apply(s.Label, pad(truncate(rows[r], gutter), gutter)))
		b.WriteString(style.Separator)
		for c := l.Columns.StartIndex; c <= l.Columns.EndIndex; c++ {
			b.WriteString(cell(l, bars[r], c, colWidth, s))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func cell(l *domain.Layout, bars []domain.Placement, column, width int, s Styles) string {
	for _, p := range bars {
		if column < p.StartIndex || column > p.StartIndex+p.ColumnSpan-1 {
			continue
		}
		fill := strings.Repeat(style.BarFill, width)
		if column == p.StartIndex+p.ColumnSpan-1 {
			fill = strings.Repeat(style.BarFill, width-1) + " "
		}
		return apply(s.Bar, fill)
	}

	if l.Unit == domain.UnitDay && isWeekend(l.Ticks[column]) {
		return apply(s.Weekend, pad(style.Weekend, width))
	}
	return apply(s.Empty, pad(style.Empty, width))
}

// rowLabels names each row after the tasks placed on it.
func rowLabels(l *domain.Layout) map[int]string {
	labels := make(map[int]string, l.Rows.Len())
	for _, p := range l.Placements {
		if existing, ok := labels[p.RowIndex]; ok {
			labels[p.RowIndex] = existing + ", " + p.Name
			continue
		}
		labels[p.RowIndex] = p.Name
	}
	return labels
}

func labelWidth(labels map[int]string) int {
	width := MinLabelWidth
	for _, label := range labels {
		width = max(width, utf8.RuneCountInString(label))
	}
	return min(width, MaxLabelWidth) + 1
}

func barsByRow(l *domain.Layout) map[int][]domain.Placement {
	bars := make(map[int][]domain.Placement, len(l.Placements))
	for _, p := range l.Placements {
		bars[p.RowIndex] = append(bars[p.RowIndex], p)
	}
	return bars
}

func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// truncate shortens s to fit a gutter of width, keeping one trailing space.
func truncate(s string, width int) string {
	limit := width - 1
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit-1]) + "…"
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// Summary describes a layout in one line.
func Summary(l *domain.Layout) string {
	summary := fmt.Sprintf("%d placed, %d skipped, %d of %d %s columns",
		len(l.Placements), l.Skipped, l.Columns.Len(), len(l.Ticks), l.Unit)
	if l.Virtualized {
		summary += fmt.Sprintf(", rows %d-%d of %d", l.Rows.StartIndex, l.Rows.EndIndex, l.RowCount)
	}
	return summary
}

// GutterWidth returns the width of the label gutter including the separator.
func GutterWidth(l *domain.Layout) int {
	return labelWidth(rowLabels(l)) + utf8.RuneCountInString(style.Separator)
}

// Crop narrows l to the given row and column windows.
// Placements outside the cropped rows or columns are dropped.
func Crop(l *domain.Layout, rows, columns domain.VisibleRange) *domain.Layout {
	out := *l
	out.Rows = intersect(l.Rows, rows)
	out.Columns = intersect(l.Columns, columns)

	out.Labels = nil
	if !out.Columns.IsEmpty() {
		from := out.Columns.StartIndex - l.Columns.StartIndex
		out.Labels = l.Labels[from : from+out.Columns.Len()]
	}

	out.Placements = nil
	for _, p := range l.Placements {
		if !out.Rows.Contains(p.RowIndex) {
			continue
		}
		if p.StartIndex > out.Columns.EndIndex || p.StartIndex+p.ColumnSpan-1 < out.Columns.StartIndex {
			continue
		}
		out.Placements = append(out.Placements, p)
	}
	return &out
}

func intersect(a, b domain.VisibleRange) domain.VisibleRange {
	r := domain.VisibleRange{
		StartIndex: max(a.StartIndex, b.StartIndex),
		EndIndex:   min(a.EndIndex, b.EndIndex),
	}
	if r.IsEmpty() {
		return domain.EmptyRange
	}
	return r
}
