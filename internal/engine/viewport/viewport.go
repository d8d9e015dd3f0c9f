// Package viewport decides which rows and columns of a chart are materialized.
package viewport

import (
	"math"

	"go.trai.ch/gantt/internal/core/domain"
)

// Buffer bounds, in items, added on each side of the visible window.
const (
	MinBuffer = 2
	MaxBuffer = 10
)

// ShouldVirtualize reports whether itemCount items exceed a positive maxVisibleItems.
func ShouldVirtualize(itemCount, maxVisibleItems int) bool {
	return maxVisibleItems > 0 && itemCount > maxVisibleItems
}

// BufferSize returns half the visible count, clamped to [MinBuffer, MaxBuffer].
func BufferSize(visibleCount int) int {
	return clamp(visibleCount/2, MinBuffer, MaxBuffer)
}

// VisibleRange returns the buffered window of items intersecting the viewport.
//
// Degenerate geometry (non-positive or NaN sizes) yields the full range; zero items yield
// domain.EmptyRange. For totalItems > 0 the result always satisfies
// 0 <= StartIndex <= EndIndex <= totalItems-1.
func VisibleRange(totalItems int, viewportSize, scrollOffset, itemSize float64) domain.VisibleRange {
	if totalItems <= 0 {
		return domain.EmptyRange
	}
	if !positive(viewportSize) || !positive(itemSize) {
		return domain.FullRange(totalItems)
	}
	if math.IsNaN(scrollOffset) || scrollOffset < 0 {
		scrollOffset = 0
	}

	last := float64(totalItems - 1)
	start := int(math.Min(math.Floor(scrollOffset/itemSize), last))
	visible := int(math.Min(math.Ceil(viewportSize/itemSize), float64(totalItems)))
	end := start + visible - 1

	buffer := BufferSize(visible)
	first := clamp(start-buffer, 0, totalItems-1)
	return domain.VisibleRange{
		StartIndex: first,
		EndIndex:   clamp(end+buffer, first, totalItems-1),
	}
}

// Window is the pair of index ranges materialized for one viewport.
type Window struct {
	Rows    domain.VisibleRange
	Columns domain.VisibleRange
}

// Plan computes the row and column windows for vp.
func Plan(vp domain.Viewport, rows, columns int, rowHeight, columnWidth float64) Window {
	return Window{
		Rows:    VisibleRange(rows, vp.Height, vp.OffsetY, rowHeight),
		Columns: VisibleRange(columns, vp.Width, vp.OffsetX, columnWidth),
	}
}

func positive(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
