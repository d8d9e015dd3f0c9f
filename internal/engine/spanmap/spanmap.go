// Package spanmap maps task dates onto tick indices.
package spanmap

import (
	"sort"
	"time"

	"go.trai.ch/gantt/internal/core/domain"
	"go.trai.ch/gantt/internal/engine/timeaxis"
)

// binarySearchThreshold is the tick count above which index lookups switch to binary search.
const binarySearchThreshold = 100

// Mapper resolves task dates to tick indices under one locale.
type Mapper struct {
	locale domain.Locale
}

// New creates a Mapper aligning weeks with locale.
func New(locale domain.Locale) *Mapper {
	return &Mapper{locale: locale}
}

// Locale returns the locale the mapper aligns with.
func (m *Mapper) Locale() domain.Locale {
	return m.locale
}

// FindTickIndex returns the index of target in ticks, or the greatest index whose tick is not after target.
// Targets before the first tick, and empty sequences, resolve to 0.
// When align is set, target is floor-aligned to unit first.
func (m *Mapper) FindTickIndex(ticks []time.Time, target time.Time, align bool, unit domain.TimeUnit) int {
	if len(ticks) == 0 {
		return 0
	}
	if align {
		target = timeaxis.AlignToUnitFloor(target, unit, m.locale)
	}

	if len(ticks) > binarySearchThreshold {
		return searchBinary(ticks, target)
	}
	return searchLinear(ticks, target)
}

func searchLinear(ticks []time.Time, target time.Time) int {
	idx := 0
	for i, tick := range ticks {
		if tick.After(target) {
			break
		}
		idx = i
	}
	return idx
}

func searchBinary(ticks []time.Time, target time.Time) int {
	// First index whose tick is after target.
	i := sort.Search(len(ticks), func(i int) bool { return ticks[i].After(target) })
	if i == 0 {
		return 0
	}
	return i - 1
}

// TaskSpan places a task on ticks.
//
// Both ends are floor-aligned to unit. When the raw end lies past its aligned tick and the
// task crosses at least one tick boundary, the partial trailing unit gets its own column
// (capped at the last tick). A task inside a single tick interval always spans one column.
func (m *Mapper) TaskSpan(ticks []time.Time, start, end time.Time, unit domain.TimeUnit) domain.TaskSpan {
	if end.Before(start) {
		start, end = end, start
	}
	if len(ticks) == 0 {
		return domain.TaskSpan{StartIndex: 0, ColumnSpan: 1}
	}

	alignedStart := timeaxis.AlignToUnitFloor(start, unit, m.locale)
	alignedEnd := timeaxis.AlignToUnitFloor(end, unit, m.locale)

	startIdx := m.FindTickIndex(ticks, alignedStart, false, unit)
	endIdx := m.FindTickIndex(ticks, alignedEnd, false, unit)

	if endIdx > startIdx && end.After(ticks[endIdx]) && endIdx < len(ticks)-1 {
		endIdx++
	}

	return domain.TaskSpan{
		StartIndex: startIdx,
		ColumnSpan: max(1, endIdx-startIdx+1),
	}
}

// SpanDates converts a span back to the dates TaskSpan maps onto it.
// The start is the first covered tick and the end the last covered tick, so
// TaskSpan(ticks, SpanDates(ticks, s)) == s for any span inside ticks.
func (m *Mapper) SpanDates(ticks []time.Time, span domain.TaskSpan) (start, end time.Time) {
	if len(ticks) == 0 {
		return time.Time{}, time.Time{}
	}
	first := clamp(span.StartIndex, 0, len(ticks)-1)
	last := clamp(span.StartIndex+max(1, span.ColumnSpan)-1, first, len(ticks)-1)
	return ticks[first], ticks[last]
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
