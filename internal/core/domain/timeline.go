package domain

import (
	"strings"
	"time"
)

// TimelineKey identifies one tick sequence.
// Equal keys always produce equal sequences.
type TimelineKey struct {
	Start  time.Time
	End    time.Time
	Unit   TimeUnit
	Locale Locale
}

// NewTimelineKey creates a key for the given range, unit and locale.
func NewTimelineKey(start, end time.Time, unit TimeUnit, locale Locale) TimelineKey {
	return TimelineKey{Start: start, End: end, Unit: unit, Locale: locale}
}

// Canonical renders the key as a string suitable for hashing and map lookups.
// The location name is part of the key so equal instants in different zones do not collide.
func (k TimelineKey) Canonical() string {
	var b strings.Builder
	b.Grow(96)
	b.WriteString(k.Start.Format(time.RFC3339Nano))
	b.WriteByte('|')
	b.WriteString(k.End.Format(time.RFC3339Nano))
	b.WriteByte('|')
	b.WriteString(k.Start.Location().String())
	b.WriteByte('|')
	b.WriteString(k.Unit.String())
	b.WriteByte('|')
	b.WriteString(k.Locale.Key())
	return b.String()
}

// TaskSpan is the column placement of a task: the first tick index and the number of columns it covers.
type TaskSpan struct {
	StartIndex int
	ColumnSpan int
}

// EndIndex returns the last tick index covered by the span.
func (s TaskSpan) EndIndex() int {
	return s.StartIndex + s.ColumnSpan - 1
}

// Viewport is the scroll position and size of the visible chart area, in pixels.
type Viewport struct {
	OffsetX float64
	OffsetY float64
	Width   float64
	Height  float64
}

// VisibleRange is an inclusive window of item indices.
type VisibleRange struct {
	StartIndex int
	EndIndex   int
}

// EmptyRange is the range returned when there is nothing to show.
var EmptyRange = VisibleRange{StartIndex: 0, EndIndex: -1}

// FullRange returns the range covering every one of total items.
func FullRange(total int) VisibleRange {
	if total <= 0 {
		return EmptyRange
	}
	return VisibleRange{StartIndex: 0, EndIndex: total - 1}
}

// IsEmpty reports whether the range contains no index.
func (r VisibleRange) IsEmpty() bool {
	return r.EndIndex < r.StartIndex
}

// Len returns the number of indices in the range.
func (r VisibleRange) Len() int {
	if r.IsEmpty() {
		return 0
	}
	return r.EndIndex - r.StartIndex + 1
}

// Contains reports whether i is inside the range.
func (r VisibleRange) Contains(i int) bool {
	return i >= r.StartIndex && i <= r.EndIndex
}
