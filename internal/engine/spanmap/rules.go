package spanmap

import (
	"fmt"
	"time"

	"go.trai.ch/gantt/internal/core/domain"
	"go.trai.ch/gantt/internal/engine/timeaxis"
)

const day = 24 * time.Hour

// maxSpans caps the range each unit can reasonably render.
var maxSpans = map[domain.TimeUnit]time.Duration{
	domain.UnitHour:  30 * day,
	domain.UnitDay:   365 * day,
	domain.UnitWeek:  2 * 365 * day,
	domain.UnitMonth: 10 * 365 * day,
	domain.UnitYear:  50 * 365 * day,
}

// MaxSpan returns the longest range ValidateTimeRange accepts for unit.
func MaxSpan(unit domain.TimeUnit) time.Duration {
	span, ok := maxSpans[unit]
	if !ok {
		panic(domain.UnsupportedUnit(unit))
	}
	return span
}

// OptimalTimeUnit picks the finest unit whose approximate column count over [start, end]
// is positive and at most maxColumns. It falls back to years.
func OptimalTimeUnit(start, end time.Time, maxColumns int) domain.TimeUnit {
	if end.Before(start) {
		start, end = end, start
	}
	length := float64(end.Sub(start))

	for _, unit := range []domain.TimeUnit{domain.UnitHour, domain.UnitDay, domain.UnitWeek, domain.UnitMonth} {
		columns := length / float64(nominal(unit))
		if columns > 0 && columns <= float64(maxColumns) {
			return unit
		}
	}
	return domain.UnitYear
}

func nominal(unit domain.TimeUnit) time.Duration {
	if unit == domain.UnitMonth {
		return timeaxis.ApproxMonth
	}
	return timeaxis.UnitDuration(unit, time.Time{})
}

// ValidateTimeRange checks that [start, end] is ordered and short enough to render with unit.
// It never fails hard: the result is a verdict plus a message for the user.
func ValidateTimeRange(start, end time.Time, unit domain.TimeUnit) (bool, string) {
	if start.After(end) {
		return false, "start date must not be after end date"
	}

	limit := MaxSpan(unit)
	if span := end.Sub(start); span > limit {
		return false, fmt.Sprintf(
			"time range of %d days is too long for the %s view (maximum %d days)",
			int(span/day), unit, int(limit/day),
		)
	}
	return true, ""
}

// WorkingDays counts the days from start to end inclusive that are neither a weekend nor a holiday.
// Only the calendar date of each value is considered.
func WorkingDays(start, end time.Time, holidays ...time.Time) int {
	first := civil(start)
	last := civil(end)
	if first.After(last) {
		return 0
	}

	off := make(map[time.Time]struct{}, len(holidays))
	for _, h := range holidays {
		off[civil(h)] = struct{}{}
	}

	count := 0
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		if _, ok := off[d]; ok {
			continue
		}
		count++
	}
	return count
}

func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
