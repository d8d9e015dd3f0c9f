// Package timeaxis generates, aligns and formats the ticks of a timeline.
package timeaxis

import (
	"fmt"
	"time"

	"go.trai.ch/gantt/internal/core/domain"
)

const hoursPerDay = 24

// Default tick layouts per unit. Week labels are built from the week number instead.
const (
	HourLayout  = "15:04"
	DayLayout   = "Jan 02"
	MonthLayout = "2006 Jan"
	YearLayout  = "2006"
)

// GenerateTicks returns the ascending tick sequence covering [start, end].
//
// Hour ticks step one hour from start itself. Every other unit starts at the unit
// floor of start and stops at the unit floor of end. Reversed bounds are swapped.
// The result is never empty: if nothing would be produced it holds start alone.
// An unknown unit panics.
func GenerateTicks(start, end time.Time, unit domain.TimeUnit, locale domain.Locale) []time.Time {
	if start.After(end) {
		start, end = end, start
	}
	end = end.In(start.Location())

	var ticks []time.Time
	switch unit {
	case domain.UnitHour:
		ticks = make([]time.Time, 0, estimate(start, end, time.Hour))
		for t := start; !t.After(end); t = t.Add(time.Hour) {
			ticks = append(ticks, t)
		}
	case domain.UnitDay, domain.UnitWeek, domain.UnitMonth, domain.UnitYear:
		first := AlignToUnitFloor(start, unit, locale)
		last := AlignToUnitFloor(end, unit, locale)
		ticks = make([]time.Time, 0, estimate(first, last, approximate(unit)))
		// Each tick is derived from first, so a skipped midnight cannot shift later ticks.
		for i := 0; ; i++ {
			t := AddUnits(first, unit, i)
			if t.After(last) {
				break
			}
			ticks = append(ticks, t)
		}
	default:
		panic(domain.UnsupportedUnit(unit))
	}

	if len(ticks) == 0 {
		return []time.Time{start}
	}
	return ticks
}

// AlignToUnitFloor returns the start of the unit containing t, in t's location.
// Week floors land on locale.FirstDayOfWeek. When a daylight saving change skips
// midnight, the unit starts at the first instant of its day.
func AlignToUnitFloor(t time.Time, unit domain.TimeUnit, locale domain.Locale) time.Time {
	y, m, d := t.Date()
	loc := t.Location()

	switch unit {
	case domain.UnitHour:
		return time.Date(y, m, d, t.Hour(), 0, 0, 0, loc)
	case domain.UnitDay:
		return startOfDay(y, m, d, loc)
	case domain.UnitWeek:
		back := (int(t.Weekday()) - int(locale.FirstDayOfWeek) + 7) % 7
		return startOfDay(y, m, d-back, loc)
	case domain.UnitMonth:
		return startOfDay(y, m, 1, loc)
	case domain.UnitYear:
		return startOfDay(y, time.January, 1, loc)
	default:
		panic(domain.UnsupportedUnit(unit))
	}
}

// AlignToUnitCeiling returns t when it is already aligned, otherwise the start of the next unit.
func AlignToUnitCeiling(t time.Time, unit domain.TimeUnit, locale domain.Locale) time.Time {
	floor := AlignToUnitFloor(t, unit, locale)
	if floor.Equal(t) {
		return t
	}
	return AddUnits(floor, unit, 1)
}

// AddUnits steps t by n units using calendar arithmetic.
// A t at the start of its day maps to the start of the target day.
func AddUnits(t time.Time, unit domain.TimeUnit, n int) time.Time {
	switch unit {
	case domain.UnitHour:
		return t.Add(time.Duration(n) * time.Hour)
	case domain.UnitDay:
		return addDate(t, 0, 0, n)
	case domain.UnitWeek:
		return addDate(t, 0, 0, 7*n)
	case domain.UnitMonth:
		return addDate(t, 0, n, 0)
	case domain.UnitYear:
		return addDate(t, n, 0, 0)
	default:
		panic(domain.UnsupportedUnit(unit))
	}
}

func addDate(t time.Time, years, months, days int) time.Time {
	y, m, d := t.Date()
	if !t.Equal(startOfDay(y, m, d, t.Location())) {
		return t.AddDate(years, months, days)
	}
	return startOfDay(y+years, m+time.Month(months), d+days, t.Location())
}

// startOfDay returns the first instant of the normalized date y-m-d in loc.
// time.Date resolves a midnight skipped by a daylight saving change to the
// previous day; the zone transition is then the day's first instant.
func startOfDay(y int, m time.Month, d int, loc *time.Location) time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, loc)
	wy, wm, wd := time.Date(y, m, d, 12, 0, 0, 0, loc).Date()
	if ty, tm, td := t.Date(); ty == wy && tm == wm && td == wd {
		return t
	}
	if _, end := t.ZoneBounds(); !end.IsZero() {
		return end
	}
	return t
}

// UnitDuration returns the length of one unit. Month and year lengths are measured
// from the unit containing ref.
func UnitDuration(unit domain.TimeUnit, ref time.Time) time.Duration {
	switch unit {
	case domain.UnitHour:
		return time.Hour
	case domain.UnitDay:
		return hoursPerDay * time.Hour
	case domain.UnitWeek:
		return 7 * hoursPerDay * time.Hour
	case domain.UnitMonth, domain.UnitYear:
		floor := AlignToUnitFloor(ref, unit, domain.InvariantLocale)
		return AddUnits(floor, unit, 1).Sub(floor)
	default:
		panic(domain.UnsupportedUnit(unit))
	}
}

// FormatTick renders the header label of a tick.
// timeFormat overrides the hour layout; dateFormat overrides every other unit.
// Both are Go reference layouts and fall back to the defaults when empty.
func FormatTick(t time.Time, unit domain.TimeUnit, dateFormat, timeFormat string, locale domain.Locale) string {
	switch unit {
	case domain.UnitHour:
		return t.Format(orDefault(timeFormat, HourLayout))
	case domain.UnitDay:
		return t.Format(orDefault(dateFormat, DayLayout))
	case domain.UnitWeek:
		if dateFormat != "" {
			return t.Format(dateFormat)
		}
		year, week := WeekOfYear(t, locale)
		return fmt.Sprintf("Week %d, %d", week, year)
	case domain.UnitMonth:
		return t.Format(orDefault(dateFormat, MonthLayout))
	case domain.UnitYear:
		return t.Format(orDefault(dateFormat, YearLayout))
	default:
		panic(domain.UnsupportedUnit(unit))
	}
}

// FormatTicks labels every tick in ticks.
func FormatTicks(ticks []time.Time, unit domain.TimeUnit, dateFormat, timeFormat string, locale domain.Locale) []string {
	labels := make([]string, len(ticks))
	for i, t := range ticks {
		labels[i] = FormatTick(t, unit, dateFormat, timeFormat, locale)
	}
	return labels
}

func orDefault(layout, fallback string) string {
	if layout == "" {
		return fallback
	}
	return layout
}

// approximate returns the nominal length of a unit, used only for sizing.
func approximate(unit domain.TimeUnit) time.Duration {
	switch unit {
	case domain.UnitMonth:
		return ApproxMonth
	case domain.UnitYear:
		return ApproxYear
	default:
		return UnitDuration(unit, time.Time{})
	}
}

// Nominal unit lengths for estimates.
const (
	ApproxMonth = 730*time.Hour + 33*time.Minute + 36*time.Second // 30.44 days
	ApproxYear  = 365 * hoursPerDay * time.Hour
)

func estimate(from, to time.Time, step time.Duration) int {
	if step <= 0 || to.Before(from) {
		return 1
	}
	return int(to.Sub(from)/step) + 1
}
