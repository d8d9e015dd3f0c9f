package timeaxis_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gantt/internal/core/domain"
	"go.trai.ch/gantt/internal/engine/timeaxis"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var mondayISO = domain.Locale{Name: "de-DE", FirstDayOfWeek: time.Monday, WeekRule: domain.WeekRuleFirstFourDayWeek}

func TestGenerateTicks_Day(t *testing.T) {
	ticks := timeaxis.GenerateTicks(date(2024, 1, 1), date(2024, 1, 5), domain.UnitDay, domain.InvariantLocale)

	require.Len(t, ticks, 5)
	for i, tick := range ticks {
		assert.Equal(t, date(2024, 1, 1+i), tick)
	}
}

func TestGenerateTicks_SwapsReversedBounds(t *testing.T) {
	forward := timeaxis.GenerateTicks(date(2024, 1, 1), date(2024, 1, 5), domain.UnitDay, domain.InvariantLocale)
	reversed := timeaxis.GenerateTicks(date(2024, 1, 5), date(2024, 1, 1), domain.UnitDay, domain.InvariantLocale)
	assert.Equal(t, forward, reversed)
}

func TestGenerateTicks_HourStepsFromRawStart(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	ticks := timeaxis.GenerateTicks(start, end, domain.UnitHour, domain.InvariantLocale)

	assert.Equal(t, []time.Time{
		start,
		start.Add(time.Hour),
		start.Add(2 * time.Hour),
	}, ticks)
}

func TestGenerateTicks_Week(t *testing.T) {
	// 2024-01-03 is a Wednesday.
	start := date(2024, 1, 3)
	end := date(2024, 1, 24)

	t.Run("sunday first", func(t *testing.T) {
		ticks := timeaxis.GenerateTicks(start, end, domain.UnitWeek, domain.InvariantLocale)
		assert.Equal(t, []time.Time{date(2023, 12, 31), date(2024, 1, 7), date(2024, 1, 14), date(2024, 1, 21)}, ticks)
	})

	t.Run("monday first", func(t *testing.T) {
		ticks := timeaxis.GenerateTicks(start, end, domain.UnitWeek, mondayISO)
		assert.Equal(t, []time.Time{date(2024, 1, 1), date(2024, 1, 8), date(2024, 1, 15), date(2024, 1, 22)}, ticks)
	})
}

func TestGenerateTicks_MonthAndYear(t *testing.T) {
	start := time.Date(2024, 1, 31, 18, 0, 0, 0, time.UTC)
	end := time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)

	months := timeaxis.GenerateTicks(start, end, domain.UnitMonth, domain.InvariantLocale)
	assert.Equal(t, []time.Time{date(2024, 1, 1), date(2024, 2, 1), date(2024, 3, 1), date(2024, 4, 1)}, months)

	years := timeaxis.GenerateTicks(date(2022, 6, 1), date(2024, 2, 1), domain.UnitYear, domain.InvariantLocale)
	assert.Equal(t, []time.Time{date(2022, 1, 1), date(2023, 1, 1), date(2024, 1, 1)}, years)
}

func TestGenerateTicks_SingleInstant(t *testing.T) {
	at := time.Date(2024, 3, 10, 8, 15, 0, 0, time.UTC)
	assert.Equal(t, []time.Time{at}, timeaxis.GenerateTicks(at, at, domain.UnitHour, domain.InvariantLocale))
	assert.Equal(t, []time.Time{date(2024, 3, 10)}, timeaxis.GenerateTicks(at, at, domain.UnitDay, domain.InvariantLocale))
}

func TestGenerateTicks_StrictlyAscending(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skip("tzdata not available")
	}

	// Covers the March DST switch in Berlin.
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, berlin)
	end := time.Date(2024, 4, 15, 0, 0, 0, 0, berlin)

	for _, unit := range domain.TimeUnits {
		t.Run(unit.String(), func(t *testing.T) {
			ticks := timeaxis.GenerateTicks(start, end, unit, mondayISO)
			require.NotEmpty(t, ticks)
			for i := 1; i < len(ticks); i++ {
				assert.True(t, ticks[i].After(ticks[i-1]), "tick %d not after tick %d", i, i-1)
			}
		})
	}
}

func TestGenerateTicks_UnsupportedUnitPanics(t *testing.T) {
	assert.Panics(t, func() {
		timeaxis.GenerateTicks(date(2024, 1, 1), date(2024, 1, 2), domain.TimeUnit(99), domain.InvariantLocale)
	})
}

func TestAlignToUnitFloor(t *testing.T) {
	at := time.Date(2024, 1, 17, 14, 30, 45, 0, time.UTC) // Wednesday

	tests := []struct {
		unit   domain.TimeUnit
		locale domain.Locale
		want   time.Time
	}{
		{unit: domain.UnitHour, locale: domain.InvariantLocale, want: time.Date(2024, 1, 17, 14, 0, 0, 0, time.UTC)},
		{unit: domain.UnitDay, locale: domain.InvariantLocale, want: date(2024, 1, 17)},
		{unit: domain.UnitWeek, locale: domain.InvariantLocale, want: date(2024, 1, 14)},
		{unit: domain.UnitWeek, locale: mondayISO, want: date(2024, 1, 15)},
		{unit: domain.UnitMonth, locale: domain.InvariantLocale, want: date(2024, 1, 1)},
		{unit: domain.UnitYear, locale: domain.InvariantLocale, want: date(2024, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.unit.String()+"/"+tt.locale.FirstDayOfWeek.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, timeaxis.AlignToUnitFloor(at, tt.unit, tt.locale))
		})
	}

	t.Run("hour scenario", func(t *testing.T) {
		got := timeaxis.AlignToUnitFloor(time.Date(2024, 1, 15, 14, 30, 45, 0, time.UTC), domain.UnitHour, domain.InvariantLocale)
		assert.Equal(t, time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC), got)
	})
}

func TestAlignToUnitCeiling(t *testing.T) {
	aligned := date(2024, 2, 1)
	assert.Equal(t, aligned, timeaxis.AlignToUnitCeiling(aligned, domain.UnitMonth, domain.InvariantLocale))

	mid := time.Date(2024, 2, 10, 3, 0, 0, 0, time.UTC)
	assert.Equal(t, date(2024, 3, 1), timeaxis.AlignToUnitCeiling(mid, domain.UnitMonth, domain.InvariantLocale))
	assert.Equal(t, date(2024, 2, 11), timeaxis.AlignToUnitCeiling(mid, domain.UnitDay, domain.InvariantLocale))
	assert.Equal(t, date(2025, 1, 1), timeaxis.AlignToUnitCeiling(mid, domain.UnitYear, domain.InvariantLocale))
}

func TestUnitDuration(t *testing.T) {
	assert.Equal(t, time.Hour, timeaxis.UnitDuration(domain.UnitHour, time.Time{}))
	assert.Equal(t, 24*time.Hour, timeaxis.UnitDuration(domain.UnitDay, time.Time{}))
	assert.Equal(t, 7*24*time.Hour, timeaxis.UnitDuration(domain.UnitWeek, time.Time{}))
	assert.Equal(t, 29*24*time.Hour, timeaxis.UnitDuration(domain.UnitMonth, date(2024, 2, 14)))
	assert.Equal(t, 31*24*time.Hour, timeaxis.UnitDuration(domain.UnitMonth, date(2024, 3, 14)))
	assert.Equal(t, 366*24*time.Hour, timeaxis.UnitDuration(domain.UnitYear, date(2024, 7, 1)))
	assert.Equal(t, 365*24*time.Hour, timeaxis.UnitDuration(domain.UnitYear, date(2023, 7, 1)))
}

func TestFormatTick(t *testing.T) {
	at := time.Date(2024, 1, 2, 9, 5, 0, 0, time.UTC)

	tests := []struct {
		name       string
		unit       domain.TimeUnit
		dateFormat string
		timeFormat string
		want       string
	}{
		{name: "hour default", unit: domain.UnitHour, want: "09:05"},
		{name: "hour override", unit: domain.UnitHour, timeFormat: "3PM", want: "9AM"},
		{name: "hour ignores date format", unit: domain.UnitHour, dateFormat: "2006", want: "09:05"},
		{name: "day default", unit: domain.UnitDay, want: "Jan 02"},
		{name: "day override", unit: domain.UnitDay, dateFormat: "02.01.", want: "02.01."},
		{name: "week default", unit: domain.UnitWeek, want: "Week 1, 2024"},
		{name: "week override", unit: domain.UnitWeek, dateFormat: "Jan 2", want: "Jan 2"},
		{name: "month default", unit: domain.UnitMonth, want: "2024 Jan"},
		{name: "year default", unit: domain.UnitYear, want: "2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, timeaxis.FormatTick(at, tt.unit, tt.dateFormat, tt.timeFormat, domain.InvariantLocale))
		})
	}
}

func TestFormatTicks(t *testing.T) {
	ticks := []time.Time{date(2024, 1, 1), date(2024, 1, 2)}
	assert.Equal(t, []string{"Jan 01", "Jan 02"}, timeaxis.FormatTicks(ticks, domain.UnitDay, "", "", domain.InvariantLocale))
}

// America/Sao_Paulo skipped midnight on 2018-11-04: clocks jumped from 00:00 to 01:00.
func saoPaulo(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	return loc
}

func TestGenerateTicks_DayAcrossSkippedMidnight(t *testing.T) {
	loc := saoPaulo(t)
	start := time.Date(2018, time.November, 1, 0, 0, 0, 0, loc)
	end := time.Date(2018, time.November, 10, 0, 0, 0, 0, loc)

	ticks := timeaxis.GenerateTicks(start, end, domain.UnitDay, domain.InvariantLocale)

	require.Len(t, ticks, 10)
	for i, tick := range ticks {
		y, m, d := tick.Date()
		assert.Equal(t, []int{2018, int(time.November), 1 + i}, []int{y, int(m), d}, "tick %d", i)
	}
	assert.Equal(t, 1, ticks[3].Hour(), "the skipped day starts at the zone transition")
	assert.Equal(t, 0, ticks[4].Hour())

	labels := timeaxis.FormatTicks(ticks, domain.UnitDay, "", "", domain.InvariantLocale)
	assert.Equal(t, "Nov 03", labels[2])
	assert.Equal(t, "Nov 04", labels[3])
	assert.Equal(t, "Nov 10", labels[9])
}

func TestGenerateTicks_WeekAcrossSkippedMidnight(t *testing.T) {
	loc := saoPaulo(t)
	start := time.Date(2018, time.October, 28, 0, 0, 0, 0, loc)
	end := time.Date(2018, time.November, 18, 0, 0, 0, 0, loc)

	ticks := timeaxis.GenerateTicks(start, end, domain.UnitWeek, domain.InvariantLocale)

	require.Len(t, ticks, 4)
	for i, tick := range ticks {
		want := time.Date(2018, time.October, 28+7*i, 12, 0, 0, 0, loc)
		y, m, d := tick.Date()
		wy, wm, wd := want.Date()
		assert.Equal(t, []int{wy, int(wm), wd}, []int{y, int(m), d}, "tick %d", i)
		assert.Equal(t, time.Sunday, tick.Weekday())
	}
}

func TestAlignToUnitFloor_SkippedMidnight(t *testing.T) {
	loc := saoPaulo(t)
	noon := time.Date(2018, time.November, 4, 12, 0, 0, 0, loc)
	first := time.Date(2018, time.November, 4, 1, 0, 0, 0, loc)

	assert.True(t, first.Equal(timeaxis.AlignToUnitFloor(noon, domain.UnitDay, domain.InvariantLocale)))
	assert.True(t, first.Equal(timeaxis.AlignToUnitFloor(noon.AddDate(0, 0, 3), domain.UnitWeek, domain.InvariantLocale)))

	before := time.Date(2018, time.November, 3, 15, 0, 0, 0, loc)
	assert.True(t, first.Equal(timeaxis.AlignToUnitCeiling(before, domain.UnitDay, domain.InvariantLocale)))
}
