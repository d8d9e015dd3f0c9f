package timeaxis

import (
	"time"

	"go.trai.ch/gantt/internal/core/domain"
)

// WeekOfYear returns the week-based year and week number of t under the locale's rule.
//
// With WeekRuleFirstDay the week holding January 1st is week 1 and the year never shifts.
// With WeekRuleFirstFullWeek days before the first full week belong to the last week of
// the previous year. With WeekRuleFirstFourDayWeek days may also roll forward into week 1
// of the next year; on Monday-first locales this is ISO 8601 numbering.
func WeekOfYear(t time.Time, locale domain.Locale) (year, week int) {
	day := civilDate(t)
	year = day.Year()

	first := weekOneStart(year, locale)
	if day.Before(first) {
		year--
		first = weekOneStart(year, locale)
	} else if locale.WeekRule == domain.WeekRuleFirstFourDayWeek {
		if next := weekOneStart(year+1, locale); !day.Before(next) {
			year++
			first = next
		}
	}

	return year, daysBetween(first, day)/7 + 1
}

// weekOneStart returns the first day of week 1 of year, as a UTC civil date.
func weekOneStart(year int, locale domain.Locale) time.Time {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(jan1.Weekday()) - int(locale.FirstDayOfWeek) + 7) % 7

	switch locale.WeekRule {
	case domain.WeekRuleFirstFullWeek:
		if offset == 0 {
			return jan1
		}
		return jan1.AddDate(0, 0, 7-offset)
	case domain.WeekRuleFirstFourDayWeek:
		if 7-offset >= 4 {
			return jan1.AddDate(0, 0, -offset)
		}
		return jan1.AddDate(0, 0, 7-offset)
	default:
		return jan1.AddDate(0, 0, -offset)
	}
}

// civilDate strips the clock and zone from t so day arithmetic ignores DST.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from) / (hoursPerDay * time.Hour))
}
