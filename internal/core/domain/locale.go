package domain

import (
	"strings"
	"time"

	"go.trai.ch/zerr"
)

// WeekRule selects which week counts as week 1 of a year.
type WeekRule uint8

const (
	// WeekRuleFirstDay makes the week containing January 1st week 1.
	WeekRuleFirstDay WeekRule = iota
	// WeekRuleFirstFullWeek makes the first week fully inside the year week 1.
	WeekRuleFirstFullWeek
	// WeekRuleFirstFourDayWeek makes the first week with at least four days in the year week 1 (ISO 8601 when weeks start on Monday).
	WeekRuleFirstFourDayWeek
)

var weekRuleNames = [...]string{
	WeekRuleFirstDay:         "firstDay",
	WeekRuleFirstFullWeek:    "firstFullWeek",
	WeekRuleFirstFourDayWeek: "firstFourDayWeek",
}

// String returns the configuration name of the rule.
func (r WeekRule) String() string {
	if int(r) >= len(weekRuleNames) {
		return "unknown"
	}
	return weekRuleNames[r]
}

// ParseWeekRule parses a rule name, ignoring case.
func ParseWeekRule(s string) (WeekRule, error) {
	for i, n := range weekRuleNames {
		if strings.EqualFold(n, strings.TrimSpace(s)) {
			return WeekRule(i), nil
		}
	}
	return 0, zerr.With(zerr.Wrap(ErrInvalidWeekRule, "parse week rule"), "rule", s)
}

// Locale carries the calendar conventions used for week alignment and week numbering.
type Locale struct {
	// Name is the canonical BCP 47 tag the locale was resolved from.
	Name string
	// FirstDayOfWeek is the weekday week columns start on.
	FirstDayOfWeek time.Weekday
	// WeekRule decides week numbering.
	WeekRule WeekRule
}

// InvariantLocale is used when no locale is configured.
var InvariantLocale = Locale{
	Name:           "und",
	FirstDayOfWeek: time.Sunday,
	WeekRule:       WeekRuleFirstDay,
}

// WithFirstDay returns a copy of l with its week start overridden.
func (l Locale) WithFirstDay(day time.Weekday) Locale {
	l.FirstDayOfWeek = day
	return l
}

// WithWeekRule returns a copy of l with its week numbering rule overridden.
func (l Locale) WithWeekRule(rule WeekRule) Locale {
	l.WeekRule = rule
	return l
}

// Key returns the component of a cache key that identifies the locale.
func (l Locale) Key() string {
	return l.Name + "/" + l.FirstDayOfWeek.String() + "/" + l.WeekRule.String()
}
