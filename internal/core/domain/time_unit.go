package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// TimeUnit is the granularity of one timeline column.
type TimeUnit uint8

const (
	// UnitHour renders one column per hour.
	UnitHour TimeUnit = iota
	// UnitDay renders one column per calendar day.
	UnitDay
	// UnitWeek renders one column per locale week.
	UnitWeek
	// UnitMonth renders one column per calendar month.
	UnitMonth
	// UnitYear renders one column per calendar year.
	UnitYear
)

// TimeUnits lists every supported unit from the finest to the coarsest.
var TimeUnits = []TimeUnit{UnitHour, UnitDay, UnitWeek, UnitMonth, UnitYear}

var timeUnitNames = [...]string{
	UnitHour:  "hour",
	UnitDay:   "day",
	UnitWeek:  "week",
	UnitMonth: "month",
	UnitYear:  "year",
}

// Valid reports whether u is one of the supported units.
func (u TimeUnit) Valid() bool {
	return int(u) < len(timeUnitNames)
}

// String returns the lower-case name of the unit.
func (u TimeUnit) String() string {
	if !u.Valid() {
		return "unknown"
	}
	return timeUnitNames[u]
}

// ParseTimeUnit parses a unit name, ignoring case.
func ParseTimeUnit(s string) (TimeUnit, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range timeUnitNames {
		if n == name {
			return TimeUnit(i), nil
		}
	}
	return 0, zerr.With(zerr.Wrap(ErrInvalidTimeUnit, "parse time unit"), "unit", s)
}

// MarshalText implements encoding.TextMarshaler.
func (u TimeUnit) MarshalText() ([]byte, error) {
	if !u.Valid() {
		return nil, UnsupportedUnit(u)
	}
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *TimeUnit) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// UnsupportedUnit builds the error raised when an unknown unit reaches the engine.
func UnsupportedUnit(u TimeUnit) error {
	return zerr.With(zerr.Wrap(ErrUnsupportedTimeUnit, "timeline"), "unit", int(u))
}
