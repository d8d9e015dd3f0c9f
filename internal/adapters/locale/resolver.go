// Package locale resolves BCP 47 tags into calendar conventions.
package locale

import (
	"strings"
	"time"

	"go.trai.ch/gantt/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/text/language"
)

// Regions whose weeks start on a day other than Monday. Everything else starts on Monday.
var firstDayByRegion = map[string]time.Weekday{
	"US": time.Sunday,
	"CA": time.Sunday,
	"JP": time.Sunday,
	"BR": time.Sunday,
	"MX": time.Sunday,
	"IL": time.Sunday,
	"KR": time.Sunday,
	"TW": time.Sunday,
	"HK": time.Sunday,
	"IN": time.Sunday,
	"PH": time.Sunday,
	"ZA": time.Sunday,
	"AE": time.Saturday,
	"SA": time.Sunday,
	"EG": time.Saturday,
	"DZ": time.Saturday,
	"IQ": time.Saturday,
	"JO": time.Saturday,
	"KW": time.Saturday,
	"OM": time.Saturday,
	"QA": time.Saturday,
	"SY": time.Saturday,
	"BH": time.Saturday,
	"AF": time.Saturday,
	"IR": time.Saturday,
}

// Regions numbering weeks per ISO 8601.
var fourDayWeekRegions = map[string]bool{
	"AT": true, "BE": true, "CH": true, "CZ": true, "DE": true, "DK": true,
	"EE": true, "ES": true, "FI": true, "FR": true, "GB": true, "HU": true,
	"IE": true, "IS": true, "IT": true, "LI": true, "LT": true, "LU": true,
	"LV": true, "NL": true, "NO": true, "PL": true, "RU": true, "SE": true,
	"SK": true,
}

// Resolve maps a BCP 47 tag to a Locale. The empty tag resolves to the invariant locale.
// Tags without a region use the most likely region for their language.
func Resolve(tag string) (domain.Locale, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return domain.InvariantLocale, nil
	}

	parsed, err := language.Parse(tag)
	if err != nil {
		return domain.Locale{}, zerr.With(zerr.Wrap(domain.ErrInvalidLocale, err.Error()), "locale", tag)
	}

	region, _ := parsed.Region()
	code := region.String()

	firstDay, ok := firstDayByRegion[code]
	if !ok {
		firstDay = time.Monday
	}
	rule := domain.WeekRuleFirstDay
	if fourDayWeekRegions[code] {
		rule = domain.WeekRuleFirstFourDayWeek
	}

	return domain.Locale{
		Name:           parsed.String(),
		FirstDayOfWeek: firstDay,
		WeekRule:       rule,
	}, nil
}

// MustResolve is like Resolve but panics on an invalid tag.
func MustResolve(tag string) domain.Locale {
	l, err := Resolve(tag)
	if err != nil {
		panic(err)
	}
	return l
}
