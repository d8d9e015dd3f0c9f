package ports

import (
	"time"

	"go.trai.ch/gantt/internal/core/domain"
)

// TickProvider returns the tick sequence for a timeline.
// Implementations must return a slice the caller may keep.
//
//go:generate mockgen -source=tick_provider.go -destination=mocks/mock_tick_provider.go -package=mocks
type TickProvider interface {
	Ticks(start, end time.Time, unit domain.TimeUnit, locale domain.Locale) []time.Time
}
