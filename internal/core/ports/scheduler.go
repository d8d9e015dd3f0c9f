package ports

import "time"

// Scheduler runs deferred work keyed by name.
// Scheduling a key that is already pending replaces the pending run.
//
//go:generate mockgen -source=scheduler.go -destination=mocks/mock_scheduler.go -package=mocks
type Scheduler interface {
	// Schedule runs fn once after delay, replacing any pending run for key.
	Schedule(key string, delay time.Duration, fn func())
	// Cancel drops the pending run for key. It reports whether a run was pending.
	Cancel(key string) bool
	// Stop cancels every pending run. Later Schedule calls are ignored.
	Stop()
}
