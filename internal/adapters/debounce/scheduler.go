// Package debounce implements ports.Scheduler with one timer per key.
package debounce

import (
	"sync"
	"time"

	"go.trai.ch/gantt/internal/core/ports"
)

var _ ports.Scheduler = (*Scheduler)(nil)

// Scheduler coalesces repeated schedules under the same key into a single run.
// Every Schedule re-arms the key's timer, so the last call wins.
type Scheduler struct {
	mu      sync.Mutex
	pending map[string]*entry
	gen     uint64
	stopped bool
}

type entry struct {
	timer *time.Timer
	gen   uint64
	fn    func()
}

// NewScheduler creates an idle scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{pending: make(map[string]*entry)}
}

// Schedule runs fn after delay unless key is scheduled again or cancelled first.
func (s *Scheduler) Schedule(key string, delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped || fn == nil {
		return
	}

	if e, ok := s.pending[key]; ok {
		e.timer.Stop()
	}

	s.gen++
	gen := s.gen
	e := &entry{gen: gen, fn: fn}
	e.timer = time.AfterFunc(delay, func() { s.fire(key, gen) })
	s.pending[key] = e
}

// fire runs when a timer expires.
func (s *Scheduler) fire(key string, gen uint64) {
	s.mu.Lock()

	// A newer Schedule, a Cancel or a Flush may have claimed the key after this timer fired.
	e, ok := s.pending[key]
	if !ok || e.gen != gen {
		s.mu.Unlock()
		return
	}
	delete(s.pending, key)
	s.mu.Unlock()

	e.fn()
}

// Cancel drops the pending run for key and reports whether one was pending.
func (s *Scheduler) Cancel(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.pending[key]
	if !ok {
		return false
	}
	e.timer.Stop()
	delete(s.pending, key)
	return true
}

// Flush runs the pending function for key immediately and blocks until it returns.
// It reports whether anything ran.
func (s *Scheduler) Flush(key string) bool {
	s.mu.Lock()
	e, ok := s.pending[key]
	if !ok {
		s.mu.Unlock()
		return false
	}
	if !e.timer.Stop() {
		// Timer already fired, let it complete rather than running twice.
		s.mu.Unlock()
		return false
	}
	delete(s.pending, key)
	s.mu.Unlock()

	e.fn()
	return true
}

// Pending reports whether key has a run scheduled.
func (s *Scheduler) Pending(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[key]
	return ok
}

// Stop cancels every pending run. Later Schedule calls are ignored.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	for key, e := range s.pending {
		e.timer.Stop()
		delete(s.pending, key)
	}
}
