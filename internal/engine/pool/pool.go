// Package pool recycles chart elements between layout passes.
package pool

import (
	"go.trai.ch/gantt/internal/core/domain"
)

// DefaultMaxSize is the default number of idle elements kept per kind.
const DefaultMaxSize = domain.DefaultMaxPoolSize

// Pool keeps a bounded free list of idle elements per kind.
// It is not safe for concurrent use; the layout orchestrator owns it.
type Pool struct {
	maxSize int
	free    map[domain.ElementKind][]domain.Element
	idle    map[domain.Element]struct{}
	counts  map[domain.ElementKind]*counters
}

type counters struct {
	created int
	reused  int
	dropped int
}

// New creates a pool keeping at most maxSize idle elements per kind.
// A non-positive maxSize selects DefaultMaxSize.
func New(maxSize int) *Pool {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	p := &Pool{
		maxSize: maxSize,
		free:    make(map[domain.ElementKind][]domain.Element, len(domain.ElementKinds)),
		idle:    make(map[domain.Element]struct{}),
		counts:  make(map[domain.ElementKind]*counters, len(domain.ElementKinds)),
	}
	for _, kind := range domain.ElementKinds {
		p.counts[kind] = &counters{}
	}
	return p
}

// MaxSize returns the per-kind capacity.
func (p *Pool) MaxSize() int {
	return p.maxSize
}

// GetOrCreate returns an idle element of kind, reset to defaults, or a new one.
// It returns nil for an unknown kind.
func (p *Pool) GetOrCreate(kind domain.ElementKind) domain.Element {
	c, ok := p.counts[kind]
	if !ok {
		return nil
	}

	if q := p.free[kind]; len(q) > 0 {
		el := q[len(q)-1]
		q[len(q)-1] = nil
		p.free[kind] = q[:len(q)-1]
		delete(p.idle, el)
		el.Reset()
		c.reused++
		return el
	}

	c.created++
	return domain.NewElement(kind)
}

// HeaderCell returns a pooled TimeHeaderCell.
func (p *Pool) HeaderCell() *domain.TimeHeaderCell {
	return p.GetOrCreate(domain.KindTimeHeaderCell).(*domain.TimeHeaderCell)
}

// Row returns a pooled GridRow.
func (p *Pool) Row() *domain.GridRow {
	return p.GetOrCreate(domain.KindGridRow).(*domain.GridRow)
}

// Cell returns a pooled GridCell.
func (p *Pool) Cell() *domain.GridCell {
	return p.GetOrCreate(domain.KindGridCell).(*domain.GridCell)
}

// Bar returns a pooled TaskBar.
func (p *Pool) Bar() *domain.TaskBar {
	return p.GetOrCreate(domain.KindTaskBar).(*domain.TaskBar)
}

// Return detaches el from its owner and keeps it for reuse while its kind is under capacity.
// Elements beyond capacity are dropped. It reports whether el was kept.
// An element that is already idle is left alone, so it is never handed out twice.
func (p *Pool) Return(el domain.Element) bool {
	if el == nil {
		return false
	}
	if _, ok := p.idle[el]; ok {
		return false
	}
	el.Detach()

	kind := el.Kind()
	c, ok := p.counts[kind]
	if !ok {
		return false
	}
	if len(p.free[kind]) >= p.maxSize {
		c.dropped++
		return false
	}

	el.Reset()
	p.free[kind] = append(p.free[kind], el)
	p.idle[el] = struct{}{}
	return true
}

// ReturnAll returns every element in els.
func (p *Pool) ReturnAll(els []domain.Element) {
	for _, el := range els {
		p.Return(el)
	}
}

// Reset restores el to its kind's defaults.
func Reset(el domain.Element) {
	el.Reset()
}

// Clear drops every idle element. Counters are kept.
func (p *Pool) Clear() {
	clear(p.free)
	clear(p.idle)
}

// KindStats describes one kind's free list.
type KindStats struct {
	Idle    int
	Created int
	Reused  int
	Dropped int
}

// Stats is a diagnostic snapshot of the pool.
type Stats struct {
	Kinds map[domain.ElementKind]KindStats
	// TotalIdle is the number of idle elements across kinds.
	TotalIdle int
	// Capacity is the number of idle elements the pool can hold across kinds.
	Capacity int
	// Utilization is TotalIdle as a percentage of Capacity.
	Utilization float64
}

// Stats returns a snapshot of the pool's counters.
func (p *Pool) Stats() Stats {
	s := Stats{
		Kinds:    make(map[domain.ElementKind]KindStats, len(p.counts)),
		Capacity: p.maxSize * len(p.counts),
	}
	for kind, c := range p.counts {
		idle := len(p.free[kind])
		s.Kinds[kind] = KindStats{Idle: idle, Created: c.created, Reused: c.reused, Dropped: c.dropped}
		s.TotalIdle += idle
	}
	if s.Capacity > 0 {
		s.Utilization = float64(s.TotalIdle) / float64(s.Capacity) * 100
	}
	return s
}
