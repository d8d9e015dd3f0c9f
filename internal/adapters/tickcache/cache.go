// Package tickcache memoizes tick generation behind a sharded, bounded cache.
package tickcache

import (
	"context"
	"errors"
	"runtime"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/gantt/internal/core/domain"
	"go.trai.ch/gantt/internal/core/ports"
	"go.trai.ch/gantt/internal/engine/timeaxis"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

var _ ports.TickProvider = (*Cache)(nil)

const (
	// shardCount must be a power of two.
	shardCount = 16
	shardMask  = shardCount - 1
)

// Generator produces a tick sequence. timeaxis.GenerateTicks is the default.
type Generator func(start, end time.Time, unit domain.TimeUnit, locale domain.Locale) []time.Time

// Cache memoizes tick sequences by timeline key.
// It is safe for concurrent use. Callers always receive their own copy of a sequence.
type Cache struct {
	shards   [shardCount]*shard
	generate Generator
	now      func() time.Time
	group    singleflight.Group

	maxEntries      atomic.Int64
	cleanupInterval atomic.Int64

	count       atomic.Int64
	cleanupMu   sync.Mutex
	lastCleanup atomic.Int64

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type shard struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

type entry struct {
	ticks     []time.Time
	createdAt time.Time
}

// Option configures a Cache.
type Option func(*Cache)

// WithMaxEntries sets the entry count above which the oldest half is evicted.
func WithMaxEntries(n int) Option {
	return func(c *Cache) {
		if n > 0 {
			c.maxEntries.Store(int64(n))
		}
	}
}

// WithCleanupInterval sets the age of the last cleanup after which the oldest half is evicted.
func WithCleanupInterval(d time.Duration) Option {
	return func(c *Cache) {
		if d > 0 {
			c.cleanupInterval.Store(int64(d))
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// WithGenerator replaces the tick generator.
func WithGenerator(g Generator) Option {
	return func(c *Cache) {
		c.generate = g
	}
}

// New creates an empty cache.
func New(opts ...Option) *Cache {
	c := &Cache{
		generate: timeaxis.GenerateTicks,
		now:      time.Now,
	}
	c.maxEntries.Store(domain.DefaultCacheMaxEntries)
	c.cleanupInterval.Store(int64(domain.DefaultCacheCleanupInterval))
	for i := range c.shards {
		c.shards[i] = &shard{entries: make(map[string]*entry)}
	}
	for _, opt := range opts {
		opt(c)
	}
	c.lastCleanup.Store(c.now().UnixNano())
	return c
}

// Configure applies cache limits from a project. Zero values keep the current limits.
func (c *Cache) Configure(opts domain.CacheOptions) {
	WithMaxEntries(opts.MaxEntries)(c)
	WithCleanupInterval(opts.CleanupInterval)(c)
}

func (c *Cache) shardFor(key string) *shard {
	return c.shards[xxhash.Sum64String(key)&shardMask]
}

// Get returns a copy of the cached sequence for key.
func (c *Cache) Get(key domain.TimelineKey) ([]time.Time, bool) {
	ticks, ok := c.lookup(key.Canonical())
	if !ok {
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	return ticks, true
}

func (c *Cache) lookup(canonical string) ([]time.Time, bool) {
	s := c.shardFor(canonical)
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[canonical]
	if !ok {
		return nil, false
	}
	return slices.Clone(e.ticks), true
}

// Set stores a copy of ticks under key.
func (c *Cache) Set(key domain.TimelineKey, ticks []time.Time) {
	c.store(key.Canonical(), ticks)
}

func (c *Cache) store(canonical string, ticks []time.Time) {
	s := c.shardFor(canonical)
	s.mu.Lock()
	if _, exists := s.entries[canonical]; !exists {
		c.count.Add(1)
	}
	s.entries[canonical] = &entry{ticks: slices.Clone(ticks), createdAt: c.now()}
	s.mu.Unlock()

	c.maybeEvict()
}

// Ticks returns the sequence for the timeline, generating and caching it on a miss.
// Concurrent misses for the same key generate once.
func (c *Cache) Ticks(start, end time.Time, unit domain.TimeUnit, locale domain.Locale) []time.Time {
	key := domain.NewTimelineKey(start, end, unit, locale).Canonical()

	if ticks, ok := c.lookup(key); ok {
		c.hits.Add(1)
		return ticks
	}
	c.misses.Add(1)

	v, _, _ := c.group.Do(key, func() (any, error) {
		if ticks, ok := c.lookup(key); ok {
			return ticks, nil
		}
		ticks := c.generate(start, end, unit, locale)
		c.store(key, ticks)
		return ticks, nil
	})
	// Results are shared between coalesced callers.
	return slices.Clone(v.([]time.Time))
}

// Warm generates every key concurrently so later lookups hit.
func (c *Cache) Warm(ctx context.Context, keys []domain.TimelineKey) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, key := range keys {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c.Ticks(key.Start, key.End, key.Unit, key.Locale)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return zerr.With(errors.Join(domain.ErrWarmFailed, err), "keys", len(keys))
	}
	return nil
}

// maybeEvict evicts the oldest half when the cache is over capacity or the cleanup interval elapsed.
// The condition is checked again under cleanupMu so only one goroutine evicts.
func (c *Cache) maybeEvict() {
	if !c.needsCleanup() {
		return
	}

	c.cleanupMu.Lock()
	defer c.cleanupMu.Unlock()

	if !c.needsCleanup() {
		return
	}
	c.evictOldestHalf()
	c.lastCleanup.Store(c.now().UnixNano())
}

func (c *Cache) needsCleanup() bool {
	if c.count.Load() > c.maxEntries.Load() {
		return true
	}
	elapsed := c.now().UnixNano() - c.lastCleanup.Load()
	return elapsed >= c.cleanupInterval.Load()
}

type candidate struct {
	key       string
	createdAt time.Time
}

func (c *Cache) evictOldestHalf() {
	var all []candidate
	for _, s := range c.shards {
		s.mu.RLock()
		for k, e := range s.entries {
			all = append(all, candidate{key: k, createdAt: e.createdAt})
		}
		s.mu.RUnlock()
	}

	slices.SortFunc(all, func(a, b candidate) int {
		return a.createdAt.Compare(b.createdAt)
	})

	for _, cand := range all[:len(all)/2] {
		s := c.shardFor(cand.key)
		s.mu.Lock()
		// Skip entries rewritten since the snapshot.
		if e, ok := s.entries[cand.key]; ok && e.createdAt.Equal(cand.createdAt) {
			delete(s.entries, cand.key)
			c.count.Add(-1)
			c.evictions.Add(1)
		}
		s.mu.Unlock()
	}
}

// Clear removes every entry.
func (c *Cache) Clear() {
	c.cleanupMu.Lock()
	defer c.cleanupMu.Unlock()

	for _, s := range c.shards {
		s.mu.Lock()
		n := len(s.entries)
		clear(s.entries)
		c.count.Add(-int64(n))
		s.mu.Unlock()
	}
	c.lastCleanup.Store(c.now().UnixNano())
}

// Len returns the number of cached sequences.
func (c *Cache) Len() int {
	return int(c.count.Load())
}

// Stats is a diagnostic snapshot of the cache.
type Stats struct {
	Entries   int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// Stats returns the cache counters.
func (c *Cache) Stats() Stats {
	return Stats{
		Entries:   c.Len(),
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}
