package holiday

import (
	"context"
	"sync/atomic"
	"time"
)

// FetchFunc produces a fresh holiday set. Both cache backends wrap one.
type FetchFunc func(ctx context.Context) (Set, error)

// Cache is an in-process refresh-on-expiry cache over a FetchFunc.
//
// The snapshot is swapped atomically and is last-write-wins: concurrent
// callers observing an expired TTL may each trigger their own fetch, which
// is accepted (staleness is bounded by the TTL, not by zero). An expired
// snapshot is never served as a fallback; a failed fetch propagates and
// leaves the previous snapshot untouched until a later refresh succeeds.
type Cache struct {
	fetch FetchFunc
	ttl   time.Duration
	now   func() time.Time
	snap  atomic.Pointer[Snapshot]
}

// NewCache creates a Cache with the given TTL. The now function exists so
// tests can drive expiry with a fake clock; nil means time.Now.
func NewCache(fetch FetchFunc, ttl time.Duration, now func() time.Time) *Cache {
	if now == nil {
		now = time.Now
	}
	return &Cache{fetch: fetch, ttl: ttl, now: now}
}

// CurrentHolidays returns the cached holiday set, refreshing it first if the
// snapshot is absent or older than the TTL.
func (c *Cache) CurrentHolidays(ctx context.Context) (Set, error) {
	if s := c.snap.Load(); s != nil && c.now().Sub(s.FetchedAt) < c.ttl {
		return s.Dates, nil
	}

	set, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}

	c.snap.Store(&Snapshot{Dates: set, FetchedAt: c.now()})
	return set, nil
}

// Invalidate drops the current snapshot so the next read refetches.
func (c *Cache) Invalidate(ctx context.Context) error {
	c.snap.Store(nil)
	return nil
}

// Snapshot returns the current snapshot, or nil if none is loaded.
// Used by the health endpoint; callers must not mutate the set.
func (c *Cache) Snapshot() *Snapshot {
	return c.snap.Load()
}
