// Package cache provides a small in-process TTL cache. It replaces the
// module-global memoized-fetch pattern with an explicit object owned by the
// caller, with an injectable clock so tests control expiry.
package cache

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// TTL is a thread-safe key/value cache with per-cache expiry.
type TTL[V any] struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]entry[V]
}

// NewTTL constructs a cache whose entries expire after ttl.
func NewTTL[V any](ttl time.Duration) *TTL[V] {
	return newTTL[V](ttl, time.Now)
}

func newTTL[V any](ttl time.Duration, now func() time.Time) *TTL[V] {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &TTL[V]{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]entry[V]),
	}
}

// Get returns the cached value for key if present and unexpired.
func (c *TTL[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || c.now().After(e.expiresAt) {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores a value under key with the cache's TTL.
func (c *TTL[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[V]{
		value:     value,
		expiresAt: c.now().Add(c.ttl),
	}
}

// Invalidate drops a key immediately.
func (c *TTL[V]) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}
