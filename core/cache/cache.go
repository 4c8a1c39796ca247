// File: cache.go
// Title: Keyed In-Memory Cache
// Description: Thread-safe generic cache with optional TTL, a capacity bound and
//              hit/miss statistics. Used for compiled message patterns keyed by
//              message key and locale.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Generic rewrite of the service cache

package cache

import (
	"sync"
	"time"
)

// entry represents a cached item with expiration
type entry[V any] struct {
	value      V
	expiration time.Time
	created    time.Time
}

func (e *entry[V]) expired(now time.Time) bool {
	return !e.expiration.IsZero() && now.After(e.expiration)
}

// Config holds cache configuration
type Config struct {
	// MaxItems bounds the cache; zero means DefaultMaxItems
	MaxItems int
	// TTL is the lifetime of an entry; zero disables expiry
	TTL time.Duration
	// CleanupInterval controls how often expired entries are dropped
	CleanupInterval time.Duration
}

// DefaultMaxItems is used when Config.MaxItems is not set
const DefaultMaxItems = 10000

// Stats holds cache statistics
type Stats struct {
	Hits   int64
	Misses int64
	Size   int
}

// HitRate returns the hit ratio in percent
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}

// Cache is a thread-safe in-memory cache
type Cache[K comparable, V any] struct {
	mu       sync.RWMutex
	items    map[K]*entry[V]
	maxItems int
	ttl      time.Duration

	hits   int64
	misses int64

	stop     chan struct{}
	stopOnce sync.Once
}

// New creates a new cache. A cleanup goroutine runs only when a TTL is set;
// call Close to stop it.
func New[K comparable, V any](cfg Config) *Cache[K, V] {
	if cfg.MaxItems <= 0 {
		cfg.MaxItems = DefaultMaxItems
	}

	c := &Cache[K, V]{
		items:    make(map[K]*entry[V]),
		maxItems: cfg.MaxItems,
		ttl:      cfg.TTL,
		stop:     make(chan struct{}),
	}

	if cfg.TTL > 0 {
		interval := cfg.CleanupInterval
		if interval <= 0 {
			interval = time.Minute
		}
		go c.cleanupLoop(interval)
	}

	return c
}

// Get retrieves a value from the cache
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.getLocked(key, time.Now())
}

func (c *Cache[K, V]) getLocked(key K, now time.Time) (V, bool) {
	e, ok := c.items[key]
	if !ok || e.expired(now) {
		if ok {
			delete(c.items, key)
		}
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	return e.value, true
}

// Set stores a value in the cache
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setLocked(key, value, time.Now())
}

func (c *Cache[K, V]) setLocked(key K, value V, now time.Time) {
	if _, exists := c.items[key]; !exists && len(c.items) >= c.maxItems {
		c.evictOldest()
	}

	var exp time.Time
	if c.ttl > 0 {
		exp = now.Add(c.ttl)
	}
	c.items[key] = &entry[V]{value: value, expiration: exp, created: now}
}

// GetOrCompute returns the cached value or computes and stores it. The lock is
// held while fn runs, so fn is called at most once per missing key.
func (c *Cache[K, V]) GetOrCompute(key K, fn func() (V, error)) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	if v, ok := c.getLocked(key, now); ok {
		return v, nil
	}

	v, err := fn()
	if err != nil {
		return v, err
	}
	c.setLocked(key, v, now)
	return v, nil
}

// Delete removes a value from the cache
func (c *Cache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// DeleteFunc removes every entry whose key matches pred and returns the count
func (c *Cache[K, V]) DeleteFunc(pred func(K) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for k := range c.items {
		if pred(k) {
			delete(c.items, k)
			removed++
		}
	}
	return removed
}

// Purge removes all items from the cache
func (c *Cache[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[K]*entry[V])
}

// Len returns the number of items in the cache
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Stats returns cache statistics
func (c *Cache[K, V]) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Stats{Hits: c.hits, Misses: c.misses, Size: len(c.items)}
}

// Close stops the cleanup goroutine
func (c *Cache[K, V]) Close() {
	c.stopOnce.Do(func() { close(c.stop) })
}

// evictOldest removes the oldest entry (must be called with lock held)
func (c *Cache[K, V]) evictOldest() {
	var (
		oldestKey K
		oldest    time.Time
		found     bool
	)

	for k, e := range c.items {
		if !found || e.created.Before(oldest) {
			oldestKey, oldest, found = k, e.created, true
		}
	}

	if found {
		delete(c.items, oldestKey)
	}
}

func (c *Cache[K, V]) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stop:
			return
		}
	}
}

// cleanup removes all expired entries
func (c *Cache[K, V]) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for k, e := range c.items {
		if e.expired(now) {
			delete(c.items, k)
		}
	}
}
