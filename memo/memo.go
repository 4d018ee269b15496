// Package memo provides memoization of single-argument functions with
// pluggable cache backends.
//
// A memoized function caches successful results only; errors pass through
// uncached so transient failures can be retried. Hit and miss counts are
// tracked with atomic counters.
//
// Backends:
//
//   - [NewMapCache]:   unbounded map, the cheapest option
//   - [NewLRU]:        bounded with least-recently-used eviction
//   - [NewRistretto]:  cost-based admission for large working sets
package memo

import (
	"sync"
	"sync/atomic"
)

// Cache is the storage backend contract for [Memoize].
// Implementations must be safe for concurrent use.
type Cache[K comparable, V any] interface {
	// Get returns the cached value for key, if present.
	Get(key K) (V, bool)

	// Add stores value under key, evicting per backend policy.
	Add(key K, value V)

	// Len returns the number of cached entries.
	Len() int

	// Purge removes all entries.
	Purge()
}

// CacheStats reports accumulated cache effectiveness counters.
type CacheStats struct {
	Hits   uint64
	Misses uint64
}

// Func is a memoized function. Create one with [Memoize].
type Func[K comparable, V any] struct {
	fn     func(K) (V, error)
	cache  Cache[K, V]
	hits   atomic.Uint64
	misses atomic.Uint64
}

// Memoize wraps fn with the given cache backend.
func Memoize[K comparable, V any](fn func(K) (V, error), cache Cache[K, V]) *Func[K, V] {
	return &Func[K, V]{fn: fn, cache: cache}
}

// Do returns the cached result for key, computing and caching it on a miss.
// A result is cached only when fn returns nil error.
func (f *Func[K, V]) Do(key K) (V, error) {
	if v, ok := f.cache.Get(key); ok {
		f.hits.Add(1)
		return v, nil
	}

	f.misses.Add(1)

	v, err := f.fn(key)
	if err != nil {
		return v, err
	}

	f.cache.Add(key, v)

	return v, nil
}

// Stats returns the accumulated hit/miss counters.
func (f *Func[K, V]) Stats() CacheStats {
	return CacheStats{
		Hits:   f.hits.Load(),
		Misses: f.misses.Load(),
	}
}

// Reset purges the cache and clears the counters.
func (f *Func[K, V]) Reset() {
	f.cache.Purge()
	f.hits.Store(0)
	f.misses.Store(0)
}

// mapCache is the unbounded mutex-guarded backend.
type mapCache[K comparable, V any] struct {
	mu sync.RWMutex
	m  map[K]V
}

// NewMapCache returns an unbounded cache backed by a plain map.
func NewMapCache[K comparable, V any]() Cache[K, V] {
	return &mapCache[K, V]{m: make(map[K]V)}
}

func (c *mapCache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.m[key]

	return v, ok
}

func (c *mapCache[K, V]) Add(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.m[key] = value
}

func (c *mapCache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.m)
}

func (c *mapCache[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.m)
}
