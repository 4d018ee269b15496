package memo

import (
	ristretto "github.com/dgraph-io/ristretto/v2"
)

// Key constrains ristretto-backed caches to the key types ristretto hashes
// natively.
type Key interface {
	ristretto.Key
	comparable
}

// RistrettoCache adapts dgraph-io/ristretto to the Cache interface.
// Admission is cost-based and asynchronous: an Add may be dropped by the
// admission policy, and a freshly added entry is not guaranteed to be
// visible until [RistrettoCache.Wait] returns.
type RistrettoCache[K Key, V any] struct {
	c    *ristretto.Cache[K, V]
	cost int64
}

// NewRistretto returns a cost-based cache bounded to maxCost, with every
// entry charged unit cost.
func NewRistretto[K Key, V any](maxCost int64) (*RistrettoCache[K, V], error) {
	c, err := ristretto.NewCache(&ristretto.Config[K, V]{
		NumCounters: maxCost * 10, // admission counters per the ristretto guideline
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}

	return &RistrettoCache[K, V]{c: c, cost: 1}, nil
}

func (r *RistrettoCache[K, V]) Get(key K) (V, bool) { return r.c.Get(key) }

func (r *RistrettoCache[K, V]) Add(key K, value V) { r.c.Set(key, value, r.cost) }

// Len approximates the number of resident entries from the cache metrics.
func (r *RistrettoCache[K, V]) Len() int {
	m := r.c.Metrics

	return int(m.KeysAdded() - m.KeysEvicted())
}

func (r *RistrettoCache[K, V]) Purge() { r.c.Clear() }

// Wait blocks until all buffered writes have been applied.
func (r *RistrettoCache[K, V]) Wait() { r.c.Wait() }

// Close releases the cache's internal goroutines.
func (r *RistrettoCache[K, V]) Close() { r.c.Close() }
