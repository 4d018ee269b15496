package memo

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// lruCache adapts hashicorp/golang-lru to the Cache interface.
type lruCache[K comparable, V any] struct {
	c *lru.Cache[K, V]
}

// NewLRU returns a bounded cache holding at most size entries, evicting the
// least recently used entry when full.
func NewLRU[K comparable, V any](size int) (Cache[K, V], error) {
	c, err := lru.New[K, V](size)
	if err != nil {
		return nil, err
	}

	return &lruCache[K, V]{c: c}, nil
}

func (l *lruCache[K, V]) Get(key K) (V, bool) { return l.c.Get(key) }

func (l *lruCache[K, V]) Add(key K, value V) { l.c.Add(key, value) }

func (l *lruCache[K, V]) Len() int { return l.c.Len() }

func (l *lruCache[K, V]) Purge() { l.c.Purge() }
