package workload

import (
	"context"
	"fmt"

	"github.com/cwbudde/algo-perf/memo"
)

// Memo backend names accepted by Fib.
const (
	BackendMap       = "map"
	BackendLRU       = "lru"
	BackendRistretto = "ristretto"
)

// fibCacheSize bounds the LRU and ristretto backends. The naive recursion
// touches every n below the argument, so the bound must cover the range to
// show the memoization effect.
const fibCacheSize = 128

// Fib computes Fibonacci numbers by naive double recursion, with and without
// memoization. The unmemoized variant is the baseline; N around 30 keeps it
// slow enough to measure without dominating the suite.
type Fib struct {
	N       int
	Backend string
}

// NewFib constructs the memoization workload.
func NewFib(n int, backend string) *Fib {
	return &Fib{N: n, Backend: backend}
}

// Name implements Workload.
func (w *Fib) Name() string { return "fib" }

// fibPlain is the naive double recursion.
func fibPlain(n int) uint64 {
	if n < 2 {
		return uint64(n)
	}

	return fibPlain(n-1) + fibPlain(n-2)
}

// newFibCache builds the cache backend selected by name.
func newFibCache(backend string) (memo.Cache[int, uint64], error) {
	switch backend {
	case BackendMap, "":
		return memo.NewMapCache[int, uint64](), nil
	case BackendLRU:
		return memo.NewLRU[int, uint64](fibCacheSize)
	case BackendRistretto:
		return memo.NewRistretto[int, uint64](fibCacheSize)
	default:
		return nil, fmt.Errorf("%w: %q", ErrBadBackend, backend)
	}
}

// Variants implements Workload.
func (w *Fib) Variants() ([]Variant, error) {
	if w.N <= 0 || w.N >= 94 { // fib(93) is the last value fitting in uint64
		return nil, ErrBadSize
	}

	cache, err := newFibCache(w.Backend)
	if err != nil {
		return nil, err
	}

	var memoized *memo.Func[int, uint64]

	memoized = memo.Memoize(func(n int) (uint64, error) {
		if n < 2 {
			return uint64(n), nil
		}

		a, err := memoized.Do(n - 1)
		if err != nil {
			return 0, err
		}

		b, err := memoized.Do(n - 2)
		if err != nil {
			return 0, err
		}

		return a + b, nil
	}, cache)

	return []Variant{
		{
			Name: "recursive",
			Run: func(context.Context) error {
				_ = fibPlain(w.N)
				return nil
			},
		},
		{
			Name: "memoized-" + w.backendName(),
			Run: func(context.Context) error {
				// Cold cache per run, otherwise only the first run computes.
				memoized.Reset()

				_, err := memoized.Do(w.N)

				return err
			},
		},
		{
			Name: "memoized-" + w.backendName() + "-warm",
			Run: func(context.Context) error {
				_, err := memoized.Do(w.N)
				return err
			},
		},
	}, nil
}

func (w *Fib) backendName() string {
	if w.Backend == "" {
		return BackendMap
	}

	return w.Backend
}
