package interp

import (
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-perf/internal/cpu"
)

// parallelThreshold is the element count below which parallel strategies run
// the serial inner loop instead: beneath it goroutine creation and scheduling
// overhead exceed the gain from extra cores.
const parallelThreshold = 1 << 14

// init registers the chunked parallel strategies.
func init() {
	Register(Entry{
		Name:     "parallel",
		Priority: 25,
		Apply:    parallelOver(applyScalar),
	})

	Register(Entry{
		Name:     "parallel-unrolled",
		Priority: 30,
		Apply:    parallelOver(applyUnrolled),
	})
}

// parallelOver lifts a serial strategy to a parallel one by splitting the
// input into one contiguous chunk per core. Chunks are disjoint, so workers
// never write the same dst element.
func parallelOver(inner ApplyFunc) ApplyFunc {
	return func(dst, x, y0 []float64, p Params) error {
		n := len(dst)
		workers := cpu.Cores()

		if n < parallelThreshold || workers < 2 {
			return inner(dst, x, y0, p)
		}

		chunk := (n + workers - 1) / workers

		var g errgroup.Group

		for start := 0; start < n; start += chunk {
			end := min(start+chunk, n)

			g.Go(func() error {
				return inner(dst[start:end], x[start:end], y0[start:end], p)
			})
		}

		return g.Wait()
	}
}
