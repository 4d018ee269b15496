package interp_test

import (
	"strconv"
	"testing"

	"github.com/cwbudde/algo-perf/kernel/interp"
)

func BenchmarkStrategies(b *testing.B) {
	p := interp.Params{X0: 0, X1: 1, Y1: 2}
	sizes := []int{1024, 16384, 262144}

	for _, name := range interp.Strategies() {
		for _, n := range sizes {
			x, y0 := makeInputs(n)
			dst := make([]float64, n)

			b.Run(name+"/"+strconv.Itoa(n), func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(n * 8))

				for range b.N {
					if err := interp.ApplyStrategy(name, dst, x, y0, p); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkEval(b *testing.B) {
	p := interp.Params{X0: 0, X1: 1, Y1: 2}

	b.ReportAllocs()

	var sink float64
	for i := range b.N {
		sink = interp.Eval(p, float64(i%100)/100, 0.5)
	}

	_ = sink
}
