package expr

import (
	"math"
	"strconv"
	"testing"
)

const benchSrc = "(exp(y0^2)*(1 - x) + 2*(x - 0)) / 1"

func benchInputs(n int) (xs, y0s []float64) {
	xs = make([]float64, n)
	y0s = make([]float64, n)

	for i := range xs {
		xs[i] = float64(i) / float64(n)
		y0s[i] = math.Sin(float64(i))
	}

	return xs, y0s
}

func BenchmarkEvalBlocks(b *testing.B) {
	p, err := Compile(benchSrc, "x", "y0")
	if err != nil {
		b.Fatal(err)
	}

	sizes := []int{1024, 16384, 262144}
	for _, n := range sizes {
		xs, y0s := benchInputs(n)
		dst := make([]float64, n)

		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))

			for range b.N {
				if err := p.EvalBlocks(dst, xs, y0s); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkEvalScalar(b *testing.B) {
	p, err := Compile(benchSrc, "x", "y0")
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()

	for range b.N {
		if _, err := p.Eval(0.5, 0.25); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompile(b *testing.B) {
	b.ReportAllocs()

	for range b.N {
		if _, err := Compile(benchSrc, "x", "y0"); err != nil {
			b.Fatal(err)
		}
	}
}
