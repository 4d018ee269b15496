package mandel

import (
	"context"
	"strconv"
	"testing"
)

func BenchmarkRender(b *testing.B) {
	sizes := []int{64, 256, 512}
	for _, n := range sizes {
		p := DefaultParams(n, n, 100)

		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()

			for range b.N {
				if _, err := Render(p); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkRenderParallel(b *testing.B) {
	ctx := context.Background()

	sizes := []int{64, 256, 512}
	for _, n := range sizes {
		p := DefaultParams(n, n, 100)

		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()

			for range b.N {
				if _, err := RenderParallel(ctx, p, 0); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkEscapeTime(b *testing.B) {
	b.ReportAllocs()

	var sink int
	for range b.N {
		sink = EscapeTime(complex(-0.75, 0.1), 1000)
	}

	_ = sink
}
