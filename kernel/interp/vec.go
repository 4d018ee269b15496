package interp

import (
	"math"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// init registers the strategy composed from algo-vecmath block primitives.
// algo-vecmath dispatches to SSE2/AVX2/NEON internally where available.
func init() {
	Register(Entry{
		Name:     "vecmath",
		Priority: 15,
		Apply:    applyVecmath,
	})
}

var scratchPool = sync.Pool{
	New: func() any {
		s := make([]float64, 0)
		return &s
	},
}

func getScratch(n int) *[]float64 {
	sp := scratchPool.Get().(*[]float64)
	if cap(*sp) < n {
		*sp = make([]float64, n)
	}

	*sp = (*sp)[:n]

	return sp
}

// applyVecmath rewrites the kernel as
//
//	dst = exp(y0^2) * ((X1 - x)/dx) + (Y1/dx)*x - Y1*X0/dx
//
// so the elementwise products run through vecmath block kernels; only the
// exp pass and the scalar offsets remain plain loops.
func applyVecmath(dst, x, y0 []float64, p Params) error {
	n := len(dst)
	invDx := 1 / (p.X1 - p.X0)

	t1p := getScratch(n)
	t2p := getScratch(n)

	defer scratchPool.Put(t1p)
	defer scratchPool.Put(t2p)

	t1 := *t1p
	t2 := *t2p

	// t1 = exp(y0^2)
	vecmath.MulBlock(t1, y0, y0)

	for i := range t1 {
		t1[i] = math.Exp(t1[i])
	}

	// t2 = (X1 - x) / dx
	vecmath.ScaleBlock(t2, x, -invDx)

	x1Scaled := p.X1 * invDx
	for i := range t2 {
		t2[i] += x1Scaled
	}

	// dst = (Y1/dx)*x - Y1*X0/dx
	vecmath.ScaleBlock(dst, x, p.Y1*invDx)

	offset := -p.Y1 * p.X0 * invDx
	for i := range dst {
		dst[i] += offset
	}

	// dst += t1*t2
	vecmath.MulBlockInPlace(t1, t2)
	vecmath.AddBlockInPlace(dst, t1)

	return nil
}
