package interp

import "math"

// init registers the 4-wide unrolled loop strategy.
func init() {
	Register(Entry{
		Name:     "unrolled",
		Priority: 10,
		Apply:    applyUnrolled,
	})
}

// applyUnrolled hoists the interval reciprocal out of the loop and processes
// four elements per iteration to expose instruction-level parallelism.
func applyUnrolled(dst, x, y0 []float64, p Params) error {
	invDx := 1 / (p.X1 - p.X0)
	n := len(dst)

	i := 0
	for ; i+4 <= n; i += 4 {
		e0 := math.Exp(y0[i] * y0[i])
		e1 := math.Exp(y0[i+1] * y0[i+1])
		e2 := math.Exp(y0[i+2] * y0[i+2])
		e3 := math.Exp(y0[i+3] * y0[i+3])

		dst[i] = (e0*(p.X1-x[i]) + p.Y1*(x[i]-p.X0)) * invDx
		dst[i+1] = (e1*(p.X1-x[i+1]) + p.Y1*(x[i+1]-p.X0)) * invDx
		dst[i+2] = (e2*(p.X1-x[i+2]) + p.Y1*(x[i+2]-p.X0)) * invDx
		dst[i+3] = (e3*(p.X1-x[i+3]) + p.Y1*(x[i+3]-p.X0)) * invDx
	}

	for ; i < n; i++ {
		dst[i] = (math.Exp(y0[i]*y0[i])*(p.X1-x[i]) + p.Y1*(x[i]-p.X0)) * invDx
	}

	return nil
}
