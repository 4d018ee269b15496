package interp

// init registers the plain element-loop strategy. It is the reference all
// other strategies are compared against.
func init() {
	Register(Entry{
		Name:     "scalar",
		Priority: 0,
		Apply:    applyScalar,
	})
}

func applyScalar(dst, x, y0 []float64, p Params) error {
	for i := range dst {
		dst[i] = Eval(p, x[i], y0[i])
	}

	return nil
}
