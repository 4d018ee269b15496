package interp

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/cwbudde/algo-perf/expr"
)

// init registers the compiled-expression strategy: the kernel formula in its
// string form, compiled once per parameter set by the expr package and
// evaluated blockwise.
func init() {
	Register(Entry{
		Name:     "expr",
		Priority: 5,
		Apply:    applyExpr,
	})
}

var (
	programMu    sync.Mutex
	programCache = make(map[Params]*expr.Program)
)

// programFor returns the compiled kernel for p, baking the scalar parameters
// into the expression as constants. Programs are cached per parameter set.
func programFor(p Params) (*expr.Program, error) {
	programMu.Lock()
	defer programMu.Unlock()

	if prog, ok := programCache[p]; ok {
		return prog, nil
	}

	g := func(v float64) string {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	src := fmt.Sprintf("(exp(y0^2)*((%s) - x) + (%s)*(x - (%s))) / ((%s) - (%s))",
		g(p.X1), g(p.Y1), g(p.X0), g(p.X1), g(p.X0))

	prog, err := expr.Compile(src, "x", "y0")
	if err != nil {
		return nil, err
	}

	programCache[p] = prog

	return prog, nil
}

func applyExpr(dst, x, y0 []float64, p Params) error {
	prog, err := programFor(p)
	if err != nil {
		return err
	}

	return prog.EvalBlocks(dst, x, y0)
}
