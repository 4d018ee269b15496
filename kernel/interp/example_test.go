package interp_test

import (
	"fmt"

	"github.com/cwbudde/algo-perf/kernel/interp"
)

func ExampleEval() {
	p := interp.Params{X0: 0, X1: 1, Y1: 2}

	// With y0 = 0 the exp weight is 1 and the kernel interpolates linearly
	// between 1 and Y1.
	fmt.Printf("%.2f\n", interp.Eval(p, 0.5, 0))

	// Output:
	// 1.50
}

func ExampleApplyStrategy() {
	p := interp.Params{X0: 0, X1: 1, Y1: 2}

	x := []float64{0, 0.5, 1}
	y0 := []float64{0, 0, 0}
	dst := make([]float64, 3)

	_ = interp.ApplyStrategy("unrolled", dst, x, y0, p)
	fmt.Println(dst)

	// Output:
	// [1 1.5 2]
}
