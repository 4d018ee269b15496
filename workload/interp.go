package workload

import (
	"context"
	"math"

	"github.com/cwbudde/algo-perf/kernel/interp"
)

// Interp runs the interpolation kernel under every registered execution
// strategy over the same inputs. The scalar strategy is the baseline.
type Interp struct {
	Size   int
	Params interp.Params
}

// NewInterp constructs the kernel workload with the default parameter set.
func NewInterp(size int) *Interp {
	return &Interp{
		Size:   size,
		Params: interp.Params{X0: 0, X1: 1, Y1: 2},
	}
}

// Name implements Workload.
func (w *Interp) Name() string { return "interp" }

// Variants implements Workload.
func (w *Interp) Variants() ([]Variant, error) {
	if w.Size <= 0 {
		return nil, ErrBadSize
	}

	if err := w.Params.Validate(); err != nil {
		return nil, err
	}

	x := make([]float64, w.Size)
	y0 := make([]float64, w.Size)
	dst := make([]float64, w.Size)

	for i := range x {
		x[i] = float64(i) / float64(w.Size)
		y0[i] = math.Sin(0.01 * float64(i))
	}

	names := w.strategyOrder()
	variants := make([]Variant, 0, len(names))

	for _, name := range names {
		variants = append(variants, Variant{
			Name: name,
			Run: func(context.Context) error {
				return interp.ApplyStrategy(name, dst, x, y0, w.Params)
			},
		})
	}

	return variants, nil
}

// strategyOrder lists strategies with scalar first so it becomes the
// baseline, followed by the rest in registry priority order.
func (w *Interp) strategyOrder() []string {
	names := []string{"scalar"}

	for _, n := range interp.Strategies() {
		if n != "scalar" {
			names = append(names, n)
		}
	}

	return names
}
