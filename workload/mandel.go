package workload

import (
	"context"

	"github.com/cwbudde/algo-perf/kernel/mandel"
)

// Mandel renders the same escape-time grid sequentially and in parallel.
type Mandel struct {
	Params  mandel.Params
	Workers int
}

// NewMandel constructs the fractal workload over the classic full-set view.
func NewMandel(size, maxIter, workers int) *Mandel {
	return &Mandel{
		Params:  mandel.DefaultParams(size, size, maxIter),
		Workers: workers,
	}
}

// Name implements Workload.
func (w *Mandel) Name() string { return "mandel" }

// Variants implements Workload.
func (w *Mandel) Variants() ([]Variant, error) {
	if err := w.Params.Validate(); err != nil {
		return nil, err
	}

	return []Variant{
		{
			Name: "sequential",
			Run: func(context.Context) error {
				_, err := mandel.Render(w.Params)
				return err
			},
		},
		{
			Name: "parallel",
			Run: func(ctx context.Context) error {
				_, err := mandel.RenderParallel(ctx, w.Params, w.Workers)
				return err
			},
		},
	}, nil
}
