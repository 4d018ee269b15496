package workload

import (
	"context"
	"errors"
	"math"

	algofft "github.com/cwbudde/algo-fft"
)

// ErrNotPowerOfTwo is returned for FFT sizes the plan cannot handle.
var ErrNotPowerOfTwo = errors.New("workload: fft size must be a power of two")

// FFT runs a forward transform over a fixed test signal. It demonstrates a
// kernel whose heavy lifting lives entirely in a compiled library; the only
// variant pair is planned reuse versus per-call planning.
type FFT struct {
	Size int
}

// NewFFT constructs the FFT workload.
func NewFFT(size int) *FFT {
	return &FFT{Size: size}
}

// Name implements Workload.
func (w *FFT) Name() string { return "fft" }

// Variants implements Workload.
func (w *FFT) Variants() ([]Variant, error) {
	if w.Size <= 0 {
		return nil, ErrBadSize
	}

	if w.Size&(w.Size-1) != 0 {
		return nil, ErrNotPowerOfTwo
	}

	in := make([]complex128, w.Size)
	out := make([]complex128, w.Size)

	for i := range in {
		t := float64(i) / float64(w.Size)
		in[i] = complex(math.Sin(2*math.Pi*10*t)+0.5*math.Sin(2*math.Pi*33*t), 0)
	}

	plan, err := algofft.NewPlan64(w.Size)
	if err != nil {
		return nil, err
	}

	return []Variant{
		{
			Name: "plan-per-call",
			Run: func(context.Context) error {
				p, err := algofft.NewPlan64(w.Size)
				if err != nil {
					return err
				}

				return p.Forward(out, in)
			},
		},
		{
			Name: "plan-reused",
			Run: func(context.Context) error {
				return plan.Forward(out, in)
			},
		},
	}, nil
}
