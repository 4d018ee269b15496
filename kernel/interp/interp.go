package interp

import (
	"errors"
	"math"
)

// Errors returned by kernel evaluation.
var (
	ErrBadInterval     = errors.New("interp: interval requires X1 > X0")
	ErrNotFinite       = errors.New("interp: parameters must be finite")
	ErrLengthMismatch  = errors.New("interp: slice length mismatch")
	ErrUnknownStrategy = errors.New("interp: unknown strategy")
)

// Params holds the kernel parameters: the abscissa interval [X0, X1] and the
// upper ordinate Y1. The lower ordinate is supplied per element.
type Params struct {
	X0 float64
	X1 float64
	Y1 float64
}

// Validate checks that the parameters describe a usable interval.
func (p Params) Validate() error {
	if math.IsNaN(p.X0) || math.IsInf(p.X0, 0) ||
		math.IsNaN(p.X1) || math.IsInf(p.X1, 0) ||
		math.IsNaN(p.Y1) || math.IsInf(p.Y1, 0) {
		return ErrNotFinite
	}

	if p.X1 <= p.X0 {
		return ErrBadInterval
	}

	return nil
}

// Eval computes the kernel for a single point. This is the reference
// definition all strategies are measured against.
func Eval(p Params, x, y0 float64) float64 {
	return (math.Exp(y0*y0)*(p.X1-x) + p.Y1*(x-p.X0)) / (p.X1 - p.X0)
}

// ApplyFunc is the signature implemented by every execution strategy.
// dst, x and y0 must have equal length; p must be valid.
type ApplyFunc func(dst, x, y0 []float64, p Params) error

// checkArgs validates parameters and slice lengths shared by all entry points.
func checkArgs(dst, x, y0 []float64, p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if len(x) != len(dst) || len(y0) != len(dst) {
		return ErrLengthMismatch
	}

	return nil
}

// Apply evaluates the kernel elementwise using the highest-priority
// registered strategy. Empty input is a no-op.
func Apply(dst, x, y0 []float64, p Params) error {
	if err := checkArgs(dst, x, y0, p); err != nil {
		return err
	}

	if len(dst) == 0 {
		return nil
	}

	return defaultEntry().Apply(dst, x, y0, p)
}

// ApplyStrategy evaluates the kernel using the named strategy.
func ApplyStrategy(name string, dst, x, y0 []float64, p Params) error {
	e, err := ByName(name)
	if err != nil {
		return err
	}

	if err := checkArgs(dst, x, y0, p); err != nil {
		return err
	}

	if len(dst) == 0 {
		return nil
	}

	return e.Apply(dst, x, y0, p)
}
