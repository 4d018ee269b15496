// Package mandel renders Mandelbrot escape-time grids sequentially or in
// parallel. Both paths produce bit-identical results; only row scheduling
// differs.
package mandel

import (
	"context"
	"errors"
	"math"
	"math/cmplx"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-perf/internal/cpu"
)

// Errors returned by rendering.
var (
	ErrBadSize     = errors.New("mandel: width, height and max iterations must be positive")
	ErrBadBounds   = errors.New("mandel: bounds must satisfy XMin < XMax and YMin < YMax")
	ErrMaxIterSize = errors.New("mandel: max iterations exceeds uint16 range")
)

// escapeRadius2 is the squared escape radius; |z| > 2 guarantees divergence.
const escapeRadius2 = 4.0

// Params describes the grid over the complex plane.
type Params struct {
	Width   int
	Height  int
	MaxIter int

	XMin, XMax float64
	YMin, YMax float64
}

// DefaultParams covers the classic full-set view.
func DefaultParams(width, height, maxIter int) Params {
	return Params{
		Width:   width,
		Height:  height,
		MaxIter: maxIter,
		XMin:    -2.5,
		XMax:    1.0,
		YMin:    -1.25,
		YMax:    1.25,
	}
}

// Validate checks the grid parameters.
func (p Params) Validate() error {
	if p.Width <= 0 || p.Height <= 0 || p.MaxIter <= 0 {
		return ErrBadSize
	}

	if p.MaxIter > math.MaxUint16 {
		return ErrMaxIterSize
	}

	if p.XMin >= p.XMax || p.YMin >= p.YMax {
		return ErrBadBounds
	}

	return nil
}

// EscapeTime returns the iteration at which z(n+1) = z(n)^2 + c leaves the
// escape radius, or maxIter if it never does within the budget.
func EscapeTime(c complex128, maxIter int) int {
	var zr, zi float64

	cr, ci := real(c), imag(c)

	for i := 0; i < maxIter; i++ {
		zr2 := zr * zr
		zi2 := zi * zi

		if zr2+zi2 > escapeRadius2 {
			return i
		}

		zi = 2*zr*zi + ci
		zr = zr2 - zi2 + cr
	}

	return maxIter
}

// renderRow fills one row of the grid.
func renderRow(grid []uint16, p Params, row int) {
	ci := p.YMin + (p.YMax-p.YMin)*float64(row)/float64(p.Height-1)
	if p.Height == 1 {
		ci = p.YMin
	}

	base := row * p.Width

	for col := 0; col < p.Width; col++ {
		cr := p.XMin + (p.XMax-p.XMin)*float64(col)/float64(p.Width-1)
		if p.Width == 1 {
			cr = p.XMin
		}

		grid[base+col] = uint16(EscapeTime(complex(cr, ci), p.MaxIter))
	}
}

// Render computes the escape-time grid sequentially, row-major.
func Render(p Params) ([]uint16, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	grid := make([]uint16, p.Width*p.Height)

	for row := 0; row < p.Height; row++ {
		renderRow(grid, p, row)
	}

	return grid, nil
}

// RenderParallel computes the same grid with rows distributed across workers.
// Pass workers <= 0 to use one worker per core. Cancellation via ctx is
// checked between rows.
func RenderParallel(ctx context.Context, p Params, workers int) ([]uint16, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if workers <= 0 {
		workers = cpu.Cores()
	}

	grid := make([]uint16, p.Width*p.Height)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for row := 0; row < p.Height; row++ {
		if err := ctx.Err(); err != nil {
			break
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			renderRow(grid, p, row)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return grid, nil
}

// InSet reports whether c is in the Mandelbrot set within the iteration
// budget. Points whose magnitude already exceeds the escape radius are
// rejected without iterating.
func InSet(c complex128, maxIter int) bool {
	if cmplx.Abs(c) > 2 {
		return false
	}

	return EscapeTime(c, maxIter) == maxIter
}
