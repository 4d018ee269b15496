// Package interp evaluates a parametrized interpolation kernel elementwise
// over arrays under interchangeable execution strategies.
//
// The kernel interpolates between the anchor points (X0, y0[i]) and (X1, Y1)
// with an exp-weighted lower sample:
//
//	dst[i] = (exp(y0[i]^2)*(X1 - x[i]) + Y1*(x[i] - X0)) / (X1 - X0)
//
// All strategies compute the same result; they differ only in execution
// backend. Available strategies, registered at init time:
//
//   - scalar:            plain element loop (reference implementation)
//   - unrolled:          4-wide unrolled loop
//   - vecmath:           composed from algo-vecmath block primitives
//   - expr:              formula compiled by the expr package, evaluated blockwise
//   - parallel:          chunked across CPUs
//   - parallel-unrolled: chunked across CPUs with the unrolled inner loop
//
// [Apply] dispatches to the highest-priority strategy; [ApplyStrategy] selects
// one by name. Every strategy agrees with scalar evaluation within a relative
// tolerance of 1e-12.
package interp
