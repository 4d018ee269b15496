// Package expr compiles arithmetic expressions over named float64 variables
// into stack bytecode and evaluates them either on scalars or elementwise
// over equal-length slices.
//
// Block evaluation processes inputs in fixed-size blocks so that all
// intermediate results stay cache-resident, which is what makes a compiled
// expression competitive with a hand-written loop for large arrays.
//
// # Grammar
//
//	expr    = term { ("+" | "-") term }
//	term    = factor { ("*" | "/") factor }
//	factor  = ["-"] power
//	power   = primary [ "^" factor ]          (right associative)
//	primary = number | ident | ident "(" args ")" | "(" expr ")"
//
// Supported functions: exp, log, sqrt, sin, cos, abs (one argument) and
// pow, min, max (two arguments).
//
// # Usage
//
// Compile once, evaluate many times:
//
//	p, _ := expr.Compile("(exp(y0^2)*(x1-x) + y1*(x-x0)) / (x1-x0)",
//	    "x", "y0", "x0", "x1", "y1")
//
//	// Scalar:
//	v, _ := p.Eval(0.5, 1.0, 0.0, 1.0, 2.0)
//
//	// Elementwise over slices:
//	_ = p.EvalBlocks(dst, xs, y0s, x0s, x1s, y1s)
package expr
