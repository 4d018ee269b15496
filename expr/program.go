package expr

import (
	"fmt"
	"math"
	"sync"
)

// blockSize is the number of elements processed per block in EvalBlocks.
// 1024 float64 values per slab keep the full evaluation stack within L1/L2
// for typical expression depths.
const blockSize = 1024

// Program is a compiled expression. It is immutable after Compile and safe
// for concurrent evaluation.
type Program struct {
	src    string
	vars   []string
	code   []instr
	consts []float64
	depth  int
}

// Source returns the original expression text.
func (p *Program) Source() string { return p.src }

// Vars returns the variable names in binding order.
func (p *Program) Vars() []string { return append([]string(nil), p.vars...) }

// Eval evaluates the program with scalar bindings, one value per variable
// in Compile order.
func (p *Program) Eval(vals ...float64) (float64, error) {
	if len(vals) != len(p.vars) {
		return 0, fmt.Errorf("%w: got %d values for %d variables", ErrVarCount, len(vals), len(p.vars))
	}

	stack := make([]float64, 0, p.depth)

	for _, in := range p.code {
		switch in.op {
		case opConst:
			stack = append(stack, p.consts[in.arg])
		case opVar:
			stack = append(stack, vals[in.arg])
		case opNeg:
			stack[len(stack)-1] = -stack[len(stack)-1]
		case opCall1:
			stack[len(stack)-1] = fn1Table[in.arg].fn(stack[len(stack)-1])
		case opCall2:
			b := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			stack[len(stack)-1] = fn2Table[in.arg].fn(stack[len(stack)-1], b)
		default:
			b := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			a := stack[len(stack)-1]
			stack[len(stack)-1] = applyBinary(in.op, a, b)
		}
	}

	return stack[0], nil
}

func applyBinary(op opcode, a, b float64) float64 {
	switch op {
	case opAdd:
		return a + b
	case opSub:
		return a - b
	case opMul:
		return a * b
	case opDiv:
		return a / b // IEEE semantics: x/0 is ±Inf or NaN
	case opPow:
		return math.Pow(a, b)
	default:
		return math.NaN()
	}
}

// slabPool recycles block-sized scratch slices between EvalBlocks calls.
var slabPool = sync.Pool{
	New: func() any {
		s := make([]float64, blockSize)
		return &s
	},
}

// EvalBlocks evaluates the program elementwise: one slice per variable in
// Compile order, all the same length as dst. Inputs are processed in blocks
// of at most blockSize elements.
func (p *Program) EvalBlocks(dst []float64, vars ...[]float64) error {
	if len(vars) != len(p.vars) {
		return fmt.Errorf("%w: got %d slices for %d variables", ErrVarCount, len(vars), len(p.vars))
	}

	for i, v := range vars {
		if len(v) != len(dst) {
			return fmt.Errorf("%w: variable %q has length %d, dst has %d", ErrLengthMismatch, p.vars[i], len(v), len(dst))
		}
	}

	// Acquire one slab per stack slot.
	slabs := make([]*[]float64, p.depth)
	for i := range slabs {
		slabs[i] = slabPool.Get().(*[]float64)
	}

	defer func() {
		for _, s := range slabs {
			slabPool.Put(s)
		}
	}()

	for start := 0; start < len(dst); start += blockSize {
		end := start + blockSize
		if end > len(dst) {
			end = len(dst)
		}

		p.evalBlock(dst[start:end], vars, start, slabs)
	}

	return nil
}

// evalBlock runs the bytecode over a single block. out has block length,
// vars are full-length inputs offset by base.
func (p *Program) evalBlock(out []float64, vars [][]float64, base int, slabs []*[]float64) {
	n := len(out)
	sp := 0 // slab stack pointer

	for _, in := range p.code {
		switch in.op {
		case opConst:
			s := (*slabs[sp])[:n]
			cv := p.consts[in.arg]

			for i := range s {
				s[i] = cv
			}

			sp++

		case opVar:
			s := (*slabs[sp])[:n]
			copy(s, vars[in.arg][base:base+n])
			sp++

		case opNeg:
			s := (*slabs[sp-1])[:n]
			for i := range s {
				s[i] = -s[i]
			}

		case opCall1:
			s := (*slabs[sp-1])[:n]
			fn := fn1Table[in.arg].fn

			for i := range s {
				s[i] = fn(s[i])
			}

		case opCall2:
			a := (*slabs[sp-2])[:n]
			b := (*slabs[sp-1])[:n]
			fn := fn2Table[in.arg].fn

			for i := range a {
				a[i] = fn(a[i], b[i])
			}

			sp--

		case opAdd:
			a, b := (*slabs[sp-2])[:n], (*slabs[sp-1])[:n]
			for i := range a {
				a[i] += b[i]
			}

			sp--

		case opSub:
			a, b := (*slabs[sp-2])[:n], (*slabs[sp-1])[:n]
			for i := range a {
				a[i] -= b[i]
			}

			sp--

		case opMul:
			a, b := (*slabs[sp-2])[:n], (*slabs[sp-1])[:n]
			for i := range a {
				a[i] *= b[i]
			}

			sp--

		case opDiv:
			a, b := (*slabs[sp-2])[:n], (*slabs[sp-1])[:n]
			for i := range a {
				a[i] /= b[i]
			}

			sp--

		case opPow:
			a, b := (*slabs[sp-2])[:n], (*slabs[sp-1])[:n]
			for i := range a {
				a[i] = math.Pow(a[i], b[i])
			}

			sp--
		}
	}

	copy(out, (*slabs[0])[:n])
}
