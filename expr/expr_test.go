package expr

import (
	"errors"
	"math"
	"testing"
)

func TestEvalScalar(t *testing.T) {
	tests := []struct {
		name string
		src  string
		vars []string
		vals []float64
		want float64
	}{
		{"constant", "3", nil, nil, 3},
		{"addition", "1 + 2*3", nil, nil, 7},
		{"parens", "(1 + 2) * 3", nil, nil, 9},
		{"division", "10 / 4", nil, nil, 2.5},
		{"unary minus", "-2 + 5", nil, nil, 3},
		{"double negation", "--2", nil, nil, 2},
		{"power", "2^10", nil, nil, 1024},
		{"power right assoc", "2^3^2", nil, nil, 512},
		{"neg power", "-2^2", nil, nil, -4},
		{"variable", "x * x", []string{"x"}, []float64{3}, 9},
		{"two vars", "a - b", []string{"a", "b"}, []float64{5, 2}, 3},
		{"exp", "exp(1)", nil, nil, math.E},
		{"sqrt", "sqrt(2)", nil, nil, math.Sqrt2},
		{"abs neg", "abs(-4.5)", nil, nil, 4.5},
		{"pow fn", "pow(3, 4)", nil, nil, 81},
		{"min", "min(2, -1)", nil, nil, -1},
		{"max nested", "max(1, min(5, 3))", nil, nil, 3},
		{"scientific", "1.5e3 + 1", nil, nil, 1501},
		{"whitespace", "  1 +\t2 ", nil, nil, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := Compile(tc.src, tc.vars...)
			if err != nil {
				t.Fatalf("Compile(%q): %v", tc.src, err)
			}

			got, err := p.Eval(tc.vals...)
			if err != nil {
				t.Fatalf("Eval: %v", err)
			}

			if math.Abs(got-tc.want) > 1e-12 {
				t.Fatalf("Eval(%q) = %v, want %v", tc.src, got, tc.want)
			}
		})
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		vars []string
		want error
	}{
		{"empty", "", nil, ErrSyntax},
		{"trailing operator", "1 +", nil, ErrSyntax},
		{"unbalanced paren", "(1 + 2", nil, ErrSyntax},
		{"bad char", "1 $ 2", nil, ErrSyntax},
		{"dangling input", "1 2", nil, ErrSyntax},
		{"unknown variable", "x + 1", nil, ErrUnknownIdent},
		{"unknown function", "sinh(1)", nil, ErrUnknownIdent},
		{"arity one", "exp(1, 2)", nil, ErrArity},
		{"arity two", "pow(2)", nil, ErrArity},
		{"duplicate var", "x", []string{"x", "x"}, ErrDuplicateVar},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Compile(tc.src, tc.vars...)
			if !errors.Is(err, tc.want) {
				t.Fatalf("Compile(%q) error = %v, want %v", tc.src, err, tc.want)
			}
		})
	}
}

func TestEvalVarCount(t *testing.T) {
	p, err := Compile("x + y", "x", "y")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := p.Eval(1); !errors.Is(err, ErrVarCount) {
		t.Fatalf("Eval with 1 value: error = %v, want ErrVarCount", err)
	}
}

func TestDivisionByZeroIEEE(t *testing.T) {
	p, err := Compile("x / y", "x", "y")
	if err != nil {
		t.Fatal(err)
	}

	got, err := p.Eval(1, 0)
	if err != nil {
		t.Fatal(err)
	}

	if !math.IsInf(got, 1) {
		t.Fatalf("1/0 = %v, want +Inf", got)
	}
}

// TestEvalBlocksMatchesScalar runs the block VM against per-element scalar
// evaluation on sizes around the block boundary.
func TestEvalBlocksMatchesScalar(t *testing.T) {
	const src = "(exp(y0^2)*(1 - x) + 2*(x - 0)) / 1"

	p, err := Compile(src, "x", "y0")
	if err != nil {
		t.Fatal(err)
	}

	for _, n := range []int{0, 1, 7, blockSize - 1, blockSize, blockSize + 1, 3 * blockSize} {
		xs := make([]float64, n)
		y0s := make([]float64, n)

		for i := range xs {
			xs[i] = float64(i) / float64(n+1)
			y0s[i] = math.Sin(float64(i))
		}

		dst := make([]float64, n)
		if err := p.EvalBlocks(dst, xs, y0s); err != nil {
			t.Fatalf("n=%d: EvalBlocks: %v", n, err)
		}

		for i := range dst {
			want, _ := p.Eval(xs[i], y0s[i])
			if math.Abs(dst[i]-want) > 1e-12 {
				t.Fatalf("n=%d index %d: got %v, want %v", n, i, dst[i], want)
			}
		}
	}
}

func TestEvalBlocksLengthMismatch(t *testing.T) {
	p, err := Compile("x", "x")
	if err != nil {
		t.Fatal(err)
	}

	dst := make([]float64, 4)

	if err := p.EvalBlocks(dst, make([]float64, 3)); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("error = %v, want ErrLengthMismatch", err)
	}

	if err := p.EvalBlocks(dst); !errors.Is(err, ErrVarCount) {
		t.Fatalf("error = %v, want ErrVarCount", err)
	}
}

func TestProgramConcurrentEval(t *testing.T) {
	p, err := Compile("sqrt(x*x + 1)", "x")
	if err != nil {
		t.Fatal(err)
	}

	done := make(chan struct{})

	for g := 0; g < 8; g++ {
		go func() {
			defer func() { done <- struct{}{} }()

			dst := make([]float64, 2048)
			xs := make([]float64, 2048)

			for i := range xs {
				xs[i] = float64(i)
			}

			for iter := 0; iter < 50; iter++ {
				if err := p.EvalBlocks(dst, xs); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}

	for g := 0; g < 8; g++ {
		<-done
	}
}
