package expr

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by Compile and Program evaluation.
var (
	ErrSyntax         = errors.New("expr: syntax error")
	ErrUnknownIdent   = errors.New("expr: unknown identifier")
	ErrArity          = errors.New("expr: wrong argument count")
	ErrDuplicateVar   = errors.New("expr: duplicate variable name")
	ErrVarCount       = errors.New("expr: variable count mismatch")
	ErrLengthMismatch = errors.New("expr: slice length mismatch")
)

type opcode uint8

const (
	opConst opcode = iota // push consts[arg]
	opVar                 // push variable slot arg
	opAdd
	opSub
	opMul
	opDiv
	opPow
	opNeg
	opCall1 // apply fn1Table[arg] to top of stack
	opCall2 // apply fn2Table[arg] to top two stack values
)

type instr struct {
	op  opcode
	arg int
}

// fn1Table holds the one-argument builtin functions. Indexed by instr.arg.
var fn1Table = []struct {
	name string
	fn   func(float64) float64
}{
	{"exp", math.Exp},
	{"log", math.Log},
	{"sqrt", math.Sqrt},
	{"sin", math.Sin},
	{"cos", math.Cos},
	{"abs", math.Abs},
}

// fn2Table holds the two-argument builtin functions. Indexed by instr.arg.
var fn2Table = []struct {
	name string
	fn   func(float64, float64) float64
}{
	{"pow", math.Pow},
	{"min", math.Min},
	{"max", math.Max},
}

func lookupFn1(name string) (int, bool) {
	for i, f := range fn1Table {
		if f.name == name {
			return i, true
		}
	}

	return 0, false
}

func lookupFn2(name string) (int, bool) {
	for i, f := range fn2Table {
		if f.name == name {
			return i, true
		}
	}

	return 0, false
}

// Compile parses src and compiles it into a Program over the given variable
// names. Evaluation binds values to variables in the order given here.
func Compile(src string, vars ...string) (*Program, error) {
	slots := make(map[string]int, len(vars))
	for i, name := range vars {
		if _, ok := slots[name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateVar, name)
		}

		slots[name] = i
	}

	p, err := newParser(src)
	if err != nil {
		return nil, err
	}

	root, err := p.parse()
	if err != nil {
		return nil, err
	}

	c := &compiler{slots: slots}
	if err := c.emit(root); err != nil {
		return nil, err
	}

	return &Program{
		src:    src,
		vars:   append([]string(nil), vars...),
		code:   c.code,
		consts: c.consts,
		depth:  c.maxDepth,
	}, nil
}

type compiler struct {
	slots    map[string]int
	code     []instr
	consts   []float64
	depth    int
	maxDepth int
}

func (c *compiler) push(op opcode, arg int, delta int) {
	c.code = append(c.code, instr{op: op, arg: arg})
	c.depth += delta

	if c.depth > c.maxDepth {
		c.maxDepth = c.depth
	}
}

func (c *compiler) constIndex(v float64) int {
	for i, cv := range c.consts {
		if cv == v {
			return i
		}
	}

	c.consts = append(c.consts, v)

	return len(c.consts) - 1
}

func (c *compiler) emit(n node) error {
	switch n := n.(type) {
	case numNode:
		c.push(opConst, c.constIndex(n.val), 1)
		return nil

	case varNode:
		slot, ok := c.slots[n.name]
		if !ok {
			return fmt.Errorf("%w: %q at offset %d", ErrUnknownIdent, n.name, n.off)
		}

		c.push(opVar, slot, 1)

		return nil

	case unaryNode:
		if err := c.emit(n.x); err != nil {
			return err
		}

		c.push(opNeg, 0, 0)

		return nil

	case binaryNode:
		if err := c.emit(n.x); err != nil {
			return err
		}

		if err := c.emit(n.y); err != nil {
			return err
		}

		var op opcode

		switch n.op {
		case tokPlus:
			op = opAdd
		case tokMinus:
			op = opSub
		case tokStar:
			op = opMul
		case tokSlash:
			op = opDiv
		case tokCaret:
			op = opPow
		default:
			return fmt.Errorf("%w: unexpected operator at offset %d", ErrSyntax, n.off)
		}

		c.push(op, 0, -1)

		return nil

	case callNode:
		return c.emitCall(n)

	default:
		return fmt.Errorf("%w: unexpected node at offset %d", ErrSyntax, n.offset())
	}
}

func (c *compiler) emitCall(n callNode) error {
	if idx, ok := lookupFn1(n.name); ok {
		if len(n.args) != 1 {
			return fmt.Errorf("%w: %s takes 1 argument, got %d at offset %d", ErrArity, n.name, len(n.args), n.off)
		}

		if err := c.emit(n.args[0]); err != nil {
			return err
		}

		c.push(opCall1, idx, 0)

		return nil
	}

	if idx, ok := lookupFn2(n.name); ok {
		if len(n.args) != 2 {
			return fmt.Errorf("%w: %s takes 2 arguments, got %d at offset %d", ErrArity, n.name, len(n.args), n.off)
		}

		if err := c.emit(n.args[0]); err != nil {
			return err
		}

		if err := c.emit(n.args[1]); err != nil {
			return err
		}

		c.push(opCall2, idx, -1)

		return nil
	}

	return fmt.Errorf("%w: function %q at offset %d", ErrUnknownIdent, n.name, n.off)
}
