package expr

import "fmt"

// node is an AST node produced by the parser.
type node interface {
	offset() int
}

type numNode struct {
	off int
	val float64
}

type varNode struct {
	off  int
	name string
}

type unaryNode struct {
	off int
	x   node // negation is the only unary operator
}

type binaryNode struct {
	off  int
	op   tokenKind
	x, y node
}

type callNode struct {
	off  int
	name string
	args []node
}

func (n numNode) offset() int    { return n.off }
func (n varNode) offset() int    { return n.off }
func (n unaryNode) offset() int  { return n.off }
func (n binaryNode) offset() int { return n.off }
func (n callNode) offset() int   { return n.off }

// Binary operator precedence. Power binds tightest and is right-associative;
// unary minus binds looser than power so that -x^2 means -(x^2).
const (
	precAdd = 10
	precMul = 20
	precPow = 30
)

func binaryPrec(k tokenKind) int {
	switch k {
	case tokPlus, tokMinus:
		return precAdd
	case tokStar, tokSlash:
		return precMul
	case tokCaret:
		return precPow
	default:
		return 0
	}
}

type parser struct {
	scan scanner
	tok  token // one-token lookahead
}

func newParser(src string) (*parser, error) {
	p := &parser{scan: scanner{src: src}}

	tok, err := p.scan.next()
	if err != nil {
		return nil, err
	}

	p.tok = tok

	return p, nil
}

func (p *parser) advance() error {
	tok, err := p.scan.next()
	if err != nil {
		return err
	}

	p.tok = tok

	return nil
}

func (p *parser) expect(k tokenKind) error {
	if p.tok.kind != k {
		return fmt.Errorf("%w: expected %v, found %v at offset %d", ErrSyntax, k, p.tok.kind, p.tok.off)
	}

	return p.advance()
}

// parse parses a full expression and requires the input to be consumed.
func (p *parser) parse() (node, error) {
	n, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}

	if p.tok.kind != tokEOF {
		return nil, fmt.Errorf("%w: unexpected %v at offset %d", ErrSyntax, p.tok.kind, p.tok.off)
	}

	return n, nil
}

// parseExpr implements precedence climbing over binary operators.
func (p *parser) parseExpr(minPrec int) (node, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		prec := binaryPrec(p.tok.kind)
		if prec == 0 || prec < minPrec {
			return lhs, nil
		}

		op := p.tok.kind
		off := p.tok.off

		if err := p.advance(); err != nil {
			return nil, err
		}

		// Right associativity for power: recurse at the same level.
		next := prec + 1
		if op == tokCaret {
			next = prec
		}

		rhs, err := p.parseExpr(next)
		if err != nil {
			return nil, err
		}

		lhs = binaryNode{off: off, op: op, x: lhs, y: rhs}
	}
}

func (p *parser) parseUnary() (node, error) {
	if p.tok.kind != tokMinus {
		return p.parsePrimary()
	}

	off := p.tok.off

	if err := p.advance(); err != nil {
		return nil, err
	}

	// The operand of unary minus may itself carry a power, so parse at
	// power precedence rather than calling parsePrimary directly.
	x, err := p.parseExpr(precPow)
	if err != nil {
		return nil, err
	}

	return unaryNode{off: off, x: x}, nil
}

func (p *parser) parsePrimary() (node, error) {
	switch p.tok.kind {
	case tokNumber:
		n := numNode{off: p.tok.off, val: p.tok.val}
		if err := p.advance(); err != nil {
			return nil, err
		}

		return n, nil

	case tokIdent:
		off := p.tok.off
		name := p.tok.text

		if err := p.advance(); err != nil {
			return nil, err
		}

		if p.tok.kind != tokLParen {
			return varNode{off: off, name: name}, nil
		}

		return p.parseCall(off, name)

	case tokLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}

		n, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}

		if err := p.expect(tokRParen); err != nil {
			return nil, err
		}

		return n, nil

	case tokMinus:
		return p.parseUnary()

	default:
		return nil, fmt.Errorf("%w: unexpected %v at offset %d", ErrSyntax, p.tok.kind, p.tok.off)
	}
}

func (p *parser) parseCall(off int, name string) (node, error) {
	if err := p.advance(); err != nil { // consume '('
		return nil, err
	}

	var args []node

	if p.tok.kind != tokRParen {
		for {
			arg, err := p.parseExpr(0)
			if err != nil {
				return nil, err
			}

			args = append(args, arg)

			if p.tok.kind != tokComma {
				break
			}

			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}

	if err := p.expect(tokRParen); err != nil {
		return nil, err
	}

	return callNode{off: off, name: name, args: args}, nil
}
