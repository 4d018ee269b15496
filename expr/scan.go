package expr

import (
	"fmt"
	"strconv"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokCaret
	tokLParen
	tokRParen
	tokComma
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokNumber:
		return "number"
	case tokIdent:
		return "identifier"
	case tokPlus:
		return "'+'"
	case tokMinus:
		return "'-'"
	case tokStar:
		return "'*'"
	case tokSlash:
		return "'/'"
	case tokCaret:
		return "'^'"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	case tokComma:
		return "','"
	default:
		return "unknown token"
	}
}

type token struct {
	kind tokenKind
	off  int     // byte offset in the source
	text string  // literal text for idents
	val  float64 // parsed value for numbers
}

type scanner struct {
	src string
	pos int
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool { return isIdentStart(c) || isDigit(c) }

func (s *scanner) skipSpace() {
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case ' ', '\t', '\n', '\r':
			s.pos++
		default:
			return
		}
	}
}

// next returns the next token from the source.
func (s *scanner) next() (token, error) {
	s.skipSpace()

	if s.pos >= len(s.src) {
		return token{kind: tokEOF, off: s.pos}, nil
	}

	off := s.pos
	c := s.src[s.pos]

	switch c {
	case '+':
		s.pos++
		return token{kind: tokPlus, off: off}, nil
	case '-':
		s.pos++
		return token{kind: tokMinus, off: off}, nil
	case '*':
		s.pos++
		return token{kind: tokStar, off: off}, nil
	case '/':
		s.pos++
		return token{kind: tokSlash, off: off}, nil
	case '^':
		s.pos++
		return token{kind: tokCaret, off: off}, nil
	case '(':
		s.pos++
		return token{kind: tokLParen, off: off}, nil
	case ')':
		s.pos++
		return token{kind: tokRParen, off: off}, nil
	case ',':
		s.pos++
		return token{kind: tokComma, off: off}, nil
	}

	if isDigit(c) || c == '.' {
		return s.scanNumber()
	}

	if isIdentStart(c) {
		for s.pos < len(s.src) && isIdentPart(s.src[s.pos]) {
			s.pos++
		}

		return token{kind: tokIdent, off: off, text: s.src[off:s.pos]}, nil
	}

	return token{}, fmt.Errorf("%w: unexpected character %q at offset %d", ErrSyntax, c, off)
}

// scanNumber scans a decimal literal with optional fraction and exponent.
func (s *scanner) scanNumber() (token, error) {
	off := s.pos

	for s.pos < len(s.src) && isDigit(s.src[s.pos]) {
		s.pos++
	}

	if s.pos < len(s.src) && s.src[s.pos] == '.' {
		s.pos++
		for s.pos < len(s.src) && isDigit(s.src[s.pos]) {
			s.pos++
		}
	}

	if s.pos < len(s.src) && (s.src[s.pos] == 'e' || s.src[s.pos] == 'E') {
		s.pos++
		if s.pos < len(s.src) && (s.src[s.pos] == '+' || s.src[s.pos] == '-') {
			s.pos++
		}

		for s.pos < len(s.src) && isDigit(s.src[s.pos]) {
			s.pos++
		}
	}

	lit := s.src[off:s.pos]

	val, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return token{}, fmt.Errorf("%w: bad number %q at offset %d", ErrSyntax, lit, off)
	}

	return token{kind: tokNumber, off: off, val: val}, nil
}
