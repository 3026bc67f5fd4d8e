package token

import (
	"strconv"
	"strings"
)

type Kind int

const (
	Number Kind = iota
	SignKind
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "NUMBER"
	case SignKind:
		return "SIGN"
	default:
		return "UNKNOWN"
	}
}

// Token is either a numeric literal or a sign. Only the payload matching Kind is meaningful.
type Token struct {
	Kind   Kind
	Number float64
	Sign   Sign
}

func NewNumber(v float64) Token {
	return Token{Kind: Number, Number: v}
}

func NewSign(s Sign) Token {
	return Token{Kind: SignKind, Sign: s}
}

func (t Token) IsNumber() bool {
	return t.Kind == Number
}

// Is reports whether the token is the given sign.
func (t Token) Is(s Sign) bool {
	return t.Kind == SignKind && t.Sign == s
}

// Equal compares payloads of the same variant; a number never equals a sign.
func (t Token) Equal(other Token) bool {
	if t.Kind != other.Kind {
		return false
	}
	if t.Kind == Number {
		return t.Number == other.Number
	}
	return t.Sign == other.Sign
}

func (t Token) String() string {
	if t.Kind == Number {
		return strconv.FormatFloat(t.Number, 'f', -1, 64)
	}
	return t.Sign.Symbol()
}

// Expression is an ordered token sequence: reading order after lexing,
// evaluation order after conversion to postfix.
type Expression []Token

// String renders the tokens separated by single spaces, e.g. "3 4.8 5 2.7 ^ - +".
func (e Expression) String() string {
	parts := make([]string, len(e))
	for i, t := range e {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}

func (e Expression) Equal(other Expression) bool {
	if len(e) != len(other) {
		return false
	}
	for i := range e {
		if !e[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// Numbers returns the count of numeric tokens.
func (e Expression) Numbers() int {
	n := 0
	for _, t := range e {
		if t.IsNumber() {
			n++
		}
	}
	return n
}

// SignCounts returns how many times each sign occurs.
func (e Expression) SignCounts() map[Sign]int {
	counts := make(map[Sign]int)
	for _, t := range e {
		if t.Kind == SignKind {
			counts[t.Sign]++
		}
	}
	return counts
}
