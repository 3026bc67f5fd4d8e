package token

import (
	"fmt"
	"strings"
)

// Sign is a structural symbol of an arithmetic expression: an operator or a bracket.
//
// Usage:
//
//	tok := token.NewSign(token.Pow)  // 2^3
//	tok := token.NewSign(token.UnaryMinus)  // ~4
type Sign uint8

const (
	Add Sign = iota
	Sub
	Mul
	Div
	Pow
	OpenBracket
	CloseBracket

	// UnaryMinus is written as '~' in the source text; the lexer never infers it from '-'.
	UnaryMinus
)

// SignCount is the number of distinct signs. Tables indexed by Sign use it as their length.
const SignCount = int(UnaryMinus) + 1

var signNames = [SignCount]string{
	Add:          "add",
	Sub:          "sub",
	Mul:          "mul",
	Div:          "div",
	Pow:          "pow",
	OpenBracket:  "open_bracket",
	CloseBracket: "close_bracket",
	UnaryMinus:   "unary_minus",
}

var signSymbols = [SignCount]rune{
	Add:          '+',
	Sub:          '-',
	Mul:          '*',
	Div:          '/',
	Pow:          '^',
	OpenBracket:  '(',
	CloseBracket: ')',
	UnaryMinus:   '~',
}

// Signs returns every sign in declaration order.
func Signs() []Sign {
	signs := make([]Sign, SignCount)
	for i := range signs {
		signs[i] = Sign(i)
	}
	return signs
}

// ParseSign maps a source character to its sign. The second result is false
// for any character that is not a sign, digits included.
func ParseSign(ch rune) (Sign, bool) {
	for i, sym := range signSymbols {
		if sym == ch {
			return Sign(i), true
		}
	}
	return 0, false
}

// Parse accepts either a sign name ("pow", "open_bracket") or its symbol ("^", "(").
func Parse(s string) (Sign, error) {
	trimmed := strings.TrimSpace(s)
	if r := []rune(trimmed); len(r) == 1 {
		if sign, ok := ParseSign(r[0]); ok {
			return sign, nil
		}
	}

	name := strings.ToLower(trimmed)
	for i, n := range signNames {
		if n == name {
			return Sign(i), nil
		}
	}
	return 0, fmt.Errorf("invalid sign: %q", s)
}

func (s Sign) Valid() bool {
	return int(s) < SignCount
}

// String returns the name of the sign.
func (s Sign) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Sign(%d)", s)
	}
	return signNames[s]
}

// Symbol returns the character the sign is written as.
func (s Sign) Symbol() string {
	if !s.Valid() {
		return "?"
	}
	return string(signSymbols[s])
}

// IsBracket returns true for OpenBracket and CloseBracket
func (s Sign) IsBracket() bool {
	return s == OpenBracket || s == CloseBracket
}

// IsBinary returns true for the two-operand operators
func (s Sign) IsBinary() bool {
	switch s {
	case Add, Sub, Mul, Div, Pow:
		return true
	default:
		return false
	}
}

// MarshalText implements encoding.TextMarshaler for JSON and YAML serialization
func (s Sign) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid sign: %d", s)
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for JSON and YAML deserialization
func (s *Sign) UnmarshalText(text []byte) error {
	sign, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = sign
	return nil
}
