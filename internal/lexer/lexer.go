package lexer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/polish-calc/internal/apperr"
	"github.com/DjordjeVuckovic/polish-calc/internal/token"
)

// Lexer splits a whitespace-free arithmetic expression into numbers and signs.
// It holds no state between calls and may be shared between goroutines.
type Lexer struct{}

func New() *Lexer {
	return &Lexer{}
}

// Tokenize converts the input string into an Expression.
// Example: Input: `3+(4.8-5^2.7)` -> 3 + ( 4.8 - 5 ^ 2.7 )
//
// Sign placement is not checked here, `3+*2` lexes fine; see Validate.
//
// Numerals are float64. A literal too large to represent (over ~1.8e308) is
// MalformedNumber rather than +Inf, since Inf has no JSON encoding.
func (l *Lexer) Tokenize(input string) (token.Expression, error) {
	s := &scanner{input: []rune(input)}
	return s.scan()
}

type scanner struct {
	input    []rune
	pos      int
	numeral  strings.Builder
	numStart int
}

func (s *scanner) scan() (token.Expression, error) {
	tokens := make(token.Expression, 0, len(s.input))

	for ; s.pos < len(s.input); s.pos++ {
		ch := s.input[s.pos]

		switch sign, ok := token.ParseSign(ch); {
		case ok:
			if s.numeral.Len() > 0 {
				num, err := s.flush()
				if err != nil {
					return nil, err
				}
				tokens = append(tokens, num)
			}
			tokens = append(tokens, token.NewSign(sign))
		case isNumeralChar(ch):
			if s.numeral.Len() == 0 {
				s.numStart = s.pos
			}
			s.numeral.WriteRune(ch)
		default:
			return nil, apperr.New(apperr.InvalidCharacter, fmt.Sprintf("invalid character %q", ch), s.pos)
		}
	}

	if s.numeral.Len() > 0 {
		num, err := s.flush()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, num)
	}

	return tokens, nil
}

func (s *scanner) flush() (token.Token, error) {
	text := s.numeral.String()
	s.numeral.Reset()

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return token.Token{}, apperr.Wrap(apperr.MalformedNumber, fmt.Sprintf("malformed number %q", text), s.numStart, err)
	}
	return token.NewNumber(v), nil
}

func isNumeralChar(ch rune) bool {
	return (ch >= '0' && ch <= '9') || ch == '.'
}
