package lexer

import (
	"fmt"

	"github.com/DjordjeVuckovic/polish-calc/internal/apperr"
	"github.com/DjordjeVuckovic/polish-calc/internal/token"
)

// Validate checks sign placement of a lexed expression. It is opt-in: Tokenize never calls it.
// Bracket balance is left to the postfix transformer.
func (l *Lexer) Validate(expr token.Expression) error {
	if expr.Numbers() == 0 {
		return apperr.New(apperr.InvalidSyntax, "expression must contain at least one number", -1)
	}

	for i, tok := range expr {
		var prev *token.Token
		if i > 0 {
			prev = &expr[i-1]
		}
		last := i == len(expr)-1

		switch {
		case tok.IsNumber():
			if prev != nil && (prev.IsNumber() || prev.Is(token.CloseBracket)) {
				return syntaxErr(i, "unexpected number %s", tok)
			}
		case tok.Is(token.OpenBracket):
			if prev != nil && (prev.IsNumber() || prev.Is(token.CloseBracket)) {
				return syntaxErr(i, "unexpected opening bracket")
			}
			if !last && expr[i+1].Is(token.CloseBracket) {
				return syntaxErr(i, "empty brackets")
			}
		case tok.Is(token.CloseBracket):
			if prev == nil || !(prev.IsNumber() || prev.Is(token.CloseBracket)) {
				return syntaxErr(i, "unexpected closing bracket")
			}
		case tok.Is(token.UnaryMinus):
			if prev != nil && (prev.IsNumber() || prev.Is(token.CloseBracket)) {
				return syntaxErr(i, "unexpected unary minus, use '-' for subtraction")
			}
			if last {
				return syntaxErr(i, "expression cannot end with unary minus")
			}
		default:
			if prev == nil {
				return syntaxErr(i, "expression cannot start with %s", tok)
			}
			if !prev.IsNumber() && !prev.Is(token.CloseBracket) {
				return syntaxErr(i, "unexpected %s operator", tok)
			}
			if last {
				return syntaxErr(i, "expression cannot end with %s", tok)
			}
		}
	}

	return nil
}

func syntaxErr(pos int, format string, args ...any) error {
	return apperr.New(apperr.InvalidSyntax, fmt.Sprintf(format, args...), pos)
}
