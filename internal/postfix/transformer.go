package postfix

import (
	"github.com/DjordjeVuckovic/polish-calc/internal/apperr"
	"github.com/DjordjeVuckovic/polish-calc/internal/priority"
	"github.com/DjordjeVuckovic/polish-calc/internal/token"
)

// Transformer reorders an infix expression into Reverse Polish Notation with the
// shunting-yard algorithm. Operators of equal rank group to the left, Pow included.
type Transformer struct {
	priorities *priority.Table
}

// New creates a Transformer. A nil table selects priority.Default.
func New(priorities *priority.Table) *Transformer {
	if priorities == nil {
		priorities = priority.Default()
	}
	return &Transformer{priorities: priorities}
}

func (t *Transformer) Priorities() *priority.Table {
	return t.priorities
}

// Convert returns the postfix form of expr.
//
// A nil expr means nothing was supplied and fails with EmptyInput; an empty,
// non-nil expr converts to an empty result. Any bracket left unmatched, on
// either side, fails with UnbalancedParentheses.
func (t *Transformer) Convert(expr token.Expression) (token.Expression, error) {
	if expr == nil {
		return nil, apperr.New(apperr.EmptyInput, "no expression to convert", -1)
	}

	out := make(token.Expression, 0, len(expr))
	var stack operatorStack

	for i, tok := range expr {
		if tok.IsNumber() {
			out = append(out, tok)
			continue
		}

		switch tok.Sign {
		case token.OpenBracket:
			stack.push(tok.Sign, i)
		case token.CloseBracket:
			for {
				top, ok := stack.pop()
				if !ok {
					return nil, apperr.New(apperr.UnbalancedParentheses, "closing bracket without matching opening bracket", i)
				}
				if top.sign == token.OpenBracket {
					break
				}
				out = append(out, token.NewSign(top.sign))
			}
		default:
			rank := t.priorities.Rank(tok.Sign)
			for {
				top, ok := stack.peek()
				if !ok || top.sign == token.OpenBracket || t.priorities.Rank(top.sign) < rank {
					break
				}
				stack.pop()
				out = append(out, token.NewSign(top.sign))
			}
			stack.push(tok.Sign, i)
		}
	}

	for {
		top, ok := stack.pop()
		if !ok {
			break
		}
		switch top.sign {
		case token.CloseBracket:
		case token.OpenBracket:
			return nil, apperr.New(apperr.UnbalancedParentheses, "opening bracket is never closed", top.pos)
		default:
			out = append(out, token.NewSign(top.sign))
		}
	}

	return out, nil
}
