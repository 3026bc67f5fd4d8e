package postfix

import (
	"sync"
	"testing"

	"github.com/DjordjeVuckovic/polish-calc/internal/apperr"
	"github.com/DjordjeVuckovic/polish-calc/internal/lexer"
	"github.com/DjordjeVuckovic/polish-calc/internal/priority"
	"github.com/DjordjeVuckovic/polish-calc/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func num(v float64) token.Token { return token.NewNumber(v) }

func sign(s token.Sign) token.Token { return token.NewSign(s) }

func lex(t *testing.T, input string) token.Expression {
	t.Helper()
	expr, err := lexer.New().Tokenize(input)
	require.NoError(t, err)
	return expr
}

func TestTransformer_Convert(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected token.Expression
	}{
		{
			name:     "brackets override precedence",
			input:    "3+(4.8-5^2.7)",
			expected: token.Expression{num(3), num(4.8), num(5), num(2.7), sign(token.Pow), sign(token.Sub), sign(token.Add)},
		},
		{
			name:     "unary minus binds tighter than add",
			input:    "~4+5",
			expected: token.Expression{num(4), sign(token.UnaryMinus), num(5), sign(token.Add)},
		},
		{
			name:     "subtraction is left associative",
			input:    "10-4-3",
			expected: token.Expression{num(10), num(4), sign(token.Sub), num(3), sign(token.Sub)},
		},
		{
			name:     "pow is left associative too",
			input:    "2^3^2",
			expected: token.Expression{num(2), num(3), sign(token.Pow), num(2), sign(token.Pow)},
		},
		{
			name:     "mul before add",
			input:    "1+2*3",
			expected: token.Expression{num(1), num(2), num(3), sign(token.Mul), sign(token.Add)},
		},
		{
			name:     "mul then add pops on equal or lower",
			input:    "1*2+3",
			expected: token.Expression{num(1), num(2), sign(token.Mul), num(3), sign(token.Add)},
		},
		{
			name:     "nested brackets",
			input:    "((1+2)*(3-4))/5",
			expected: token.Expression{num(1), num(2), sign(token.Add), num(3), num(4), sign(token.Sub), sign(token.Mul), num(5), sign(token.Div)},
		},
		{
			name:  "mixed expression",
			input: "~4+(5-5^7)*3-5.8+16*2*~3",
			expected: token.Expression{
				num(4), sign(token.UnaryMinus),
				num(5), num(5), num(7), sign(token.Pow), sign(token.Sub),
				num(3), sign(token.Mul), sign(token.Add),
				num(5.8), sign(token.Sub),
				num(16), num(2), sign(token.Mul),
				num(3), sign(token.UnaryMinus), sign(token.Mul), sign(token.Add),
			},
		},
		{
			name:     "adjacent operators pass through",
			input:    "3+*2",
			expected: token.Expression{num(3), num(2), sign(token.Mul), sign(token.Add)},
		},
		{
			name:     "single number",
			input:    "42",
			expected: token.Expression{num(42)},
		},
	}

	tr := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tr.Convert(lex(t, tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got, "got %s", got)
		})
	}
}

func TestTransformer_Convert_EmptyInput(t *testing.T) {
	tr := New(nil)

	_, err := tr.Convert(nil)
	assert.ErrorIs(t, err, apperr.ErrEmptyInput)

	got, err := tr.Convert(token.Expression{})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTransformer_Convert_UnbalancedParentheses(t *testing.T) {
	tests := []struct {
		name  string
		input string
		pos   int
	}{
		{name: "missing close bracket", input: "(1+2", pos: 0},
		{name: "inner open bracket never closed", input: "1*(2+(3-4)", pos: 2},
		{name: "stray close bracket", input: "1+2)", pos: 3},
		{name: "close before open", input: ")1+2(", pos: 0},
		{name: "one close too many", input: "(1+2))*3", pos: 5},
	}

	tr := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tr.Convert(lex(t, tt.input))
			require.Error(t, err)
			assert.Nil(t, got)

			assert.ErrorIs(t, err, apperr.ErrUnbalancedParentheses)
			assert.Equal(t, tt.pos, err.(*apperr.Error).Pos)
		})
	}
}

func TestTransformer_Convert_PreservesOperandsAndOperators(t *testing.T) {
	inputs := []string{
		"(1+2)*(3-4)",
		"((5^2)/(~3))",
		"(((7)))",
		"(1.5*(2.5-(3.5/4.5)))^2",
	}

	tr := New(nil)
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			infix := lex(t, input)
			out, err := tr.Convert(infix)
			require.NoError(t, err)

			assert.Equal(t, infix.Numbers(), out.Numbers())

			want := infix.SignCounts()
			assert.Equal(t, want[token.OpenBracket], want[token.CloseBracket])
			delete(want, token.OpenBracket)
			delete(want, token.CloseBracket)
			assert.Equal(t, want, out.SignCounts())
		})
	}
}

func TestTransformer_Convert_NumbersOnlyIsNoop(t *testing.T) {
	tr := New(nil)
	expr := token.Expression{num(1), num(2.5), num(3)}

	out, err := tr.Convert(expr)
	require.NoError(t, err)
	assert.Equal(t, expr, out)

	again, err := tr.Convert(out)
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestTransformer_Convert_CustomPriorities(t *testing.T) {
	ranks := priority.Default().Ranks()
	ranks[token.Mul] = 1
	ranks[token.Div] = 1
	flat, err := priority.New(ranks)
	require.NoError(t, err)

	got, err := New(flat).Convert(lex(t, "1+2*3"))
	require.NoError(t, err)
	assert.Equal(t, "1 2 + 3 *", got.String())
}

func TestTransformer_Convert_Concurrent(t *testing.T) {
	tr := New(nil)
	infix := lex(t, "3+(4.8-5^2.7)")

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out, err := tr.Convert(infix)
			if err == nil {
				results[i] = out.String()
			}
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, "3 4.8 5 2.7 ^ - +", r)
	}
}
