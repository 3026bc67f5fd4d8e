package lexer

import (
	"testing"

	"github.com/DjordjeVuckovic/polish-calc/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexer_Validate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "simple", input: "1+2"},
		{name: "nested brackets", input: "3+(4.8-5^2.7)"},
		{name: "unary minus at start", input: "~4+5"},
		{name: "unary minus after bracket", input: "2*(~3)"},
		{name: "double unary minus", input: "~~3"},
		{name: "unary minus before bracket", input: "~(1+2)"},
		{name: "single number", input: "42"},
		{name: "operator adjacency", input: "3+*2", wantErr: "unexpected * operator"},
		{name: "leading binary operator", input: "++5", wantErr: "cannot start with +"},
		{name: "trailing operator", input: "1+", wantErr: "cannot end with +"},
		{name: "trailing unary minus", input: "1+~", wantErr: "cannot end with unary minus"},
		{name: "unary minus after number", input: "2~3", wantErr: "unexpected unary minus"},
		{name: "empty brackets", input: "1+()", wantErr: "empty brackets"},
		{name: "implicit multiplication", input: "2(3)", wantErr: "unexpected opening bracket"},
		{name: "number after close bracket", input: "(1)2", wantErr: "unexpected number 2"},
		{name: "close bracket after operator", input: "(1+)", wantErr: "unexpected closing bracket"},
		{name: "operator after open bracket", input: "(*2)", wantErr: "unexpected * operator"},
		{name: "empty expression", input: "", wantErr: "at least one number"},
		{name: "signs only", input: "(~)", wantErr: "at least one number"},
	}

	lx := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := lx.Tokenize(tt.input)
			require.NoError(t, err)

			err = lx.Validate(expr)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, apperr.ErrInvalidSyntax)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLexer_Validate_LeavesBracketBalanceAlone(t *testing.T) {
	lx := New()
	expr, err := lx.Tokenize("(1+2")
	require.NoError(t, err)
	assert.NoError(t, lx.Validate(expr))
}
