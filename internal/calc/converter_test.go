package calc

import (
	"testing"

	"github.com/DjordjeVuckovic/polish-calc/internal/apperr"
	"github.com/DjordjeVuckovic/polish-calc/internal/priority"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	c := NewConverter()

	res, err := c.Convert("3+(4.8-5^2.7)")
	require.NoError(t, err)
	assert.Equal(t, "3+(4.8-5^2.7)", res.Input)
	assert.Equal(t, "3 + ( 4.8 - 5 ^ 2.7 )", res.Infix.String())
	assert.Equal(t, "3 4.8 5 2.7 ^ - +", res.Postfix.String())
}

func TestConverter_ErrorKinds(t *testing.T) {
	tests := []struct {
		input string
		kind  apperr.Kind
	}{
		{input: "1x2", kind: apperr.InvalidCharacter},
		{input: "1..2", kind: apperr.MalformedNumber},
		{input: "(1+2", kind: apperr.UnbalancedParentheses},
		{input: "1+2)", kind: apperr.UnbalancedParentheses},
	}

	c := NewConverter()
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res, err := c.Convert(tt.input)
			assert.Nil(t, res)
			assert.Equal(t, tt.kind, apperr.KindOf(err))
		})
	}
}

func TestConverter_Strict(t *testing.T) {
	lenient := NewConverter()
	res, err := lenient.Convert("3+*2")
	require.NoError(t, err)
	assert.Equal(t, "3 2 * +", res.Postfix.String())

	strict := NewConverter(WithStrict(true))
	assert.True(t, strict.Strict())
	_, err = strict.Convert("3+*2")
	assert.ErrorIs(t, err, apperr.ErrInvalidSyntax)

	_, err = lenient.ConvertStrict("3+*2", true)
	assert.ErrorIs(t, err, apperr.ErrInvalidSyntax)

	_, err = strict.ConvertStrict("3+*2", false)
	assert.NoError(t, err)
}

func TestConverter_WithPriorities(t *testing.T) {
	tbl, err := priority.Parse([]byte("priorities:\n  add: 2\n"))
	require.NoError(t, err)

	res, err := NewConverter(WithPriorities(tbl)).Convert("1+2*3")
	require.NoError(t, err)
	assert.Equal(t, "1 2 + 3 *", res.Postfix.String())
}
