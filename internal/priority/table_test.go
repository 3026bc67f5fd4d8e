package priority

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DjordjeVuckovic/polish-calc/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	tbl := Default()

	expected := map[token.Sign]uint8{
		token.OpenBracket:  5,
		token.CloseBracket: 5,
		token.UnaryMinus:   4,
		token.Pow:          3,
		token.Div:          2,
		token.Mul:          2,
		token.Add:          1,
		token.Sub:          1,
	}
	assert.Equal(t, expected, tbl.Ranks())
	assert.NoError(t, tbl.Validate())
	assert.Same(t, tbl, Default())
}

func TestTable_RanksIsACopy(t *testing.T) {
	m := Default().Ranks()
	m[token.Add] = 99
	assert.Equal(t, uint8(1), Default().Rank(token.Add))
}

func TestNew(t *testing.T) {
	t.Run("missing sign", func(t *testing.T) {
		_, err := New(map[token.Sign]uint8{token.Add: 1})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "missing priority")
	})

	t.Run("operator not below brackets", func(t *testing.T) {
		ranks := Default().Ranks()
		ranks[token.Pow] = 5
		_, err := New(ranks)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "must be lower than")
	})
}

func TestParse(t *testing.T) {
	t.Run("names and symbols", func(t *testing.T) {
		yml := `
name: flat
priorities:
  mul: 1
  "/": 1
`
		tbl, err := Parse([]byte(yml))
		require.NoError(t, err)
		assert.Equal(t, uint8(1), tbl.Rank(token.Mul))
		assert.Equal(t, uint8(1), tbl.Rank(token.Div))
		assert.Equal(t, uint8(3), tbl.Rank(token.Pow), "unlisted signs keep defaults")
	})

	t.Run("unquoted tilde names unary minus", func(t *testing.T) {
		tbl, err := Parse([]byte("priorities:\n  ~: 1\n  mul: 1\n"))
		require.NoError(t, err)
		assert.Equal(t, uint8(1), tbl.Rank(token.UnaryMinus))
		assert.Equal(t, uint8(1), tbl.Rank(token.Mul))
	})

	t.Run("null key", func(t *testing.T) {
		_, err := Parse([]byte("priorities:\n  null: 1\n"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid sign")
	})

	t.Run("same sign twice", func(t *testing.T) {
		_, err := Parse([]byte("priorities:\n  \"~\": 1\n  unary_minus: 2\n"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "more than once")
	})

	t.Run("rank out of range", func(t *testing.T) {
		_, err := Parse([]byte("priorities:\n  pow: 300\n"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid rank for pow")
	})

	t.Run("not a mapping", func(t *testing.T) {
		_, err := Parse([]byte("priorities: [1, 2]\n"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "must be a mapping")
	})

	t.Run("unknown sign", func(t *testing.T) {
		_, err := Parse([]byte("priorities:\n  modulo: 2\n"))
		assert.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := Parse([]byte("name: nothing\n"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no priorities")
	})

	t.Run("brackets lowered", func(t *testing.T) {
		_, err := Parse([]byte("name: broken\npriorities:\n  open_bracket: 1\n"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "broken")
	})
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "priorities.yaml")
	require.NoError(t, os.WriteFile(path, []byte("priorities:\n  unary_minus: 2\n"), 0644))

	tbl, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, uint8(2), tbl.Rank(token.UnaryMinus))

	_, err = LoadFromFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
