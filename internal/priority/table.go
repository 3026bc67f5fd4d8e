package priority

import (
	"fmt"

	"github.com/DjordjeVuckovic/polish-calc/internal/token"
)

// Table maps every sign to its rank. A higher rank binds tighter.
// Brackets carry the highest rank so the precedence loop never pops them;
// only a closing bracket does.
type Table struct {
	ranks [token.SignCount]uint8
}

var defaultTable = &Table{
	ranks: [token.SignCount]uint8{
		token.OpenBracket:  5,
		token.CloseBracket: 5,
		token.UnaryMinus:   4,
		token.Pow:          3,
		token.Div:          2,
		token.Mul:          2,
		token.Add:          1,
		token.Sub:          1,
	},
}

// Default returns the shared standard table. Tables are immutable, so sharing is safe.
func Default() *Table {
	return defaultTable
}

// New builds a table from explicit ranks. Every sign must be present.
func New(ranks map[token.Sign]uint8) (*Table, error) {
	t := &Table{}
	for _, s := range token.Signs() {
		r, ok := ranks[s]
		if !ok {
			return nil, fmt.Errorf("missing priority for sign %s", s)
		}
		t.ranks[s] = r
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Rank returns the priority of s.
func (t *Table) Rank(s token.Sign) uint8 {
	return t.ranks[s]
}

// Ranks returns a copy of the table as a map.
func (t *Table) Ranks() map[token.Sign]uint8 {
	m := make(map[token.Sign]uint8, token.SignCount)
	for _, s := range token.Signs() {
		m[s] = t.ranks[s]
	}
	return m
}

// Validate ensures both brackets outrank every operator.
func (t *Table) Validate() error {
	for _, s := range token.Signs() {
		if s.IsBracket() {
			continue
		}
		for _, br := range []token.Sign{token.OpenBracket, token.CloseBracket} {
			if t.ranks[s] >= t.ranks[br] {
				return fmt.Errorf("priority of %s (%d) must be lower than %s (%d)", s, t.ranks[s], br, t.ranks[br])
			}
		}
	}
	return nil
}
