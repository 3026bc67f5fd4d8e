package domain

import (
	"time"

	"github.com/DjordjeVuckovic/polish-calc/internal/calc"
	"github.com/google/uuid"
)

// Conversion is a persisted infix-to-postfix conversion.
type Conversion struct {
	ID        uuid.UUID `json:"id"`
	Input     string    `json:"input"`
	Infix     string    `json:"infix"`
	Postfix   string    `json:"postfix"`
	Strict    bool      `json:"strict"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewConversion(res *calc.Result, strict bool) Conversion {
	return Conversion{
		ID:        uuid.New(),
		Input:     res.Input,
		Infix:     res.Infix.String(),
		Postfix:   res.Postfix.String(),
		Strict:    strict,
		CreatedAt: time.Now().UTC(),
	}
}
