package dto

import (
	"time"

	"github.com/DjordjeVuckovic/polish-calc/internal/calc"
	"github.com/DjordjeVuckovic/polish-calc/internal/domain"
	"github.com/DjordjeVuckovic/polish-calc/internal/token"
	"github.com/google/uuid"
)

// ConvertRequest is the body of POST /api/v1/convert.
// Strict overrides the server default for sign placement checks when set.
type ConvertRequest struct {
	Expression string `json:"expression" example:"3 + (4.8 - 5 ^ 2.7)"`
	Strict     *bool  `json:"strict,omitempty"`
}

// Token is the JSON form of a lexical token: either a number or a sign.
type Token struct {
	Type   string   `json:"type" enums:"number,sign"`
	Number *float64 `json:"number,omitempty"`
	Sign   string   `json:"sign,omitempty" example:"pow"`
	Symbol string   `json:"symbol,omitempty" example:"^"`
}

type ConvertResponse struct {
	ID      *uuid.UUID `json:"id,omitempty" swaggertype:"string" format:"uuid"`
	Input   string     `json:"input" example:"3+(4.8-5^2.7)"`
	Infix   []Token    `json:"infix"`
	Postfix []Token    `json:"postfix"`
	RPN     string     `json:"rpn" example:"3 4.8 5 2.7 ^ - +"`
	Strict  bool       `json:"strict"`
}

type Conversion struct {
	ID        uuid.UUID `json:"id" swaggertype:"string" format:"uuid"`
	Input     string    `json:"input"`
	Infix     string    `json:"infix"`
	RPN       string    `json:"rpn"`
	Strict    bool      `json:"strict"`
	CreatedAt time.Time `json:"created_at"`
}

type HistoryResponse struct {
	Items []Conversion `json:"items"`
	Count int          `json:"count"`
}

func NewConvertResponse(res *calc.Result, strict bool) ConvertResponse {
	return ConvertResponse{
		Input:   res.Input,
		Infix:   NewTokens(res.Infix),
		Postfix: NewTokens(res.Postfix),
		RPN:     res.Postfix.String(),
		Strict:  strict,
	}
}

func NewTokens(expr token.Expression) []Token {
	tokens := make([]Token, len(expr))
	for i, t := range expr {
		if t.IsNumber() {
			v := t.Number
			tokens[i] = Token{Type: "number", Number: &v}
			continue
		}
		tokens[i] = Token{Type: "sign", Sign: t.Sign.String(), Symbol: t.Sign.Symbol()}
	}
	return tokens
}

func NewConversion(c domain.Conversion) Conversion {
	return Conversion{
		ID:        c.ID,
		Input:     c.Input,
		Infix:     c.Infix,
		RPN:       c.Postfix,
		Strict:    c.Strict,
		CreatedAt: c.CreatedAt,
	}
}

func NewHistoryResponse(conversions []domain.Conversion) HistoryResponse {
	items := make([]Conversion, len(conversions))
	for i, c := range conversions {
		items[i] = NewConversion(c)
	}
	return HistoryResponse{Items: items, Count: len(items)}
}
