package calc

import (
	"log/slog"

	"github.com/DjordjeVuckovic/polish-calc/internal/lexer"
	"github.com/DjordjeVuckovic/polish-calc/internal/postfix"
	"github.com/DjordjeVuckovic/polish-calc/internal/priority"
	"github.com/DjordjeVuckovic/polish-calc/internal/token"
)

// Result holds both stages of a successful conversion.
type Result struct {
	Input   string
	Infix   token.Expression
	Postfix token.Expression
}

// Converter runs lexer, optional syntax validation and the postfix transformer in sequence.
type Converter struct {
	tokenizer   token.Tokenizer
	validator   token.Validator
	transformer *postfix.Transformer
	strict      bool
}

type Option func(*Converter)

// WithStrict enables the sign placement check between lexing and conversion.
func WithStrict(strict bool) Option {
	return func(c *Converter) {
		c.strict = strict
	}
}

func WithPriorities(t *priority.Table) Option {
	return func(c *Converter) {
		c.transformer = postfix.New(t)
	}
}

func NewConverter(opts ...Option) *Converter {
	lx := lexer.New()
	c := &Converter{
		tokenizer:   lx,
		validator:   lx,
		transformer: postfix.New(priority.Default()),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Converter) Strict() bool {
	return c.strict
}

// Convert expects input without whitespace; see input.StripWhitespace.
func (c *Converter) Convert(input string) (*Result, error) {
	return c.convert(input, c.strict)
}

// ConvertStrict overrides the configured strictness for a single call.
func (c *Converter) ConvertStrict(input string, strict bool) (*Result, error) {
	return c.convert(input, strict)
}

func (c *Converter) convert(input string, strict bool) (*Result, error) {
	infix, err := c.tokenizer.Tokenize(input)
	if err != nil {
		slog.Debug("tokenize failed", "input", input, "error", err)
		return nil, err
	}

	if strict {
		if err := c.validator.Validate(infix); err != nil {
			slog.Debug("validation failed", "input", input, "error", err)
			return nil, err
		}
	}

	out, err := c.transformer.Convert(infix)
	if err != nil {
		slog.Debug("postfix conversion failed", "input", input, "error", err)
		return nil, err
	}

	slog.Debug("expression converted", "input", input, "tokens", len(infix), "postfix", out.String())
	return &Result{Input: input, Infix: infix, Postfix: out}, nil
}
