package token

// Tokenizer turns whitespace-free source text into an expression.
type Tokenizer interface {
	Tokenize(input string) (Expression, error)
}

type Validator interface {
	Validate(expr Expression) error
}
