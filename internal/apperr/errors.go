package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies why a conversion attempt failed.
type Kind int

const (
	Unknown Kind = iota
	InvalidCharacter
	MalformedNumber
	UnbalancedParentheses
	EmptyInput
	IOError
	InvalidSyntax
)

func (k Kind) String() string {
	switch k {
	case InvalidCharacter:
		return "InvalidCharacter"
	case MalformedNumber:
		return "MalformedNumber"
	case UnbalancedParentheses:
		return "UnbalancedParentheses"
	case EmptyInput:
		return "EmptyInput"
	case IOError:
		return "IOError"
	case InvalidSyntax:
		return "InvalidSyntax"
	default:
		return "Unknown"
	}
}

// ParseKind is the inverse of Kind.String. Unrecognized names map to Unknown.
func ParseKind(s string) Kind {
	for k := InvalidCharacter; k <= InvalidSyntax; k++ {
		if k.String() == s {
			return k
		}
	}
	return Unknown
}

// Sentinels for errors.Is; matching is by kind only.
var (
	ErrInvalidCharacter      = &Error{Kind: InvalidCharacter}
	ErrMalformedNumber       = &Error{Kind: MalformedNumber}
	ErrUnbalancedParentheses = &Error{Kind: UnbalancedParentheses}
	ErrEmptyInput            = &Error{Kind: EmptyInput}
	ErrIO                    = &Error{Kind: IOError}
	ErrInvalidSyntax         = &Error{Kind: InvalidSyntax}
)

// Error is the single error type surfaced by the lexer, the transformer and input acquisition.
// Pos is the zero-based character or token index the error refers to, -1 when not applicable.
type Error struct {
	Kind    Kind
	Message string
	Pos     int
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Pos >= 0 && e.Message != "" {
		msg = fmt.Sprintf("%s at position %d", msg, e.Pos)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func New(kind Kind, msg string, pos int) *Error {
	return &Error{Kind: kind, Message: msg, Pos: pos}
}

func Wrap(kind Kind, msg string, pos int, err error) *Error {
	return &Error{Kind: kind, Message: msg, Pos: pos, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or Unknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}
