package input

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode"

	"github.com/DjordjeVuckovic/polish-calc/internal/apperr"
)

// StripWhitespace removes every whitespace character from s.
func StripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// FromArgs joins process arguments into one expression, so `rpn 1 + 2` works unquoted.
func FromArgs(args []string) string {
	return StripWhitespace(strings.Join(args, ""))
}

// FromReader reads a single line. A final line without a newline is accepted.
func FromReader(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", apperr.Wrap(apperr.IOError, "failed to read expression", -1, err)
	}
	return StripWhitespace(line), nil
}

// Acquire prefers arguments and falls back to one line of stdin.
func Acquire(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return FromArgs(args), nil
	}
	return FromReader(stdin)
}
