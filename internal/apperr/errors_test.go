package apperr_test

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/DjordjeVuckovic/polish-calc/internal/apperr"
)

func TestNew(t *testing.T) {
	err := apperr.New(apperr.InvalidCharacter, `invalid character 'x'`, 1)

	if err.Error() != `invalid character 'x' at position 1` {
		t.Errorf("unexpected message %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Errorf("expected nil unwrap, got %v", err.Unwrap())
	}
}

func TestWrap(t *testing.T) {
	_, inner := strconv.ParseFloat("1.2.3", 64)
	err := apperr.Wrap(apperr.MalformedNumber, `malformed number "1.2.3"`, -1, inner)

	want := `malformed number "1.2.3": ` + inner.Error()
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to return inner error")
	}
}

func TestError_NoMessageFallsBackToKind(t *testing.T) {
	err := &apperr.Error{Kind: apperr.EmptyInput, Pos: -1}
	if err.Error() != "EmptyInput" {
		t.Errorf("expected 'EmptyInput', got %q", err.Error())
	}
}

func TestError_IsMatchesKindThroughWrapping(t *testing.T) {
	original := apperr.New(apperr.UnbalancedParentheses, "unmatched closing bracket", 4)

	wrapped := fmt.Errorf("convert: %w", original)
	doubleWrapped := fmt.Errorf("api: %w", wrapped)

	if !errors.Is(doubleWrapped, apperr.ErrUnbalancedParentheses) {
		t.Fatal("errors.Is should match the kind through double wrapping")
	}
	if errors.Is(doubleWrapped, apperr.ErrEmptyInput) {
		t.Fatal("errors.Is must not match a different kind")
	}
	if apperr.KindOf(doubleWrapped) != apperr.UnbalancedParentheses {
		t.Errorf("expected UnbalancedParentheses, got %v", apperr.KindOf(doubleWrapped))
	}
}

func TestKindOf_PlainErrors(t *testing.T) {
	plain := fmt.Errorf("database connection failed")
	if apperr.KindOf(plain) != apperr.Unknown {
		t.Fatal("plain errors should have Unknown kind")
	}
}

func TestParseKind(t *testing.T) {
	for k := apperr.InvalidCharacter; k <= apperr.InvalidSyntax; k++ {
		if got := apperr.ParseKind(k.String()); got != k {
			t.Errorf("ParseKind(%q) = %v, want %v", k.String(), got, k)
		}
	}
	if apperr.ParseKind("nope") != apperr.Unknown {
		t.Error("expected Unknown for unrecognized name")
	}
}
