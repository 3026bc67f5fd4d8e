package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// StatusCode maps an error kind to the HTTP status the API answers with.
func StatusCode(kind Kind) int {
	switch kind {
	case InvalidCharacter, MalformedNumber, UnbalancedParentheses, EmptyInput:
		return http.StatusBadRequest
	case InvalidSyntax:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ae *Error
		if errors.As(err, &ae) && ae.Kind != IOError && ae.Kind != Unknown {
			body := map[string]any{"error": ae.Error(), "kind": ae.Kind.String()}
			if ae.Pos >= 0 {
				body["position"] = ae.Pos
			}
			_ = c.JSON(StatusCode(ae.Kind), body)
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			_ = c.JSON(he.Code, map[string]string{"error": msg})
			return
		}

		slog.Error("Unhandled error", "error", err)
		_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}
