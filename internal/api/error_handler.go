package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/flowsmith/graphstore/internal/core/domain"
)

// errorEnvelope mirrors the success envelope with status "error" and a
// machine-readable error_code.
type errorEnvelope struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	ErrorCode string `json:"error_code"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to deterministic HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the uniform envelope {"status": "error", "message": ..., "error_code": ...}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg, errCode := resolveError(err, log, c)
		_ = c.JSON(code, errorEnvelope{Status: "error", Message: msg, ErrorCode: errCode})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, string) {
	// Echo's own errors (bind failures, 404 from router, auth middleware).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message), httpErrorCode(he.Code)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusBadRequest, "username already taken", "user_exists"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found", "user_not_found"
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, "product not found", "product_not_found"
	case errors.Is(err, domain.ErrGraphNotFound):
		return http.StatusNotFound, "graph not found", "graph_not_found"
	case errors.Is(err, domain.ErrEmptyUpdate):
		return http.StatusBadRequest, "no fields to update", "empty_update"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials", "invalid_credentials"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden", "forbidden"
	case errors.Is(err, domain.ErrGenerationFailed):
		return http.StatusBadGateway, "code generation failed", "generation_failed"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error", "internal_error"
}

func httpErrorCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad_request"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusMethodNotAllowed:
		return "method_not_allowed"
	default:
		return "http_error"
	}
}
