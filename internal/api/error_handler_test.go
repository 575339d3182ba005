package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/flowsmith/graphstore/internal/core/domain"
)

func invokeErrorHandler(t *testing.T, err error) (int, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec.Code, body
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		errCode string
	}{
		{"user exists", domain.ErrUserExists, http.StatusBadRequest, "user_exists"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "user_not_found"},
		{"product not found", domain.ErrProductNotFound, http.StatusNotFound, "product_not_found"},
		{"graph not found", domain.ErrGraphNotFound, http.StatusNotFound, "graph_not_found"},
		{"empty update", domain.ErrEmptyUpdate, http.StatusBadRequest, "empty_update"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials"},
		{"generation failed", domain.ErrGenerationFailed, http.StatusBadGateway, "generation_failed"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, body := invokeErrorHandler(t, tc.err)
			if code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, code)
			}
			if body["status"] != "error" {
				t.Fatalf("expected error status, got %v", body["status"])
			}
			if body["error_code"] != tc.errCode {
				t.Fatalf("expected error_code %s, got %v", tc.errCode, body["error_code"])
			}
		})
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("update user"), domain.ErrUserNotFound)
	code, body := invokeErrorHandler(t, wrapped)
	if code != http.StatusNotFound {
		t.Fatalf("expected 404 for wrapped error, got %d", code)
	}
	if body["error_code"] != "user_not_found" {
		t.Fatalf("unexpected error_code: %v", body["error_code"])
	}
}

func TestErrorHandler_UnknownError(t *testing.T) {
	code, body := invokeErrorHandler(t, errors.New("socket closed unexpectedly"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if body["message"] != "internal server error" {
		t.Fatalf("internal detail leaked: %v", body["message"])
	}
	if body["error_code"] != "internal_error" {
		t.Fatalf("unexpected error_code: %v", body["error_code"])
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, body := invokeErrorHandler(t, echo.NewHTTPError(http.StatusNotFound, "route not found"))
	if code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
	if body["error_code"] != "not_found" {
		t.Fatalf("unexpected error_code: %v", body["error_code"])
	}
}
