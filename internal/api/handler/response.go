package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// envelope is the uniform response body for every endpoint. Successful
// responses carry status "success" with optional message and data; errors
// carry status "error" plus a machine-readable error_code (rendered by the
// central error handler).
type envelope struct {
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
	Data      any    `json:"data,omitempty"`
	ErrorCode string `json:"error_code,omitempty"`
}

// pagePayload is the data shape for list endpoints.
type pagePayload struct {
	Items any   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Pages int   `json:"pages"`
}

func success(c echo.Context, code int, message string, data any) error {
	return c.JSON(code, envelope{Status: "success", Message: message, Data: data})
}

// bindAndValidate decodes the JSON body into req and runs schema validation,
// translating failures into 400s with the field detail as the message.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
