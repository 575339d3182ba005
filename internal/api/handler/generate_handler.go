package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flowsmith/graphstore/internal/core/ports"
)

// GenerateHandler proxies code-generation requests to the generator service.
type GenerateHandler struct {
	service ports.GenerateService
}

func NewGenerateHandler(service ports.GenerateService) *GenerateHandler {
	return &GenerateHandler{service: service}
}

type generateRequest struct {
	Spec     string `json:"spec"     validate:"required"`
	Language string `json:"language" validate:"required,oneof=python typescript"`
}

type generateResponse struct {
	Stub           string `json:"stub"`
	Implementation string `json:"implementation"`
}

// Generate handles POST /api/generate.
//
// @Summary      Generate code from a workflow specification
// @Tags         generate
// @Accept       json
// @Produce      json
// @Param        body  body      generateRequest  true  "Specification and target language"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      502   {object}  envelope
// @Router       /api/generate [post]
func (h *GenerateHandler) Generate(c echo.Context) error {
	var req generateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.service.Generate(c.Request().Context(), req.Spec, req.Language)
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, "Code generated successfully", generateResponse{
		Stub:           result.Stub,
		Implementation: result.Implementation,
	})
}
