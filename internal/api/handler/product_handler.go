package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flowsmith/graphstore/internal/core/ports"
)

// ProductHandler handles HTTP requests for product operations.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// Create handles POST /api/generator/products.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Router       /api/generator/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	id, err := h.service.Create(c.Request().Context(), ports.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Tags:        req.Tags,
	})
	if err != nil {
		return err
	}

	return success(c, http.StatusCreated, "Product created successfully", createdResponse{ID: id})
}

// Get handles GET /api/generator/products/:id.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/generator/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "", product)
}

// List handles GET /api/generator/products?page=&size=&category=.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        page      query     int     false  "Page number (>=1)"
// @Param        size      query     int     false  "Page size (1-100)"
// @Param        category  query     string  false  "Filter by category"
// @Success      200       {object}  envelope
// @Router       /api/generator/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	page, size, err := bindPagination(c)
	if err != nil {
		return err
	}

	result, err := h.service.List(c.Request().Context(), ports.ListProductsInput{
		Page:     page,
		Size:     size,
		Category: c.QueryParam("category"),
	})
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, "", pagePayload{
		Items: result.Items,
		Total: result.Total,
		Page:  result.Page,
		Size:  result.Size,
		Pages: result.Pages,
	})
}

// Update handles PUT /api/generator/products/:id.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Product id"
// @Param        body  body      updateProductRequest  true  "Fields to update"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /api/generator/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateProductFields{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Tags:        req.Tags,
		InStock:     req.InStock,
	})
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, "Product updated successfully", nil)
}

// Delete handles DELETE /api/generator/products/:id.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/generator/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return success(c, http.StatusOK, "Product deleted successfully", nil)
}
