package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flowsmith/graphstore/internal/core/ports"
)

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Create handles POST /api/generator/users.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Router       /api/generator/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	id, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Metadata: req.Metadata,
	})
	if err != nil {
		return err
	}

	return success(c, http.StatusCreated, "User created successfully", createdResponse{ID: id})
}

// Get handles GET /api/generator/users/:id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/generator/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "", user)
}

// List handles GET /api/generator/users?page=&size=.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Param        page  query     int  false  "Page number (>=1)"
// @Param        size  query     int  false  "Page size (1-100)"
// @Success      200   {object}  envelope
// @Router       /api/generator/users [get]
func (h *UserHandler) List(c echo.Context) error {
	page, size, err := bindPagination(c)
	if err != nil {
		return err
	}

	result, err := h.service.List(c.Request().Context(), page, size)
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

// Update handles PUT /api/generator/users/:id.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /api/generator/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateUserFields{
		Email:    req.Email,
		FullName: req.FullName,
		IsActive: req.IsActive,
		Roles:    req.Roles,
		Metadata: req.Metadata,
	})
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, "User updated successfully", nil)
}

// Delete handles DELETE /api/generator/users/:id.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/generator/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return success(c, http.StatusOK, "User deleted successfully", nil)
}
