package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flowsmith/graphstore/internal/core/ports"
)

// GraphHandler handles HTTP requests for workflow graph operations.
type GraphHandler struct {
	service ports.GraphService
}

func NewGraphHandler(service ports.GraphService) *GraphHandler {
	return &GraphHandler{service: service}
}

// Create handles POST /api/generator/graphs.
//
// @Summary      Create a graph
// @Tags         graphs
// @Accept       json
// @Produce      json
// @Param        body  body      createGraphRequest  true  "Graph details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Router       /api/generator/graphs [post]
func (h *GraphHandler) Create(c echo.Context) error {
	var req createGraphRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	id, err := h.service.Create(c.Request().Context(), ports.CreateGraphInput{
		UserID:      req.UserID,
		GraphID:     req.GraphID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Tags:        req.Tags,
		Data:        req.Data,
	})
	if err != nil {
		return err
	}

	return success(c, http.StatusCreated, "Graph created successfully", createdResponse{ID: id})
}

// Get handles GET /api/generator/graphs/:id.
//
// @Summary      Get a graph by document id
// @Tags         graphs
// @Produce      json
// @Param        id   path      string  true  "Graph document id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/generator/graphs/{id} [get]
func (h *GraphHandler) Get(c echo.Context) error {
	graph, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "", graph)
}

// List handles GET /api/generator/graphs?page=&size=&user_id=.
//
// @Summary      List graphs
// @Tags         graphs
// @Produce      json
// @Param        page     query     int     false  "Page number (>=1)"
// @Param        size     query     int     false  "Page size (1-100)"
// @Param        user_id  query     string  false  "Filter by owning user"
// @Success      200      {object}  envelope
// @Router       /api/generator/graphs [get]
func (h *GraphHandler) List(c echo.Context) error {
	page, size, err := bindPagination(c)
	if err != nil {
		return err
	}

	result, err := h.service.List(c.Request().Context(), ports.ListGraphsInput{
		Page:   page,
		Size:   size,
		UserID: c.QueryParam("user_id"),
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

// Update handles PUT /api/generator/graphs/:id.
//
// @Summary      Update a graph
// @Tags         graphs
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Graph document id"
// @Param        body  body      updateGraphRequest  true  "Fields to update"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /api/generator/graphs/{id} [put]
func (h *GraphHandler) Update(c echo.Context) error {
	var req updateGraphRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateGraphFields{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Tags:        req.Tags,
		Data:        req.Data,
	})
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, "Graph updated successfully", nil)
}

// Delete handles DELETE /api/generator/graphs/:id.
//
// @Summary      Delete a graph
// @Tags         graphs
// @Produce      json
// @Param        id   path      string  true  "Graph document id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/generator/graphs/{id} [delete]
func (h *GraphHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return success(c, http.StatusOK, "Graph deleted successfully", nil)
}

// SetGraph handles PUT /api/generator/graphs/:user_id/:graph_id, replacing the
// stored graph data for the pair or inserting a fresh document. Safe to retry.
//
// @Summary      Set graph data by (user_id, graph_id)
// @Tags         graphs
// @Accept       json
// @Produce      json
// @Param        user_id   path      string           true  "Owning user id"
// @Param        graph_id  path      string           true  "Graph id"
// @Param        body      body      setGraphRequest  true  "Graph data"
// @Success      200       {object}  envelope
// @Failure      400       {object}  envelope
// @Router       /api/generator/graphs/{user_id}/{graph_id} [put]
func (h *GraphHandler) SetGraph(c echo.Context) error {
	var req setGraphRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err := h.service.SetGraph(c.Request().Context(), c.Param("user_id"), c.Param("graph_id"), req.Data)
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, "Graph data saved", nil)
}

// GetGraph handles GET /api/generator/graphs/:user_id/:graph_id.
//
// @Summary      Get a graph by (user_id, graph_id)
// @Tags         graphs
// @Produce      json
// @Param        user_id   path      string  true  "Owning user id"
// @Param        graph_id  path      string  true  "Graph id"
// @Success      200       {object}  envelope
// @Failure      404       {object}  envelope
// @Router       /api/generator/graphs/{user_id}/{graph_id} [get]
func (h *GraphHandler) GetGraph(c echo.Context) error {
	graph, err := h.service.GetGraph(c.Request().Context(), c.Param("user_id"), c.Param("graph_id"))
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "", graph)
}
