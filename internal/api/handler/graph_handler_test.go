package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/flowsmith/graphstore/internal/core/domain"
	"github.com/flowsmith/graphstore/internal/core/ports"
)

type stubGraphService struct {
	createFn   func(ctx context.Context, in ports.CreateGraphInput) (string, error)
	getFn      func(ctx context.Context, id string) (*domain.Graph, error)
	listFn     func(ctx context.Context, in ports.ListGraphsInput) (*ports.GraphPage, error)
	updateFn   func(ctx context.Context, id string, fields ports.UpdateGraphFields) error
	deleteFn   func(ctx context.Context, id string) error
	setGraphFn func(ctx context.Context, userID, graphID string, data map[string]any) error
	getGraphFn func(ctx context.Context, userID, graphID string) (*domain.Graph, error)
}

func (s *stubGraphService) Create(ctx context.Context, in ports.CreateGraphInput) (string, error) {
	return s.createFn(ctx, in)
}

func (s *stubGraphService) Get(ctx context.Context, id string) (*domain.Graph, error) {
	return s.getFn(ctx, id)
}

func (s *stubGraphService) List(ctx context.Context, in ports.ListGraphsInput) (*ports.GraphPage, error) {
	return s.listFn(ctx, in)
}

func (s *stubGraphService) Update(ctx context.Context, id string, fields ports.UpdateGraphFields) error {
	return s.updateFn(ctx, id, fields)
}

func (s *stubGraphService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *stubGraphService) SetGraph(ctx context.Context, userID, graphID string, data map[string]any) error {
	return s.setGraphFn(ctx, userID, graphID, data)
}

func (s *stubGraphService) GetGraph(ctx context.Context, userID, graphID string) (*domain.Graph, error) {
	return s.getGraphFn(ctx, userID, graphID)
}

func TestGraphHandler_SetGraph(t *testing.T) {
	e := newTestEcho()
	h := NewGraphHandler(&stubGraphService{
		setGraphFn: func(_ context.Context, userID, graphID string, data map[string]any) error {
			if userID != "u1" || graphID != "g1" {
				t.Fatalf("unexpected key: %s/%s", userID, graphID)
			}
			if _, ok := data["nodes"]; !ok {
				t.Fatalf("graph data not passed through: %v", data)
			}
			return nil
		},
	})

	body := strings.NewReader(`{"graph_data":{"nodes":[{"id":"start"}]}}`)
	req := httptest.NewRequest(http.MethodPut, "/", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("user_id", "graph_id")
	c.SetParamValues("u1", "g1")

	if err := h.SetGraph(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != "success" {
		t.Fatalf("unexpected status: %v", resp["status"])
	}
}

func TestGraphHandler_SetGraph_MissingData(t *testing.T) {
	e := newTestEcho()
	h := NewGraphHandler(&stubGraphService{
		setGraphFn: func(context.Context, string, string, map[string]any) error {
			t.Fatalf("service should not be called without graph_data")
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("user_id", "graph_id")
	c.SetParamValues("u1", "g1")

	err := h.SetGraph(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestGraphHandler_GetGraph(t *testing.T) {
	e := newTestEcho()
	h := NewGraphHandler(&stubGraphService{
		getGraphFn: func(_ context.Context, userID, graphID string) (*domain.Graph, error) {
			return &domain.Graph{UserID: userID, GraphID: graphID, Data: map[string]any{"k": "v"}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("user_id", "graph_id")
	c.SetParamValues("u1", "g1")

	if err := h.GetGraph(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected graph in data, got %+v", resp)
	}
	if data["user_id"] != "u1" || data["graph_id"] != "g1" {
		t.Fatalf("unexpected graph payload: %+v", data)
	}
}

func TestGraphHandler_GetGraph_NotFound(t *testing.T) {
	e := newTestEcho()
	h := NewGraphHandler(&stubGraphService{
		getGraphFn: func(context.Context, string, string) (*domain.Graph, error) {
			return nil, domain.ErrGraphNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("user_id", "graph_id")
	c.SetParamValues("u1", "missing")

	if err := h.GetGraph(c); err != domain.ErrGraphNotFound {
		t.Fatalf("expected ErrGraphNotFound to propagate, got %v", err)
	}
}
