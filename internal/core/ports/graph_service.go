package ports

import (
	"context"

	"github.com/flowsmith/graphstore/internal/core/domain"
)

// CreateGraphInput carries the validated payload for graph creation.
type CreateGraphInput struct {
	UserID      string
	GraphID     string
	Name        string
	Description string
	Category    string
	Tags        []string
	Data        map[string]any
}

// ListGraphsInput carries pagination plus the optional owner filter.
type ListGraphsInput struct {
	Page   int
	Size   int
	UserID string
}

// GraphPage is one page of a graph listing.
type GraphPage struct {
	Items []*domain.Graph
	Total int64
	Page  int
	Size  int
	Pages int
}

// GraphService defines use-case operations for workflow graphs.
type GraphService interface {
	Create(ctx context.Context, in CreateGraphInput) (string, error)
	Get(ctx context.Context, id string) (*domain.Graph, error)
	List(ctx context.Context, in ListGraphsInput) (*GraphPage, error)
	Update(ctx context.Context, id string, fields UpdateGraphFields) error
	Delete(ctx context.Context, id string) error

	SetGraph(ctx context.Context, userID, graphID string, data map[string]any) error
	GetGraph(ctx context.Context, userID, graphID string) (*domain.Graph, error)
}
