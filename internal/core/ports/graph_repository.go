package ports

import (
	"context"

	"github.com/flowsmith/graphstore/internal/core/domain"
)

// UpdateGraphFields carries a partial graph update. Data, when non-nil,
// replaces the stored graph_data wholesale; there is no partial merge.
type UpdateGraphFields struct {
	Name        *string
	Description *string
	Category    *string
	Tags        []string
	Data        map[string]any
}

// Empty reports whether no field is set.
func (f UpdateGraphFields) Empty() bool {
	return f.Name == nil && f.Description == nil && f.Category == nil &&
		f.Tags == nil && f.Data == nil
}

// GraphRepository defines persistence operations for workflow graphs.
type GraphRepository interface {
	Create(ctx context.Context, g *domain.Graph) (string, error)
	Get(ctx context.Context, id string) (*domain.Graph, error)
	// List returns graphs ordered by creation time; userID scopes the listing
	// to one owner when non-empty.
	List(ctx context.Context, skip, limit int64, userID string) ([]*domain.Graph, error)
	Update(ctx context.Context, id string, fields UpdateGraphFields) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context, userID string) (int64, error)

	// SetGraph upserts by the (userID, graphID) compound key: the stored
	// graph_data is replaced wholesale, or a new document is inserted when the
	// pair is unseen. Idempotent under repeated identical calls.
	SetGraph(ctx context.Context, userID, graphID string, data map[string]any) error
	// GetGraph looks a graph up by its (userID, graphID) compound key.
	GetGraph(ctx context.Context, userID, graphID string) (*domain.Graph, error)
}
