package ports

import (
	"context"

	"github.com/flowsmith/graphstore/internal/core/domain"
)

// UpdateProductFields carries a partial product update.
type UpdateProductFields struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	Tags        []string
	InStock     *bool
}

// Empty reports whether no field is set.
func (f UpdateProductFields) Empty() bool {
	return f.Name == nil && f.Description == nil && f.Price == nil &&
		f.Category == nil && f.Tags == nil && f.InStock == nil
}

// ProductRepository defines persistence operations for products.
// The category argument on List/Count is an equality filter; empty means all.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (string, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, skip, limit int64, category string) ([]*domain.Product, error)
	Update(ctx context.Context, id string, fields UpdateProductFields) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context, category string) (int64, error)
}
