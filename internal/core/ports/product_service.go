package ports

import (
	"context"

	"github.com/flowsmith/graphstore/internal/core/domain"
)

// CreateProductInput carries the validated payload for product creation.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Tags        []string
}

// ListProductsInput carries pagination plus the optional category filter.
type ListProductsInput struct {
	Page     int
	Size     int
	Category string
}

// ProductPage is one page of a product listing.
type ProductPage struct {
	Items []*domain.Product
	Total int64
	Page  int
	Size  int
	Pages int
}

// ProductService defines use-case operations for products.
type ProductService interface {
	Create(ctx context.Context, in CreateProductInput) (string, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, in ListProductsInput) (*ProductPage, error)
	Update(ctx context.Context, id string, fields UpdateProductFields) error
	Delete(ctx context.Context, id string) error
}
