package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/flowsmith/graphstore/internal/api/metrics"
	"github.com/flowsmith/graphstore/internal/core/domain"
	"github.com/flowsmith/graphstore/internal/core/ports"
)

// ProductService implements the product use-cases.
type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

// Create inserts a new product with the in-stock flag defaulted to true.
func (s *ProductService) Create(ctx context.Context, in ports.CreateProductInput) (string, error) {
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	product := &domain.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Tags:        tags,
		InStock:     true,
	}

	id, err := s.repo.Create(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Str("name", in.Name).Msg("failed to create product")
		return "", err
	}

	metrics.DocumentsWrittenTotal.WithLabelValues("products", "create").Inc()
	s.logger.Info().Str("product_id", id).Str("category", in.Category).Msg("product created")
	return id, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.Get(ctx, id)
}

// List returns the requested page, optionally filtered by category; the
// filter applies to both the page items and the reported total.
func (s *ProductService) List(ctx context.Context, in ports.ListProductsInput) (*ports.ProductPage, error) {
	skip := int64(in.Page-1) * int64(in.Size)

	items, err := s.repo.List(ctx, skip, int64(in.Size), in.Category)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx, in.Category)
	if err != nil {
		return nil, err
	}

	return &ports.ProductPage{
		Items: items,
		Total: total,
		Page:  in.Page,
		Size:  in.Size,
		Pages: totalPages(total, in.Size),
	}, nil
}

func (s *ProductService) Update(ctx context.Context, id string, fields ports.UpdateProductFields) error {
	if fields.Empty() {
		return domain.ErrEmptyUpdate
	}

	updated, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return err
	}
	if !updated {
		return domain.ErrProductNotFound
	}

	metrics.DocumentsWrittenTotal.WithLabelValues("products", "update").Inc()
	s.logger.Info().Str("product_id", id).Msg("product updated")
	return nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrProductNotFound
	}

	metrics.DocumentsWrittenTotal.WithLabelValues("products", "delete").Inc()
	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}
