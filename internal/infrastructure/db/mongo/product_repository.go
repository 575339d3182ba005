package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/flowsmith/graphstore/internal/core/domain"
	"github.com/flowsmith/graphstore/internal/core/ports"
)

const collectionProducts = "products"

type productDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	Price       float64            `bson:"price"`
	Category    string             `bson:"category"`
	Tags        []string           `bson:"tags"`
	InStock     bool               `bson:"in_stock"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

// ProductRepository persists products in the "products" collection.
type ProductRepository struct {
	base *Repository[productDoc]
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{base: NewRepository[productDoc](db.Collection(collectionProducts))}
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) (string, error) {
	fields := bson.M{
		"name":     p.Name,
		"price":    p.Price,
		"category": p.Category,
		"tags":     p.Tags,
		"in_stock": p.InStock,
	}
	if p.Description != "" {
		fields["description"] = p.Description
	}

	id, err := r.base.Create(ctx, fields)
	if err != nil {
		return "", fmt.Errorf("insert product: %w", err)
	}
	return id, nil
}

func (r *ProductRepository) Get(ctx context.Context, id string) (*domain.Product, error) {
	doc, err := r.base.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return toDomainProduct(doc), nil
}

func (r *ProductRepository) List(ctx context.Context, skip, limit int64, category string) ([]*domain.Product, error) {
	docs, err := r.base.List(ctx, skip, limit, categoryFilter(category))
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	out := make([]*domain.Product, len(docs))
	for i := range docs {
		out[i] = toDomainProduct(&docs[i])
	}
	return out, nil
}

func (r *ProductRepository) Update(ctx context.Context, id string, fields ports.UpdateProductFields) (bool, error) {
	set := bson.M{}
	if fields.Name != nil {
		set["name"] = *fields.Name
	}
	if fields.Description != nil {
		set["description"] = *fields.Description
	}
	if fields.Price != nil {
		set["price"] = *fields.Price
	}
	if fields.Category != nil {
		set["category"] = *fields.Category
	}
	if fields.Tags != nil {
		set["tags"] = fields.Tags
	}
	if fields.InStock != nil {
		set["in_stock"] = *fields.InStock
	}
	return r.base.Update(ctx, id, set)
}

func (r *ProductRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.base.Delete(ctx, id)
}

func (r *ProductRepository) Count(ctx context.Context, category string) (int64, error) {
	return r.base.Count(ctx, categoryFilter(category))
}

func categoryFilter(category string) bson.M {
	if category == "" {
		return nil
	}
	return bson.M{"category": category}
}

func toDomainProduct(d *productDoc) *domain.Product {
	return &domain.Product{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		Category:    d.Category,
		Tags:        d.Tags,
		InStock:     d.InStock,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
