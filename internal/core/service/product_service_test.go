package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/flowsmith/graphstore/internal/core/domain"
	"github.com/flowsmith/graphstore/internal/core/ports"
)

type stubProductRepo struct {
	products []*domain.Product
	seq      int
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{}
}

func cloneProduct(p *domain.Product) *domain.Product {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) (string, error) {
	r.seq++
	stored := cloneProduct(p)
	stored.ID = fmt.Sprintf("product-%d", r.seq)
	r.products = append(r.products, stored)
	return stored.ID, nil
}

func (r *stubProductRepo) Get(_ context.Context, id string) (*domain.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return cloneProduct(p), nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *stubProductRepo) List(_ context.Context, skip, limit int64, category string) ([]*domain.Product, error) {
	out := make([]*domain.Product, 0)
	var seen int64
	for _, p := range r.products {
		if category != "" && p.Category != category {
			continue
		}
		if seen < skip {
			seen++
			continue
		}
		if int64(len(out)) == limit {
			break
		}
		out = append(out, cloneProduct(p))
	}
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, id string, fields ports.UpdateProductFields) (bool, error) {
	for _, p := range r.products {
		if p.ID != id {
			continue
		}
		if fields.Name != nil {
			p.Name = *fields.Name
		}
		if fields.Description != nil {
			p.Description = *fields.Description
		}
		if fields.Price != nil {
			p.Price = *fields.Price
		}
		if fields.Category != nil {
			p.Category = *fields.Category
		}
		if fields.Tags != nil {
			p.Tags = fields.Tags
		}
		if fields.InStock != nil {
			p.InStock = *fields.InStock
		}
		return true, nil
	}
	return false, nil
}

func (r *stubProductRepo) Delete(_ context.Context, id string) (bool, error) {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *stubProductRepo) Count(_ context.Context, category string) (int64, error) {
	if category == "" {
		return int64(len(r.products)), nil
	}
	var n int64
	for _, p := range r.products {
		if p.Category == category {
			n++
		}
	}
	return n, nil
}

func TestProductService_Create_Defaults(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, zerolog.Nop())

	id, err := svc.Create(context.Background(), ports.CreateProductInput{
		Name:     "Widget",
		Price:    9.99,
		Category: "tools",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	stored, err := repo.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("stored product missing: %v", err)
	}
	if !stored.InStock {
		t.Fatalf("expected new product to be in stock")
	}
	if stored.Tags == nil || len(stored.Tags) != 0 {
		t.Fatalf("expected empty tag slice, got %v", stored.Tags)
	}
}

func TestProductService_List_CategoryFilter(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, zerolog.Nop())

	categories := []string{"tools", "toys", "tools", "books", "tools"}
	for i, cat := range categories {
		_, err := svc.Create(context.Background(), ports.CreateProductInput{
			Name:     fmt.Sprintf("item-%d", i),
			Price:    1.50,
			Category: cat,
		})
		if err != nil {
			t.Fatalf("create %d failed: %v", i, err)
		}
	}

	page, err := svc.List(context.Background(), ports.ListProductsInput{Page: 1, Size: 10, Category: "tools"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if page.Total != 3 {
		t.Fatalf("expected filtered total 3, got %d", page.Total)
	}
	if len(page.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(page.Items))
	}
	for _, p := range page.Items {
		if p.Category != "tools" {
			t.Fatalf("unexpected category in filtered list: %s", p.Category)
		}
	}

	all, err := svc.List(context.Background(), ports.ListProductsInput{Page: 1, Size: 10})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if all.Total != 5 {
		t.Fatalf("expected unfiltered total 5, got %d", all.Total)
	}
}

func TestProductService_Update_NotFound(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, zerolog.Nop())

	price := 3.25
	if err := svc.Update(context.Background(), "missing", ports.UpdateProductFields{Price: &price}); err != domain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	if err := svc.Update(context.Background(), "missing", ports.UpdateProductFields{}); err != domain.ErrEmptyUpdate {
		t.Fatalf("expected ErrEmptyUpdate, got %v", err)
	}
}

func TestProductService_Delete(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, zerolog.Nop())

	id, err := svc.Create(context.Background(), ports.CreateProductInput{Name: "Gadget", Price: 4.20, Category: "tools"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), id); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), id); err != domain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
