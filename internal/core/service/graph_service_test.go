package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/flowsmith/graphstore/internal/core/domain"
	"github.com/flowsmith/graphstore/internal/core/ports"
)

type stubGraphRepo struct {
	graphs []*domain.Graph
	seq    int
}

func newStubGraphRepo() *stubGraphRepo {
	return &stubGraphRepo{}
}

func cloneGraph(g *domain.Graph) *domain.Graph {
	if g == nil {
		return nil
	}
	clone := *g
	return &clone
}

func (r *stubGraphRepo) Create(_ context.Context, g *domain.Graph) (string, error) {
	r.seq++
	stored := cloneGraph(g)
	stored.ID = fmt.Sprintf("graph-%d", r.seq)
	r.graphs = append(r.graphs, stored)
	return stored.ID, nil
}

func (r *stubGraphRepo) Get(_ context.Context, id string) (*domain.Graph, error) {
	for _, g := range r.graphs {
		if g.ID == id {
			return cloneGraph(g), nil
		}
	}
	return nil, domain.ErrGraphNotFound
}

func (r *stubGraphRepo) List(_ context.Context, skip, limit int64, userID string) ([]*domain.Graph, error) {
	out := make([]*domain.Graph, 0)
	var seen int64
	for _, g := range r.graphs {
		if userID != "" && g.UserID != userID {
			continue
		}
		if seen < skip {
			seen++
			continue
		}
		if int64(len(out)) == limit {
			break
		}
		out = append(out, cloneGraph(g))
	}
	return out, nil
}

func (r *stubGraphRepo) Update(_ context.Context, id string, fields ports.UpdateGraphFields) (bool, error) {
	for _, g := range r.graphs {
		if g.ID != id {
			continue
		}
		if fields.Name != nil {
			g.Name = *fields.Name
		}
		if fields.Description != nil {
			g.Description = *fields.Description
		}
		if fields.Category != nil {
			g.Category = *fields.Category
		}
		if fields.Tags != nil {
			g.Tags = fields.Tags
		}
		if fields.Data != nil {
			g.Data = fields.Data
		}
		return true, nil
	}
	return false, nil
}

func (r *stubGraphRepo) Delete(_ context.Context, id string) (bool, error) {
	for i, g := range r.graphs {
		if g.ID == id {
			r.graphs = append(r.graphs[:i], r.graphs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *stubGraphRepo) Count(_ context.Context, userID string) (int64, error) {
	if userID == "" {
		return int64(len(r.graphs)), nil
	}
	var n int64
	for _, g := range r.graphs {
		if g.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (r *stubGraphRepo) SetGraph(_ context.Context, userID, graphID string, data map[string]any) error {
	for _, g := range r.graphs {
		if g.UserID == userID && g.GraphID == graphID {
			g.Data = data
			return nil
		}
	}
	r.seq++
	r.graphs = append(r.graphs, &domain.Graph{
		ID:      fmt.Sprintf("graph-%d", r.seq),
		UserID:  userID,
		GraphID: graphID,
		Data:    data,
	})
	return nil
}

func (r *stubGraphRepo) GetGraph(_ context.Context, userID, graphID string) (*domain.Graph, error) {
	for _, g := range r.graphs {
		if g.UserID == userID && g.GraphID == graphID {
			return cloneGraph(g), nil
		}
	}
	return nil, domain.ErrGraphNotFound
}

// stubGraphCache records cache traffic so tests can assert on invalidations.
type stubGraphCache struct {
	entries       map[string]*domain.Graph
	invalidated   []string
	sets, lookups int
}

func newStubGraphCache() *stubGraphCache {
	return &stubGraphCache{entries: make(map[string]*domain.Graph)}
}

func cacheKey(userID, graphID string) string {
	return userID + "/" + graphID
}

func (c *stubGraphCache) Get(_ context.Context, userID, graphID string) (*domain.Graph, bool) {
	c.lookups++
	g, ok := c.entries[cacheKey(userID, graphID)]
	return cloneGraph(g), ok
}

func (c *stubGraphCache) Set(_ context.Context, g *domain.Graph) error {
	c.sets++
	c.entries[cacheKey(g.UserID, g.GraphID)] = cloneGraph(g)
	return nil
}

func (c *stubGraphCache) Invalidate(_ context.Context, userID, graphID string) error {
	key := cacheKey(userID, graphID)
	delete(c.entries, key)
	c.invalidated = append(c.invalidated, key)
	return nil
}

func TestGraphService_SetGraph_Idempotent(t *testing.T) {
	repo := newStubGraphRepo()
	cache := newStubGraphCache()
	svc := NewGraphService(repo, cache, zerolog.Nop())

	data := map[string]any{"nodes": []any{"a", "b"}}
	for i := 0; i < 3; i++ {
		if err := svc.SetGraph(context.Background(), "u1", "g1", data); err != nil {
			t.Fatalf("SetGraph call %d failed: %v", i, err)
		}
	}

	total, _ := repo.Count(context.Background(), "u1")
	if total != 1 {
		t.Fatalf("expected a single document after repeated sets, got %d", total)
	}

	g, err := svc.GetGraph(context.Background(), "u1", "g1")
	if err != nil {
		t.Fatalf("GetGraph failed: %v", err)
	}
	if len(g.Data) != 1 {
		t.Fatalf("unexpected graph data: %v", g.Data)
	}
}

func TestGraphService_GetGraph_CachesReads(t *testing.T) {
	repo := newStubGraphRepo()
	cache := newStubGraphCache()
	svc := NewGraphService(repo, cache, zerolog.Nop())

	if err := svc.SetGraph(context.Background(), "u1", "g1", map[string]any{"k": "v"}); err != nil {
		t.Fatalf("SetGraph failed: %v", err)
	}

	// First read misses and populates; second read must come from the cache.
	if _, err := svc.GetGraph(context.Background(), "u1", "g1"); err != nil {
		t.Fatalf("first GetGraph failed: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected one cache fill, got %d", cache.sets)
	}

	repo.graphs = nil // force any store fallthrough to fail
	g, err := svc.GetGraph(context.Background(), "u1", "g1")
	if err != nil {
		t.Fatalf("cached GetGraph failed: %v", err)
	}
	if g.UserID != "u1" || g.GraphID != "g1" {
		t.Fatalf("unexpected cached graph: %+v", g)
	}
}

func TestGraphService_SetGraph_InvalidatesCache(t *testing.T) {
	repo := newStubGraphRepo()
	cache := newStubGraphCache()
	svc := NewGraphService(repo, cache, zerolog.Nop())

	if err := svc.SetGraph(context.Background(), "u1", "g1", map[string]any{"v": 1}); err != nil {
		t.Fatalf("SetGraph failed: %v", err)
	}
	if _, err := svc.GetGraph(context.Background(), "u1", "g1"); err != nil {
		t.Fatalf("GetGraph failed: %v", err)
	}

	if err := svc.SetGraph(context.Background(), "u1", "g1", map[string]any{"v": 2}); err != nil {
		t.Fatalf("second SetGraph failed: %v", err)
	}

	g, err := svc.GetGraph(context.Background(), "u1", "g1")
	if err != nil {
		t.Fatalf("GetGraph after update failed: %v", err)
	}
	if g.Data["v"] != 2 {
		t.Fatalf("stale graph data served: %v", g.Data)
	}
}

func TestGraphService_Delete_InvalidatesCache(t *testing.T) {
	repo := newStubGraphRepo()
	cache := newStubGraphCache()
	svc := NewGraphService(repo, cache, zerolog.Nop())

	id, err := svc.Create(context.Background(), ports.CreateGraphInput{
		UserID:   "u1",
		GraphID:  "g1",
		Name:     "pipeline",
		Category: "workflow-etl",
		Data:     map[string]any{"k": "v"},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.GetGraph(context.Background(), "u1", "g1"); err != nil {
		t.Fatalf("GetGraph failed: %v", err)
	}

	if err := svc.Delete(context.Background(), id); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, ok := cache.entries[cacheKey("u1", "g1")]; ok {
		t.Fatalf("cache entry survived delete")
	}
	if _, err := svc.GetGraph(context.Background(), "u1", "g1"); err != domain.ErrGraphNotFound {
		t.Fatalf("expected ErrGraphNotFound, got %v", err)
	}
}

func TestGraphService_List_OwnerFilter(t *testing.T) {
	repo := newStubGraphRepo()
	svc := NewGraphService(repo, newStubGraphCache(), zerolog.Nop())

	owners := []string{"u1", "u2", "u1", "u1"}
	for i, owner := range owners {
		_, err := svc.Create(context.Background(), ports.CreateGraphInput{
			UserID:   owner,
			GraphID:  fmt.Sprintf("g%d", i),
			Name:     "flow",
			Category: "workflow-etl",
			Data:     map[string]any{},
		})
		if err != nil {
			t.Fatalf("create %d failed: %v", i, err)
		}
	}

	page, err := svc.List(context.Background(), ports.ListGraphsInput{Page: 1, Size: 10, UserID: "u1"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if page.Total != 3 || len(page.Items) != 3 {
		t.Fatalf("expected 3 graphs for u1, got total=%d items=%d", page.Total, len(page.Items))
	}
}
