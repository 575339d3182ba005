package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/flowsmith/graphstore/internal/core/domain"
)

const graphTTL = 5 * time.Minute

// GraphCache caches graph documents keyed by their (user_id, graph_id) pair.
// The graph editor frontend re-fetches the current graph aggressively, so a
// short-TTL read-through cache takes most of that load off the store.
// Key format: graph:<user_id>:<graph_id>
type GraphCache struct {
	client *redis.Client
}

// NewGraphCache creates a GraphCache wrapping the given Redis client.
func NewGraphCache(client *redis.Client) *GraphCache {
	return &GraphCache{client: client}
}

// Get returns the cached graph and true on a hit. Misses and Redis failures
// both report false: the caller falls through to the store either way.
func (c *GraphCache) Get(ctx context.Context, userID, graphID string) (*domain.Graph, bool) {
	raw, err := c.client.Get(ctx, c.key(userID, graphID)).Bytes()
	if err != nil {
		return nil, false
	}
	var g domain.Graph
	if err := json.Unmarshal(raw, &g); err != nil {
		return nil, false
	}
	return &g, true
}

// Set stores the graph under its compound key (expires after graphTTL).
func (c *GraphCache) Set(ctx context.Context, g *domain.Graph) error {
	raw, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("cache graph: %w", err)
	}
	return c.client.Set(ctx, c.key(g.UserID, g.GraphID), raw, graphTTL).Err()
}

// Invalidate drops the cached entry for the pair, if any.
func (c *GraphCache) Invalidate(ctx context.Context, userID, graphID string) error {
	return c.client.Del(ctx, c.key(userID, graphID)).Err()
}

func (c *GraphCache) key(userID, graphID string) string {
	return fmt.Sprintf("graph:%s:%s", userID, graphID)
}
