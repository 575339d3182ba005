package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/flowsmith/graphstore/internal/api/metrics"
	"github.com/flowsmith/graphstore/internal/core/domain"
	"github.com/flowsmith/graphstore/internal/core/ports"
)

// GraphCache abstracts the read cache for graph documents (Redis).
type GraphCache interface {
	Get(ctx context.Context, userID, graphID string) (*domain.Graph, bool)
	Set(ctx context.Context, g *domain.Graph) error
	Invalidate(ctx context.Context, userID, graphID string) error
}

// GraphService implements the graph use-cases, reading through the cache on
// compound-key lookups and invalidating it on every write.
type GraphService struct {
	repo   ports.GraphRepository
	cache  GraphCache
	logger zerolog.Logger
}

func NewGraphService(repo ports.GraphRepository, cache GraphCache, logger zerolog.Logger) *GraphService {
	return &GraphService{repo: repo, cache: cache, logger: logger}
}

func (s *GraphService) Create(ctx context.Context, in ports.CreateGraphInput) (string, error) {
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	graph := &domain.Graph{
		UserID:      in.UserID,
		GraphID:     in.GraphID,
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Tags:        tags,
		Data:        in.Data,
	}

	id, err := s.repo.Create(ctx, graph)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", in.UserID).Str("graph_id", in.GraphID).Msg("failed to create graph")
		return "", err
	}

	if err := s.cache.Invalidate(ctx, in.UserID, in.GraphID); err != nil {
		s.logger.Warn().Err(err).Msg("failed to invalidate graph cache")
	}

	metrics.DocumentsWrittenTotal.WithLabelValues("graphs", "create").Inc()
	s.logger.Info().Str("id", id).Str("user_id", in.UserID).Str("graph_id", in.GraphID).Msg("graph created")
	return id, nil
}

func (s *GraphService) Get(ctx context.Context, id string) (*domain.Graph, error) {
	return s.repo.Get(ctx, id)
}

func (s *GraphService) List(ctx context.Context, in ports.ListGraphsInput) (*ports.GraphPage, error) {
	skip := int64(in.Page-1) * int64(in.Size)

	items, err := s.repo.List(ctx, skip, int64(in.Size), in.UserID)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	return &ports.GraphPage{
		Items: items,
		Total: total,
		Page:  in.Page,
		Size:  in.Size,
		Pages: totalPages(total, in.Size),
	}, nil
}

func (s *GraphService) Update(ctx context.Context, id string, fields ports.UpdateGraphFields) error {
	if fields.Empty() {
		return domain.ErrEmptyUpdate
	}

	updated, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return err
	}
	if !updated {
		return domain.ErrGraphNotFound
	}

	// The compound key is not part of the update payload; fetch it back to
	// drop the stale cache entry.
	if g, err := s.repo.Get(ctx, id); err == nil {
		if err := s.cache.Invalidate(ctx, g.UserID, g.GraphID); err != nil {
			s.logger.Warn().Err(err).Msg("failed to invalidate graph cache")
		}
	}

	metrics.DocumentsWrittenTotal.WithLabelValues("graphs", "update").Inc()
	s.logger.Info().Str("id", id).Msg("graph updated")
	return nil
}

func (s *GraphService) Delete(ctx context.Context, id string) error {
	graph, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrGraphNotFound
	}

	if err := s.cache.Invalidate(ctx, graph.UserID, graph.GraphID); err != nil {
		s.logger.Warn().Err(err).Msg("failed to invalidate graph cache")
	}

	metrics.DocumentsWrittenTotal.WithLabelValues("graphs", "delete").Inc()
	s.logger.Info().Str("id", id).Msg("graph deleted")
	return nil
}

// SetGraph upserts the graph data stored under (userID, graphID) and drops
// the cached entry. Idempotent under repeated identical calls.
func (s *GraphService) SetGraph(ctx context.Context, userID, graphID string, data map[string]any) error {
	if err := s.repo.SetGraph(ctx, userID, graphID, data); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Str("graph_id", graphID).Msg("failed to set graph data")
		return err
	}

	if err := s.cache.Invalidate(ctx, userID, graphID); err != nil {
		s.logger.Warn().Err(err).Msg("failed to invalidate graph cache")
	}

	metrics.DocumentsWrittenTotal.WithLabelValues("graphs", "upsert").Inc()
	s.logger.Info().Str("user_id", userID).Str("graph_id", graphID).Msg("graph data set")
	return nil
}

// GetGraph serves the compound-key lookup from the cache when possible,
// falling through to the store and repopulating the cache on a miss.
func (s *GraphService) GetGraph(ctx context.Context, userID, graphID string) (*domain.Graph, error) {
	if g, ok := s.cache.Get(ctx, userID, graphID); ok {
		metrics.GraphCacheTotal.WithLabelValues("hit").Inc()
		return g, nil
	}
	metrics.GraphCacheTotal.WithLabelValues("miss").Inc()

	g, err := s.repo.GetGraph(ctx, userID, graphID)
	if err != nil {
		if !errors.Is(err, domain.ErrGraphNotFound) {
			s.logger.Error().Err(err).Str("user_id", userID).Str("graph_id", graphID).Msg("failed to get graph data")
		}
		return nil, err
	}

	if err := s.cache.Set(ctx, g); err != nil {
		s.logger.Warn().Err(err).Msg("failed to cache graph")
	}
	return g, nil
}
