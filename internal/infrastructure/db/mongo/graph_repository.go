package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/flowsmith/graphstore/internal/core/domain"
	"github.com/flowsmith/graphstore/internal/core/ports"
)

const collectionGraphs = "graphs"

type graphDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      string             `bson:"user_id"`
	GraphID     string             `bson:"graph_id"`
	Name        string             `bson:"graph_name"`
	Description string             `bson:"graph_description,omitempty"`
	Category    string             `bson:"graph_category"`
	Tags        []string           `bson:"graph_tags"`
	Data        map[string]any     `bson:"graph_data"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

// GraphRepository persists workflow graphs in the "graphs" collection.
// Besides plain CRUD it supports lookup and upsert by the (user_id, graph_id)
// compound key used by the graph editor frontend.
type GraphRepository struct {
	base *Repository[graphDoc]
}

func NewGraphRepository(db *mongo.Database) *GraphRepository {
	return &GraphRepository{base: NewRepository[graphDoc](db.Collection(collectionGraphs))}
}

func (r *GraphRepository) Create(ctx context.Context, g *domain.Graph) (string, error) {
	fields := bson.M{
		"user_id":        g.UserID,
		"graph_id":       g.GraphID,
		"graph_name":     g.Name,
		"graph_category": g.Category,
		"graph_tags":     g.Tags,
		"graph_data":     g.Data,
	}
	if g.Description != "" {
		fields["graph_description"] = g.Description
	}

	id, err := r.base.Create(ctx, fields)
	if err != nil {
		return "", fmt.Errorf("insert graph: %w", err)
	}
	return id, nil
}

func (r *GraphRepository) Get(ctx context.Context, id string) (*domain.Graph, error) {
	doc, err := r.base.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, domain.ErrGraphNotFound
		}
		return nil, fmt.Errorf("get graph: %w", err)
	}
	return toDomainGraph(doc), nil
}

func (r *GraphRepository) List(ctx context.Context, skip, limit int64, userID string) ([]*domain.Graph, error) {
	docs, err := r.base.List(ctx, skip, limit, ownerFilter(userID))
	if err != nil {
		return nil, fmt.Errorf("list graphs: %w", err)
	}
	out := make([]*domain.Graph, len(docs))
	for i := range docs {
		out[i] = toDomainGraph(&docs[i])
	}
	return out, nil
}

func (r *GraphRepository) Update(ctx context.Context, id string, fields ports.UpdateGraphFields) (bool, error) {
	set := bson.M{}
	if fields.Name != nil {
		set["graph_name"] = *fields.Name
	}
	if fields.Description != nil {
		set["graph_description"] = *fields.Description
	}
	if fields.Category != nil {
		set["graph_category"] = *fields.Category
	}
	if fields.Tags != nil {
		set["graph_tags"] = fields.Tags
	}
	if fields.Data != nil {
		set["graph_data"] = fields.Data
	}
	return r.base.Update(ctx, id, set)
}

func (r *GraphRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.base.Delete(ctx, id)
}

func (r *GraphRepository) Count(ctx context.Context, userID string) (int64, error) {
	return r.base.Count(ctx, ownerFilter(userID))
}

// SetGraph replaces the stored graph_data for the (userID, graphID) pair,
// inserting the document when the pair is unseen. The compound unique index
// makes the upsert race-free under concurrent identical calls.
func (r *GraphRepository) SetGraph(ctx context.Context, userID, graphID string, data map[string]any) error {
	filter := bson.M{"user_id": userID, "graph_id": graphID}
	if err := r.base.Upsert(ctx, filter, bson.M{"graph_data": data}); err != nil {
		return fmt.Errorf("set graph: %w", err)
	}
	return nil
}

func (r *GraphRepository) GetGraph(ctx context.Context, userID, graphID string) (*domain.Graph, error) {
	doc, err := r.base.FindOne(ctx, bson.M{"user_id": userID, "graph_id": graphID})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, domain.ErrGraphNotFound
		}
		return nil, fmt.Errorf("get graph: %w", err)
	}
	return toDomainGraph(doc), nil
}

// EnsureIndexes creates the compound unique (user_id, graph_id) index.
func (r *GraphRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.base.Collection().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "graph_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func ownerFilter(userID string) bson.M {
	if userID == "" {
		return nil
	}
	return bson.M{"user_id": userID}
}

func toDomainGraph(d *graphDoc) *domain.Graph {
	return &domain.Graph{
		ID:          d.ID.Hex(),
		UserID:      d.UserID,
		GraphID:     d.GraphID,
		Name:        d.Name,
		Description: d.Description,
		Category:    d.Category,
		Tags:        d.Tags,
		Data:        d.Data,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
