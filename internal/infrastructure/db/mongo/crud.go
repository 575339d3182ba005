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
)

// ErrNotFound is returned when a lookup matches no document. A malformed
// identifier yields the same error: callers cannot distinguish the two.
var ErrNotFound = errors.New("document not found")

// Repository provides collection-agnostic CRUD primitives over a single
// collection, parameterized by the bson-tagged document struct T. It holds
// no state beyond the collection handle; pagination and filtering are pushed
// to the server. Identifier and timestamp bookkeeping is its only value-add:
// _id is assigned by the store on insert and handed back as a hex string,
// created_at/updated_at are stamped here in UTC.
type Repository[T any] struct {
	col *mongo.Collection
}

// NewRepository wraps a collection handle.
func NewRepository[T any](col *mongo.Collection) *Repository[T] {
	return &Repository[T]{col: col}
}

// Collection exposes the underlying handle for index management.
func (r *Repository[T]) Collection() *mongo.Collection {
	return r.col
}

// Create inserts a document built from the explicitly-set fields, stamping
// created_at and updated_at with the same instant so they start equal. Any
// _id in fields is discarded: identifiers are store-assigned and immutable.
func (r *Repository[T]) Create(ctx context.Context, fields bson.M) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	doc := make(bson.M, len(fields)+2)
	for k, v := range fields {
		if k == "_id" {
			continue
		}
		doc[k] = v
	}
	doc["created_at"] = now
	doc["updated_at"] = now

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert: unexpected id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// Get looks a document up by its hex identifier.
func (r *Repository[T]) Get(ctx context.Context, id string) (*T, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return r.FindOne(ctx, bson.M{"_id": oid})
}

// FindOne returns the first document matching filter.
func (r *Repository[T]) FindOne(ctx context.Context, filter bson.M) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var out T
	if err := r.col.FindOne(ctx, filter).Decode(&out); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find one: %w", err)
	}
	return &out, nil
}

// List returns documents matching filter with offset pagination. Results are
// sorted by created_at then _id ascending so pages are stable across calls.
func (r *Repository[T]) List(ctx context.Context, skip, limit int64, filter bson.M) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if filter == nil {
		filter = bson.M{}
	}
	opts := options.Find().
		SetSkip(skip).
		SetLimit(limit).
		SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find: %w", err)
	}

	var out []T
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return out, nil
}

// Update applies a $set of the given fields and refreshes updated_at. An
// empty field map returns false without touching the store. The boolean
// reports whether the store changed anything: false for a missing document
// and for a no-op update whose values already match.
func (r *Repository[T]) Update(ctx context.Context, id string, fields bson.M) (bool, error) {
	if len(fields) == 0 {
		return false, nil
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := make(bson.M, len(fields)+1)
	for k, v := range fields {
		if k == "_id" {
			continue
		}
		set[k] = v
	}
	set["updated_at"] = time.Now().UTC()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return false, fmt.Errorf("update: %w", err)
	}
	return res.ModifiedCount > 0, nil
}

// Upsert applies a $set of fields (plus a refreshed updated_at) to the
// document matching filter, inserting it with created_at stamped when no
// match exists. Used for compound-key writes such as graph data.
func (r *Repository[T]) Upsert(ctx context.Context, filter, fields bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	set := make(bson.M, len(fields)+1)
	for k, v := range fields {
		set[k] = v
	}
	set["updated_at"] = now

	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"created_at": now},
	}
	_, err := r.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert: %w", err)
	}
	return nil
}

// Delete removes the document with the given identifier, reporting whether
// one was removed. Malformed identifiers report false.
func (r *Repository[T]) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// Count returns the number of documents matching filter; nil counts all.
func (r *Repository[T]) Count(ctx context.Context, filter bson.M) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if filter == nil {
		filter = bson.M{}
	}
	n, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}
