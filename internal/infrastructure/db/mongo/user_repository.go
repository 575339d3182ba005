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

const collectionUsers = "users"

type userDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	Email        string             `bson:"email"`
	FullName     string             `bson:"full_name,omitempty"`
	PasswordHash string             `bson:"password_hash,omitempty"`
	IsActive     bool               `bson:"is_active"`
	Roles        []string           `bson:"roles"`
	Metadata     map[string]any     `bson:"metadata,omitempty"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

// UserRepository persists users in the "users" collection.
type UserRepository struct {
	base *Repository[userDoc]
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{base: NewRepository[userDoc](db.Collection(collectionUsers))}
}

// Create inserts a new user. Username uniqueness is enforced by the unique
// index (see EnsureIndexes); the driver's duplicate-key error is the
// authoritative conflict signal, there is no racy pre-insert lookup.
func (r *UserRepository) Create(ctx context.Context, u *domain.User) (string, error) {
	fields := bson.M{
		"username":  u.Username,
		"email":     u.Email,
		"is_active": u.IsActive,
		"roles":     u.Roles,
	}
	if u.FullName != "" {
		fields["full_name"] = u.FullName
	}
	if u.PasswordHash != "" {
		fields["password_hash"] = u.PasswordHash
	}
	if u.Metadata != nil {
		fields["metadata"] = u.Metadata
	}

	id, err := r.base.Create(ctx, fields)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", domain.ErrUserExists
		}
		return "", fmt.Errorf("insert user: %w", err)
	}
	return id, nil
}

func (r *UserRepository) Get(ctx context.Context, id string) (*domain.User, error) {
	doc, err := r.base.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return toDomainUser(doc), nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	doc, err := r.base.FindOne(ctx, bson.M{"username": username})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return toDomainUser(doc), nil
}

func (r *UserRepository) List(ctx context.Context, skip, limit int64) ([]*domain.User, error) {
	docs, err := r.base.List(ctx, skip, limit, nil)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	out := make([]*domain.User, len(docs))
	for i := range docs {
		out[i] = toDomainUser(&docs[i])
	}
	return out, nil
}

func (r *UserRepository) Update(ctx context.Context, id string, fields ports.UpdateUserFields) (bool, error) {
	set := bson.M{}
	if fields.Email != nil {
		set["email"] = *fields.Email
	}
	if fields.FullName != nil {
		set["full_name"] = *fields.FullName
	}
	if fields.IsActive != nil {
		set["is_active"] = *fields.IsActive
	}
	if fields.Roles != nil {
		set["roles"] = fields.Roles
	}
	if fields.Metadata != nil {
		set["metadata"] = fields.Metadata
	}
	return r.base.Update(ctx, id, set)
}

func (r *UserRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.base.Delete(ctx, id)
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	return r.base.Count(ctx, nil)
}

// EnsureIndexes creates the unique username index.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.base.Collection().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func toDomainUser(d *userDoc) *domain.User {
	return &domain.User{
		ID:           d.ID.Hex(),
		Username:     d.Username,
		Email:        d.Email,
		FullName:     d.FullName,
		PasswordHash: d.PasswordHash,
		IsActive:     d.IsActive,
		Roles:        d.Roles,
		Metadata:     d.Metadata,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}
