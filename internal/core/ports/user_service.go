package ports

import (
	"context"

	"github.com/flowsmith/graphstore/internal/core/domain"
)

// CreateUserInput carries the validated payload for user creation.
type CreateUserInput struct {
	Username string
	Email    string
	Password string
	FullName string
	Metadata map[string]any
}

// UserPage is one page of a user listing.
type UserPage struct {
	Items []*domain.User
	Total int64
	Page  int
	Size  int
	Pages int
}

// UserService defines use-case operations for users.
type UserService interface {
	Create(ctx context.Context, in CreateUserInput) (string, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	// List returns the requested page; page is 1-based, size is capped by the
	// transport layer at 100.
	List(ctx context.Context, page, size int) (*UserPage, error)
	// Update applies a partial update. domain.ErrEmptyUpdate when no fields
	// are set, domain.ErrUserNotFound when nothing was changed.
	Update(ctx context.Context, id string, fields UpdateUserFields) error
	Delete(ctx context.Context, id string) error
}
