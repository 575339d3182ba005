package ports

import (
	"context"

	"github.com/flowsmith/graphstore/internal/core/domain"
)

// UpdateUserFields carries a partial user update. Pointer fields distinguish
// "absent" from "set to zero value"; nil slices/maps mean "leave untouched".
type UpdateUserFields struct {
	Email    *string
	FullName *string
	IsActive *bool
	Roles    []string
	Metadata map[string]any
}

// Empty reports whether no field is set.
func (f UpdateUserFields) Empty() bool {
	return f.Email == nil && f.FullName == nil && f.IsActive == nil &&
		f.Roles == nil && f.Metadata == nil
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// Create inserts a new user and returns the assigned identifier.
	// Returns domain.ErrUserExists when the username is already taken
	// (enforced by a unique index, not a pre-insert lookup).
	Create(ctx context.Context, u *domain.User) (string, error)
	// Get retrieves a user by identifier. A malformed identifier is
	// indistinguishable from absence: both yield domain.ErrUserNotFound.
	Get(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// List returns users ordered by creation time, offset-paginated.
	List(ctx context.Context, skip, limit int64) ([]*domain.User, error)
	// Update applies the set fields and refreshes updated_at. The boolean
	// reports whether the store actually changed the document; false covers
	// both a missing document and a no-op update.
	Update(ctx context.Context, id string, fields UpdateUserFields) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
}
