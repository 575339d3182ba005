package ports

import (
	"context"

	"github.com/flowsmith/graphstore/internal/core/domain"
)

// AuthService authenticates users and issues access tokens.
type AuthService interface {
	// Login verifies the credentials and returns a signed token plus the
	// authenticated user. domain.ErrInvalidCredentials on mismatch.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
