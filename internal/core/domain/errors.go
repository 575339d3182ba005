package domain

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUserExists      = errors.New("username already taken")
	ErrProductNotFound = errors.New("product not found")
	ErrGraphNotFound   = errors.New("graph not found")

	// ErrEmptyUpdate signals an update request that carries no fields to change.
	ErrEmptyUpdate = errors.New("update contains no fields")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access forbidden")

	// ErrGenerationFailed wraps failures reported by the code-generation service.
	ErrGenerationFailed = errors.New("code generation failed")
)
