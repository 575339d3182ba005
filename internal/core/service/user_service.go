package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/flowsmith/graphstore/internal/api/metrics"
	"github.com/flowsmith/graphstore/internal/core/domain"
	"github.com/flowsmith/graphstore/internal/core/ports"
)

// UserService implements the user use-cases on top of the user repository.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Create inserts a new user with the default role and active flag. The
// password is bcrypt-hashed before it reaches the repository; the plaintext
// is never stored or logged.
func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		FullName:     in.FullName,
		PasswordHash: string(hash),
		IsActive:     true,
		Roles:        []string{domain.RoleUser},
		Metadata:     in.Metadata,
	}

	id, err := s.repo.Create(ctx, user)
	if err != nil {
		if !errors.Is(err, domain.ErrUserExists) {
			s.logger.Error().Err(err).Str("username", in.Username).Msg("failed to create user")
		}
		return "", err
	}

	metrics.DocumentsWrittenTotal.WithLabelValues("users", "create").Inc()
	s.logger.Info().Str("user_id", id).Str("username", in.Username).Msg("user created")
	return id, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.Get(ctx, id)
}

// List returns the requested page of users plus pagination totals.
func (s *UserService) List(ctx context.Context, page, size int) (*ports.UserPage, error) {
	skip := int64(page-1) * int64(size)

	items, err := s.repo.List(ctx, skip, int64(size))
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &ports.UserPage{
		Items: items,
		Total: total,
		Page:  page,
		Size:  size,
		Pages: totalPages(total, size),
	}, nil
}

// Update applies a partial update. An update with no set fields is rejected
// before the store is touched; an update that changed nothing is reported as
// not-found, matching the repository's boolean contract.
func (s *UserService) Update(ctx context.Context, id string, fields ports.UpdateUserFields) error {
	if fields.Empty() {
		return domain.ErrEmptyUpdate
	}

	updated, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return err
	}
	if !updated {
		return domain.ErrUserNotFound
	}

	metrics.DocumentsWrittenTotal.WithLabelValues("users", "update").Inc()
	s.logger.Info().Str("user_id", id).Msg("user updated")
	return nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrUserNotFound
	}

	metrics.DocumentsWrittenTotal.WithLabelValues("users", "delete").Inc()
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

// totalPages is the ceiling of total/size.
func totalPages(total int64, size int) int {
	if size <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}
