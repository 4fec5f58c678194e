// Package service provides the business logic layer for the library:
// member registration, catalog management, circulation, and statistics.
package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/openshelf/openshelf-server/internal/auth"
	"github.com/openshelf/openshelf-server/internal/domain"
	"github.com/openshelf/openshelf-server/internal/errors"
	"github.com/openshelf/openshelf-server/internal/store"
)

// UserService manages library member accounts.
type UserService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewUserService creates a new user service.
func NewUserService(store *store.Store, logger *slog.Logger) *UserService {
	return &UserService{
		store:  store,
		logger: logger,
	}
}

// Register creates a new member account. The password is stored as an
// argon2id hash, never in the clear.
func (s *UserService) Register(ctx context.Context, name, password string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.InvalidInput("user name cannot be empty")
	}
	if password == "" {
		return nil, errors.InvalidInput("password cannot be empty")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to hash password")
	}

	user := &domain.User{
		Name:         name,
		PasswordHash: hash,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "name", name)
	return user, nil
}

// Authenticate verifies a member's credentials. It returns false for an
// unknown name or a wrong password without distinguishing the two.
func (s *UserService) Authenticate(ctx context.Context, name, password string) (bool, error) {
	user, err := s.store.GetUser(ctx, name)
	if err != nil {
		if errors.Is(err, errors.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}

	ok, err := auth.VerifyPassword(user.PasswordHash, password)
	if err != nil {
		return false, errors.Wrap(err, errors.CodeInternal, "failed to verify password")
	}
	return ok, nil
}
