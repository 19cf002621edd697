package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/adityarahman/staffgate/internal/domain"
	"github.com/adityarahman/staffgate/internal/store"
	"github.com/adityarahman/staffgate/pkg/cryptox"
	"github.com/adityarahman/staffgate/pkg/idx"
	"github.com/adityarahman/staffgate/pkg/slogx"
)

var (
	// ErrEmailTaken reports a registration against an existing email.
	ErrEmailTaken = errors.New("service: email already registered")

	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password so the two cases cannot be told apart by a caller.
	ErrInvalidCredentials = errors.New("service: invalid credentials")
)

// AuthService implements registration and credential verification on top
// of the credential store.
type AuthService struct {
	Store store.Store
}

// Register hashes the password and creates a user with the default staff
// role. Admins are never created through this path.
func (s *AuthService) Register(ctx context.Context, email, password string) (string, error) {
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	id := idx.New().String()
	err = s.Store.Users().CreateUser(ctx, domain.User{
		ID:           id,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.DefaultRole,
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return "", ErrEmailTaken
		}
		return "", fmt.Errorf("create user: %w", err)
	}

	slogx.FromContext(ctx).Info("user registered", "user_id", id, "role", domain.DefaultRole.String())
	return id, nil
}

// Login verifies the credentials and returns the matching user. Lookup
// misses and password mismatches both map to ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, fmt.Errorf("lookup user: %w", err)
	}

	if !cryptox.VerifyPassword(password, u.PasswordHash) {
		return domain.User{}, ErrInvalidCredentials
	}

	slogx.FromContext(ctx).Info("user authenticated", "user_id", u.ID, "role", u.Role.String())
	return u, nil
}
