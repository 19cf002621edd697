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

// SeedService provisions the first admin account. Registration only ever
// assigns the staff role, so this is the single path that creates an
// admin: at startup, when the users table is still empty and admin
// credentials were configured.
type SeedService struct {
	Store store.Store
}

// SeedAdmin creates the admin account if the store is empty. It reports
// whether an account was created. With empty credentials or a non-empty
// store it is a no-op.
func (s *SeedService) SeedAdmin(ctx context.Context, email, password string) (bool, error) {
	log := slogx.FromContext(ctx)

	if email == "" || password == "" {
		log.Debug("admin seed skipped, no credentials configured")
		return false, nil
	}

	empty, err := s.Store.Users().IsEmpty(ctx)
	if err != nil {
		return false, fmt.Errorf("check users: %w", err)
	}
	if !empty {
		return false, nil
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("hash admin password: %w", err)
	}

	id := idx.New().String()
	err = s.Store.Users().CreateUser(ctx, domain.User{
		ID:           id,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
	})
	if err != nil {
		// Another instance may have seeded between the emptiness check
		// and the insert.
		if errors.Is(err, store.ErrAlreadyExists) {
			return false, nil
		}
		return false, fmt.Errorf("create admin: %w", err)
	}

	log.Info("admin account seeded", "user_id", id)
	return true, nil
}
