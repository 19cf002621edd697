package store

import (
	"context"
	"errors"

	"github.com/adityarahman/staffgate/internal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the data access interface the rest of the service depends on.
// Concrete drivers (sqlite today) implement it. Every call consults the
// database directly; there is deliberately no in-process caching so state
// stays current across processes.
type Store interface {
	Users() Users

	ApplyMigrations() error

	// Close releases the underlying connection pool.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Users is the credential store. User records are created once and never
// updated or deleted by this service.
type Users interface {
	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByEmail is used during login. Returns ErrNotFound when no
	// user has that email. Lookup is case-sensitive, as stored.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// IsEmpty reports whether any user exists yet. Used by the seed flow.
	IsEmpty(ctx context.Context) (bool, error)
}
