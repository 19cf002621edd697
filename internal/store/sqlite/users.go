package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/adityarahman/staffgate/internal/domain"
)

type usersRepo struct {
	db *sql.DB
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	createdAt := u.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, email, password_hash, role, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.PasswordHash, u.Role.String(), createdAt,
	)
	if err != nil {
		return mapConstraint(err)
	}
	return nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, email, password_hash, role, created_at
		FROM users
		WHERE email = ?`,
		email,
	)

	var (
		u       domain.User
		roleStr string
	)
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &roleStr, &u.CreatedAt); err != nil {
		return domain.User{}, mapNotFound(err)
	}

	role, err := domain.ParseRole(roleStr)
	if err != nil {
		// A row with a role outside the enum is a data integrity problem,
		// not a missing user.
		return domain.User{}, err
	}
	u.Role = role

	return u, nil
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}
