package domain

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt encoded
	Role         Role
	CreatedAt    time.Time
}
