// Package jwtx signs and verifies the session tokens carried in the
// session cookie. Tokens are compact HS256 JWTs signed with a single
// process-wide symmetric secret; nothing is stored server-side.
package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is the default session token lifetime. The cookie
// MaxAge is derived from the same duration so both expire together.
const DefaultSessionTTL = time.Hour

// Claims are the session token payload: identity plus role, snapshotted
// at login. A later role change is only reflected once a new session is
// issued.
type Claims struct {
	jwt.RegisteredClaims

	// Email of the authenticated user.
	Email string `json:"email,omitempty"`

	// Role the user held at issuance ("admin" or "staff").
	Role string `json:"role,omitempty"`
}

// NewSessionClaims builds minimally-correct session claims.
func NewSessionClaims(
	subject, email, role, issuer string,
	ttl time.Duration,
	now time.Time,
) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: email,
		Role:  role,
	}
}
