package service

import (
	"fmt"
	"time"

	"github.com/adityarahman/staffgate/internal/domain"
	"github.com/adityarahman/staffgate/pkg/jwtx"
)

// SessionService issues session tokens. It is stateless: the signed token
// is the only record of the session, so multiple server instances need no
// coordination.
type SessionService struct {
	Codec  *jwtx.Codec
	Issuer string
	TTL    time.Duration // 0 means jwtx.DefaultSessionTTL
}

// Issue signs a session token snapshotting the user's identity and role.
func (s *SessionService) Issue(u domain.User) (string, error) {
	claims := jwtx.NewSessionClaims(
		u.ID, u.Email, u.Role.String(),
		s.Issuer, s.SessionTTL(), time.Now().UTC(),
	)

	token, err := s.Codec.Sign(claims)
	if err != nil {
		return "", fmt.Errorf("issue session: %w", err)
	}
	return token, nil
}

// SessionTTL is the lifetime applied to both the token exp and the
// cookie MaxAge.
func (s *SessionService) SessionTTL() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return jwtx.DefaultSessionTTL
}
