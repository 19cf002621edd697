package httpx

import (
	"context"

	"github.com/adityarahman/staffgate/internal/domain"
	"github.com/adityarahman/staffgate/pkg/jwtx"
)

type ctxKey string

const (
	CtxKeyUserID ctxKey = "user_id"
	CtxKeyEmail  ctxKey = "email"
	CtxKeyRole   ctxKey = "role"
	CtxKeyClaims ctxKey = "claims"
)

func contextWithSession(ctx context.Context, c jwtx.Claims, role domain.Role) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, c.Subject)
	ctx = context.WithValue(ctx, CtxKeyEmail, c.Email)
	ctx = context.WithValue(ctx, CtxKeyRole, role)
	ctx = context.WithValue(ctx, CtxKeyClaims, c)
	return ctx
}

// RoleFromContext returns the authenticated role, if Authenticate ran.
func RoleFromContext(ctx context.Context) (domain.Role, bool) {
	r, ok := ctx.Value(CtxKeyRole).(domain.Role)
	return r, ok
}

// EmailFromContext returns the authenticated email, if Authenticate ran.
func EmailFromContext(ctx context.Context) (string, bool) {
	e, ok := ctx.Value(CtxKeyEmail).(string)
	return e, ok
}
