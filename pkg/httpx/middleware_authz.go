package httpx

import (
	"net/http"

	"github.com/adityarahman/staffgate/internal/domain"
	"github.com/adityarahman/staffgate/pkg/slogx"
)

// ForbiddenMessage is the fixed denial text for role mismatches.
const ForbiddenMessage = "Access denied: you do not have permission to access this page."

// RequireRole is the second guard gate: the authenticated role must be a
// member of the allowed set. It assumes Authenticate already ran and
// populated the request context; a request arriving without claims is
// denied the same way as a role mismatch.
func RequireRole(allowed ...domain.Role) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			role, ok := RoleFromContext(ctx)
			if !ok || !role.In(allowed...) {
				email, _ := EmailFromContext(ctx)
				log.Warn("access denied",
					"email", email,
					"role", role.String(),
					"required", rolesToStrings(allowed),
				)
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(ForbiddenMessage))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func rolesToStrings(roles []domain.Role) []string {
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = r.String()
	}
	return out
}
