package httpx

import (
	"net/http"

	"github.com/adityarahman/staffgate/internal/domain"
	"github.com/adityarahman/staffgate/pkg/jwtx"
	"github.com/adityarahman/staffgate/pkg/slogx"
)

// LoginPath is where unauthenticated browser requests get sent.
const LoginPath = "/login.html"

// Authenticate is the first guard gate. Three outcomes per request:
//
//   - no session cookie: redirect to the login page (browsers get the
//     login UI, not a bare 401)
//   - cookie present but the token fails verification: clear the cookie
//     and redirect to the login page
//   - token verifies: attach the claims to the request context and
//     continue to the next gate or handler
func Authenticate(codec *jwtx.Codec, secure bool) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw, ok := SessionFromRequest(r)
			if !ok {
				log.Debug("no session cookie, redirecting to login")
				http.Redirect(w, r, LoginPath, http.StatusFound)
				return
			}

			claims, err := codec.Verify(raw)
			if err != nil {
				// The reason (expired, bad signature, malformed) stays in
				// the logs; the client just gets sent back to login.
				log.Warn("session token rejected", "err", err)
				ClearSessionCookie(w, secure)
				http.Redirect(w, r, LoginPath, http.StatusFound)
				return
			}

			role, err := domain.ParseRole(claims.Role)
			if err != nil {
				log.Warn("session token carries unknown role", "role", claims.Role)
				ClearSessionCookie(w, secure)
				http.Redirect(w, r, LoginPath, http.StatusFound)
				return
			}

			next.ServeHTTP(w, r.WithContext(contextWithSession(ctx, claims, role)))
		})
	}
}
