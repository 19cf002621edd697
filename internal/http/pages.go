package http

import (
	"net/http"

	"github.com/adityarahman/staffgate/internal/domain"
	"github.com/adityarahman/staffgate/pkg/httpx"
	"github.com/adityarahman/staffgate/pkg/jwtx"
	"github.com/adityarahman/staffgate/pkg/slogx"
	"github.com/adityarahman/staffgate/web"
)

// PageHandler serves a single embedded page. The guard middleware in
// front of it decides who gets this far.
func PageHandler(name string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.ServeFileFS(w, r, web.Assets(), name)
	})
}

// RootHandler routes "/" by session state: a valid session redirects to
// the role's dashboard, anything else lands on the login page. It is not
// a guarded route; an anonymous visit is a normal case, not a failure.
type RootHandler struct {
	Codec         *jwtx.Codec
	SecureCookies bool
}

func (h *RootHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	raw, ok := httpx.SessionFromRequest(r)
	if !ok {
		h.serveLogin(w, r)
		return
	}

	claims, err := h.Codec.Verify(raw)
	if err != nil {
		log.Warn("stale session on root", "err", err)
		httpx.ClearSessionCookie(w, h.SecureCookies)
		h.serveLogin(w, r)
		return
	}

	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		// Valid signature but a role this build does not know; fall
		// back to the login page.
		log.Warn("session with unrecognized role on root", "role", claims.Role)
		h.serveLogin(w, r)
		return
	}

	http.Redirect(w, r, role.DashboardPath(), http.StatusFound)
}

func (h *RootHandler) serveLogin(w http.ResponseWriter, r *http.Request) {
	http.ServeFileFS(w, r, web.Assets(), "login.html")
}
