package http

import (
	"net/http"

	"github.com/adityarahman/staffgate/pkg/httpx"
)

type LogoutHandler struct {
	SecureCookies bool
}

// ServeHTTP clears the session cookie unconditionally. Logging out
// without a session is still a success.
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	httpx.ClearSessionCookie(w, h.SecureCookies)
	httpx.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Logged out.",
	})
}
