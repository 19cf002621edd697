package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/adityarahman/staffgate/internal/service"
	"github.com/adityarahman/staffgate/pkg/httpx"
	"github.com/adityarahman/staffgate/pkg/slogx"
)

type LoginHandler struct {
	AuthService    *service.AuthService
	SessionService *service.SessionService
	SecureCookies  bool
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message    string `json:"message"`
	Role       string `json:"role"`
	RedirectTo string `json:"redirectTo"`
}

// ServeHTTP verifies credentials, issues a session token and stores it in
// the session cookie. A new login simply overwrites any previous session
// cookie; at most one session is carried per client.
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errMissingFields.WriteTo(w)
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		errMissingFields.WriteTo(w)
		return
	}

	user, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		// Unknown email and wrong password produce the same response.
		if errors.Is(err, service.ErrInvalidCredentials) {
			errInvalidCredentials.WriteTo(w)
			return
		}
		log.Error("login failed", "err", err)
		errServer.WriteTo(w)
		return
	}

	token, err := h.SessionService.Issue(user)
	if err != nil {
		log.Error("session issue failed", "user_id", user.ID, "err", err)
		errServer.WriteTo(w)
		return
	}

	httpx.SetSessionCookie(w, token, h.SessionService.SessionTTL(), h.SecureCookies)
	httpx.WriteJSON(w, http.StatusOK, loginResponse{
		Message:    "Login successful.",
		Role:       user.Role.String(),
		RedirectTo: user.Role.DashboardPath(),
	})
}
