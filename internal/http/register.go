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

type RegisterHandler struct {
	AuthService *service.AuthService
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// ServeHTTP creates a new account with the default staff role.
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errMissingFields.WriteTo(w)
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		errMissingFields.WriteTo(w)
		return
	}

	userID, err := h.AuthService.Register(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			errEmailTaken.WriteTo(w)
			return
		}
		log.Error("registration failed", "err", err)
		errServer.WriteTo(w)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, registerResponse{
		Message: "Registration successful. Please log in.",
		UserID:  userID,
	})
}
