package http

import (
	"net/http"

	"github.com/adityarahman/staffgate/pkg/httpx"
)

// apiError is a client-visible failure. Messages are fixed strings:
// authentication failures never say whether the email or the password
// was wrong, and server errors never leak internal detail.
type apiError struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
}

func (e *apiError) Error() string { return e.Message }

// WriteTo writes the error as a JSON response body.
func (e *apiError) WriteTo(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.Status, map[string]string{"message": e.Message})
}

var (
	errMissingFields = &apiError{
		Status:  http.StatusBadRequest,
		Message: "Email and password are required.",
	}

	errInvalidCredentials = &apiError{
		Status:  http.StatusUnauthorized,
		Message: "Invalid email or password.",
	}

	errEmailTaken = &apiError{
		Status:  http.StatusConflict,
		Message: "Email is already registered.",
	}

	errServer = &apiError{
		Status:  http.StatusInternalServerError,
		Message: "An internal server error occurred.",
	}
)
