package user

import (
	"errors"
	"log"
	"net/http"

	"github.com/SochesdaThoeun/mindspeak-sys/internal/api/handlers"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/users"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/validation"
)

// handleServiceError converts user service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	if ve, ok := validation.AsError(err); ok {
		handlers.WriteValidationError(w, ve.Fields)
		return
	}

	switch {
	case errors.Is(err, users.ErrUserNotFound):
		handlers.WriteError(w, http.StatusNotFound, "NotFound", "User not found")
	case errors.Is(err, users.ErrEmailAlreadyTaken):
		handlers.WriteError(w, http.StatusConflict, "Conflict", "Email already taken")
	default:
		log.Printf("User management error: %v", err)
		handlers.WriteError(w, http.StatusServiceUnavailable, "Unavailable", "User backend unavailable")
	}
}
