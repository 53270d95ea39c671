package approval

import (
	"errors"
	"log"
	"net/http"

	"github.com/SochesdaThoeun/mindspeak-sys/internal/api/handlers"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/moderation"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/validation"
)

// handleServiceError converts moderation service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	if ve, ok := validation.AsError(err); ok {
		handlers.WriteValidationError(w, ve.Fields)
		return
	}

	switch {
	case errors.Is(err, moderation.ErrItemNotFound):
		handlers.WriteError(w, http.StatusNotFound, "NotFound", "Content item not found")
	case errors.Is(err, moderation.ErrAlreadyResolved):
		handlers.WriteError(w, http.StatusConflict, "Conflict", "Content item has already been resolved")
	case errors.Is(err, moderation.ErrInvalidContentType),
		errors.Is(err, moderation.ErrInvalidDecision),
		errors.Is(err, moderation.ErrInvalidStatus):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
	case errors.Is(err, moderation.ErrNotAuthorized):
		handlers.WriteError(w, http.StatusForbidden, "NotAuthorized", "Moderation rights required")
	default:
		log.Printf("Moderation error: %v", err)
		handlers.WriteError(w, http.StatusServiceUnavailable, "Unavailable", "Moderation backend unavailable")
	}
}
