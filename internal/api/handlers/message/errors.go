package message

import (
	"errors"
	"log"
	"net/http"

	"github.com/SochesdaThoeun/mindspeak-sys/internal/api/handlers"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/messages"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/validation"
)

// handleServiceError converts message service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	if ve, ok := validation.AsError(err); ok {
		handlers.WriteValidationError(w, ve.Fields)
		return
	}

	switch {
	case errors.Is(err, messages.ErrMessageNotFound):
		handlers.WriteError(w, http.StatusNotFound, "NotFound", "Message not found")
	case errors.Is(err, messages.ErrInvalidStatus):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
	case errors.Is(err, messages.ErrInvalidTransition):
		handlers.WriteError(w, http.StatusConflict, "Conflict", "Message status cannot move backward")
	default:
		log.Printf("Message error: %v", err)
		handlers.WriteError(w, http.StatusServiceUnavailable, "Unavailable", "Message backend unavailable")
	}
}
