package faq

import (
	"errors"
	"log"
	"net/http"

	"github.com/SochesdaThoeun/mindspeak-sys/internal/api/handlers"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/faqs"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/validation"
)

// handleServiceError converts FAQ service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	if ve, ok := validation.AsError(err); ok {
		handlers.WriteValidationError(w, ve.Fields)
		return
	}

	switch {
	case errors.Is(err, faqs.ErrFAQNotFound):
		handlers.WriteError(w, http.StatusNotFound, "NotFound", "FAQ not found")
	default:
		log.Printf("FAQ error: %v", err)
		handlers.WriteError(w, http.StatusServiceUnavailable, "Unavailable", "FAQ backend unavailable")
	}
}
