package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/pagination"
)

// ErrorResponse is the envelope every error reply uses
type ErrorResponse struct {
	Error   string              `json:"error"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// WriteError writes a JSON error response with the given status code
func WriteError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: code, Message: message}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}

// WriteValidationError writes a 422 with field-level messages
func WriteValidationError(w http.ResponseWriter, fields map[string][]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	resp := ErrorResponse{
		Error:   "ValidationFailed",
		Message: "The given data was invalid",
		Errors:  fields,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("Failed to encode validation response: %v", err)
	}
}

// WriteData writes a single resource wrapped in the data envelope
func WriteData(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{"data": data}); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// WriteList writes a list response with its pagination meta block
func WriteList(w http.ResponseWriter, data interface{}, meta pagination.Pagination) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	resp := map[string]interface{}{
		"data": data,
		"meta": map[string]interface{}{
			"pagination": meta,
		},
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("Failed to encode list response: %v", err)
	}
}
