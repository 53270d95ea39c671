package message

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/SochesdaThoeun/mindspeak-sys/internal/api/handlers"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/messages"
)

// StatusHandler moves messages along the read workflow
type StatusHandler struct {
	service messages.Service
}

// NewStatusHandler creates a new message status handler
func NewStatusHandler(service messages.Service) *StatusHandler {
	return &StatusHandler{service: service}
}

// statusRequest is the body accepted by the status endpoint
type statusRequest struct {
	Status string `json:"status"`
}

// HandleUpdateStatus sets a message's workflow status
// PATCH /api/admin/messages/{id}/status  {"status": "read" | "responded"}
func (h *StatusHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid message id")
		return
	}

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	msg, err := h.service.SetStatus(r.Context(), id, messages.Status(req.Status))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteData(w, http.StatusOK, map[string]interface{}{
		"id":         msg.ID,
		"status":     msg.Status,
		"updated_at": msg.UpdatedAt,
	})
}
