package message

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/SochesdaThoeun/mindspeak-sys/internal/api/handlers"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/messages"
)

// ReplyHandler answers contact messages
type ReplyHandler struct {
	service messages.Service
}

// NewReplyHandler creates a new message reply handler
func NewReplyHandler(service messages.Service) *ReplyHandler {
	return &ReplyHandler{service: service}
}

// replyRequest is the body accepted by the reply endpoint
type replyRequest struct {
	Content string `json:"content"`
}

// HandleReply stores an admin reply and marks the message responded
// POST /api/admin/messages/{id}/reply  {"content": "..."}
func (h *ReplyHandler) HandleReply(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid message id")
		return
	}

	var req replyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	msg, err := h.service.Reply(r.Context(), id, req.Content)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteData(w, http.StatusOK, msg)
}
