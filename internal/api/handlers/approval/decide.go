package approval

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/SochesdaThoeun/mindspeak-sys/internal/api/handlers"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/moderation"
)

// DecideHandler resolves pending content items
type DecideHandler struct {
	service moderation.Service
}

// NewDecideHandler creates a new moderation decision handler
func NewDecideHandler(service moderation.Service) *DecideHandler {
	return &DecideHandler{service: service}
}

// rejectRequest is the body accepted by the reject endpoints
type rejectRequest struct {
	AdminNote string `json:"admin_note"`
}

// HandleApprovePost approves a pending post
// POST /api/admin/posts/{id}/approve
func (h *DecideHandler) HandleApprovePost(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, moderation.ContentTypePost, moderation.DecisionApprove)
}

// HandleRejectPost rejects a pending post, optionally with a note
// POST /api/admin/posts/{id}/reject  {"admin_note": "..."}
func (h *DecideHandler) HandleRejectPost(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, moderation.ContentTypePost, moderation.DecisionReject)
}

// HandleApproveComment approves a pending comment
// POST /api/admin/comments/{id}/approve
func (h *DecideHandler) HandleApproveComment(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, moderation.ContentTypeComment, moderation.DecisionApprove)
}

// HandleRejectComment rejects a pending comment, optionally with a note
// POST /api/admin/comments/{id}/reject  {"admin_note": "..."}
func (h *DecideHandler) HandleRejectComment(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, moderation.ContentTypeComment, moderation.DecisionReject)
}

func (h *DecideHandler) decide(w http.ResponseWriter, r *http.Request, ct moderation.ContentType, decision moderation.Decision) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid item id")
		return
	}

	var note string
	if decision == moderation.DecisionReject {
		var req rejectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
			handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
			return
		}
		note = req.AdminNote
	}

	item, err := h.service.Decide(r.Context(), moderation.DecideRequest{
		ContentType: ct,
		ItemID:      id,
		Decision:    decision,
		Note:        note,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteData(w, http.StatusOK, item)
}
