package approval

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/SochesdaThoeun/mindspeak-sys/internal/api/handlers"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/moderation"
)

// DeleteHandler permanently removes content items
type DeleteHandler struct {
	service moderation.Service
}

// NewDeleteHandler creates a new content delete handler
func NewDeleteHandler(service moderation.Service) *DeleteHandler {
	return &DeleteHandler{service: service}
}

// HandleDeletePost permanently deletes a post
// DELETE /api/admin/posts/{id}
func (h *DeleteHandler) HandleDeletePost(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, moderation.ContentTypePost)
}

// HandleDeleteComment permanently deletes a comment
// DELETE /api/admin/comments/{id}
func (h *DeleteHandler) HandleDeleteComment(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, moderation.ContentTypeComment)
}

func (h *DeleteHandler) delete(w http.ResponseWriter, r *http.Request, ct moderation.ContentType) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid item id")
		return
	}

	if err := h.service.Delete(r.Context(), ct, id); err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteData(w, http.StatusOK, map[string]interface{}{})
}
