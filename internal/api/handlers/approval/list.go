package approval

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/SochesdaThoeun/mindspeak-sys/internal/api/handlers"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/moderation"
)

// ListHandler serves the per-status content lists
type ListHandler struct {
	service moderation.Service
}

// NewListHandler creates a new content list handler
func NewListHandler(service moderation.Service) *ListHandler {
	return &ListHandler{service: service}
}

// HandleListPosts serves one post status bucket
// GET /api/admin/posts/{status}?page&per_page&search
func (h *ListHandler) HandleListPosts(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, moderation.ContentTypePost)
}

// HandleListComments serves one comment status bucket
// GET /api/admin/comments/{status}?page&per_page&search
func (h *ListHandler) HandleListComments(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, moderation.ContentTypeComment)
}

func (h *ListHandler) list(w http.ResponseWriter, r *http.Request, ct moderation.ContentType) {
	status := moderation.Status(chi.URLParam(r, "status"))
	if !status.Valid() {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "status must be 'pending', 'approved' or 'rejected'")
		return
	}

	params := listParams(r)
	items, meta, err := h.service.ListByStatus(r.Context(), ct, status, params)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if items == nil {
		items = []*moderation.Item{}
	}
	handlers.WriteList(w, items, meta)
}

// listParams extracts page/per_page/search query parameters
func listParams(r *http.Request) moderation.ListParams {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	perPage, _ := strconv.Atoi(q.Get("per_page"))
	return moderation.ListParams{
		Page:    page,
		PerPage: perPage,
		Search:  q.Get("search"),
	}
}
