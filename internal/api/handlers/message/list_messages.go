package message

import (
	"net/http"
	"strconv"

	"github.com/SochesdaThoeun/mindspeak-sys/internal/api/handlers"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/messages"
)

// ListHandler serves the admin message inbox
type ListHandler struct {
	service messages.Service
}

// NewListHandler creates a new message list handler
func NewListHandler(service messages.Service) *ListHandler {
	return &ListHandler{service: service}
}

// HandleList serves a page of messages, optionally filtered by status
// GET /api/admin/messages?page&per_page&status&search
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	perPage, _ := strconv.Atoi(q.Get("per_page"))

	msgs, meta, err := h.service.List(r.Context(), messages.ListParams{
		Page:    page,
		PerPage: perPage,
		Status:  messages.Status(q.Get("status")),
		Search:  q.Get("search"),
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if msgs == nil {
		msgs = []*messages.Message{}
	}
	handlers.WriteList(w, msgs, meta)
}

// HandleUnreadCount serves the unread badge count
// GET /api/admin/messages/unread-count
func (h *ListHandler) HandleUnreadCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.UnreadCount(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteData(w, http.StatusOK, map[string]interface{}{
		"unread_count": count,
	})
}
