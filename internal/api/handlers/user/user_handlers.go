package user

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/SochesdaThoeun/mindspeak-sys/internal/api/handlers"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/users"
)

// Handler serves admin user management
type Handler struct {
	service users.Service
}

// NewHandler creates a new user management handler
func NewHandler(service users.Service) *Handler {
	return &Handler{service: service}
}

// updateRequest is the body accepted by the update endpoint; absent fields
// are left unchanged
type updateRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Role  *string `json:"role"`
	Bio   *string `json:"bio"`
}

// HandleList serves a page of users with contribution counts
// GET /api/admin/users?page&per_page&search
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	perPage, _ := strconv.Atoi(q.Get("per_page"))

	list, meta, err := h.service.List(r.Context(), users.ListParams{
		Page:    page,
		PerPage: perPage,
		Search:  q.Get("search"),
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if list == nil {
		list = []*users.User{}
	}
	handlers.WriteList(w, list, meta)
}

// HandleUpdate applies admin edits to a user account
// PUT /api/admin/users/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	var role *users.Role
	if req.Role != nil {
		v := users.Role(*req.Role)
		role = &v
	}

	updated, err := h.service.Update(r.Context(), id, users.UpdateRequest{
		Name:  req.Name,
		Email: req.Email,
		Role:  role,
		Bio:   req.Bio,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteData(w, http.StatusOK, updated)
}

// HandleDelete permanently removes a user account
// DELETE /api/admin/users/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteData(w, http.StatusOK, map[string]interface{}{})
}

func userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid user id")
		return 0, false
	}
	return id, true
}
