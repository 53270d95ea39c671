package faq

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/SochesdaThoeun/mindspeak-sys/internal/api/handlers"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/faqs"
)

// Handler serves FAQ knowledge-base CRUD
type Handler struct {
	service faqs.Service
}

// NewHandler creates a new FAQ handler
func NewHandler(service faqs.Service) *Handler {
	return &Handler{service: service}
}

// faqRequest is the body accepted by create and update
type faqRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// HandleList serves a page of FAQs
// GET /api/admin/faqs?page&per_page&search
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	perPage, _ := strconv.Atoi(q.Get("per_page"))

	list, meta, err := h.service.List(r.Context(), faqs.ListParams{
		Page:    page,
		PerPage: perPage,
		Search:  q.Get("search"),
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if list == nil {
		list = []*faqs.FAQ{}
	}
	handlers.WriteList(w, list, meta)
}

// HandleGet serves a single FAQ
// GET /api/admin/faqs/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := faqID(w, r)
	if !ok {
		return
	}

	faq, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteData(w, http.StatusOK, faq)
}

// HandleCreate creates a FAQ
// POST /api/admin/faqs  {"question": "...", "answer": "..."}
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req faqRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	faq, err := h.service.Create(r.Context(), req.Question, req.Answer)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteData(w, http.StatusCreated, faq)
}

// HandleUpdate updates a FAQ
// PUT /api/admin/faqs/{id}  {"question": "...", "answer": "..."}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := faqID(w, r)
	if !ok {
		return
	}

	var req faqRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	faq, err := h.service.Update(r.Context(), id, req.Question, req.Answer)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteData(w, http.StatusOK, faq)
}

// HandleDelete removes a FAQ
// DELETE /api/admin/faqs/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := faqID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteData(w, http.StatusOK, map[string]interface{}{})
}

func faqID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid FAQ id")
		return 0, false
	}
	return id, true
}
