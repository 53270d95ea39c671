package dashboard

import (
	"log"
	"net/http"

	"github.com/SochesdaThoeun/mindspeak-sys/internal/api/handlers"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/stats"
)

// OverviewHandler serves dashboard statistics
type OverviewHandler struct {
	service stats.Service
}

// NewOverviewHandler creates a new dashboard overview handler
func NewOverviewHandler(service stats.Service) *OverviewHandler {
	return &OverviewHandler{service: service}
}

// HandleOverview serves the headline counts
// GET /api/admin/stats/overview
func (h *OverviewHandler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.service.Overview(r.Context())
	if err != nil {
		log.Printf("Dashboard overview error: %v", err)
		handlers.WriteError(w, http.StatusServiceUnavailable, "Unavailable", "Statistics backend unavailable")
		return
	}

	handlers.WriteData(w, http.StatusOK, overview)
}
