package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/SochesdaThoeun/mindspeak-sys/internal/api/handlers/dashboard"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/api/middleware"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/stats"
)

// RegisterDashboardRoutes registers the dashboard statistics endpoints
func RegisterDashboardRoutes(r chi.Router, service stats.Service, auth *middleware.SessionAuthMiddleware, limiter *middleware.RateLimiter) {
	handler := dashboard.NewOverviewHandler(service)

	r.Route("/api/admin/stats", func(r chi.Router) {
		r.Use(auth.RequireAdmin)
		r.Use(limiter.Middleware)

		r.Get("/overview", handler.HandleOverview)
	})
}
