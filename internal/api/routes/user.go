package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/SochesdaThoeun/mindspeak-sys/internal/api/handlers/user"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/api/middleware"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/users"
)

// RegisterUserRoutes registers the admin user-management endpoints
func RegisterUserRoutes(r chi.Router, service users.Service, auth *middleware.SessionAuthMiddleware, limiter *middleware.RateLimiter) {
	handler := user.NewHandler(service)

	r.Route("/api/admin/users", func(r chi.Router) {
		r.Use(auth.RequireAdmin)
		r.Use(limiter.Middleware)

		r.Get("/", handler.HandleList)
		r.Put("/{id}", handler.HandleUpdate)
		r.Delete("/{id}", handler.HandleDelete)
	})
}
