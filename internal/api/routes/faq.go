package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/SochesdaThoeun/mindspeak-sys/internal/api/handlers/faq"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/api/middleware"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/faqs"
)

// RegisterFAQRoutes registers the FAQ knowledge-base endpoints
func RegisterFAQRoutes(r chi.Router, service faqs.Service, auth *middleware.SessionAuthMiddleware, limiter *middleware.RateLimiter) {
	handler := faq.NewHandler(service)

	r.Route("/api/admin/faqs", func(r chi.Router) {
		r.Use(auth.RequireAdmin)
		r.Use(limiter.Middleware)

		r.Get("/", handler.HandleList)
		r.Post("/", handler.HandleCreate)
		r.Get("/{id}", handler.HandleGet)
		r.Put("/{id}", handler.HandleUpdate)
		r.Delete("/{id}", handler.HandleDelete)
	})
}
