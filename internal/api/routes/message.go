package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/SochesdaThoeun/mindspeak-sys/internal/api/handlers/message"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/api/middleware"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/messages"
)

// RegisterMessageRoutes registers the contact-message workflow endpoints
func RegisterMessageRoutes(r chi.Router, service messages.Service, auth *middleware.SessionAuthMiddleware, limiter *middleware.RateLimiter) {
	listHandler := message.NewListHandler(service)
	replyHandler := message.NewReplyHandler(service)
	statusHandler := message.NewStatusHandler(service)

	r.Route("/api/admin/messages", func(r chi.Router) {
		r.Use(auth.RequireAdmin)
		r.Use(limiter.Middleware)

		r.Get("/", listHandler.HandleList)
		r.Get("/unread-count", listHandler.HandleUnreadCount)
		r.Post("/{id}/reply", replyHandler.HandleReply)
		r.Patch("/{id}/status", statusHandler.HandleUpdateStatus)
	})
}
