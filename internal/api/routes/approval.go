package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/SochesdaThoeun/mindspeak-sys/internal/api/handlers/approval"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/api/middleware"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/moderation"
)

// RegisterApprovalRoutes registers the content moderation endpoints
func RegisterApprovalRoutes(r chi.Router, service moderation.Service, auth *middleware.SessionAuthMiddleware, limiter *middleware.RateLimiter) {
	listHandler := approval.NewListHandler(service)
	decideHandler := approval.NewDecideHandler(service)
	deleteHandler := approval.NewDeleteHandler(service)

	r.Route("/api/admin/posts", func(r chi.Router) {
		// Auth first so the limiter keys on the admin identity
		r.Use(auth.RequireAdmin)
		r.Use(limiter.Middleware)

		// GET /api/admin/posts/{status} - one status bucket, paginated
		r.Get("/{status:pending|approved|rejected}", listHandler.HandleListPosts)

		r.Post("/{id}/approve", decideHandler.HandleApprovePost)
		r.Post("/{id}/reject", decideHandler.HandleRejectPost)
		r.Delete("/{id}", deleteHandler.HandleDeletePost)
	})

	r.Route("/api/admin/comments", func(r chi.Router) {
		r.Use(auth.RequireAdmin)
		r.Use(limiter.Middleware)

		r.Get("/{status:pending|approved|rejected}", listHandler.HandleListComments)

		r.Post("/{id}/approve", decideHandler.HandleApproveComment)
		r.Post("/{id}/reject", decideHandler.HandleRejectComment)
		r.Delete("/{id}", deleteHandler.HandleDeleteComment)
	})
}
