package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/users"
)

// Context keys for storing admin session information
type contextKey string

const (
	AdminIDKey   contextKey = "admin_id"
	AdminRoleKey contextKey = "admin_role"
)

// SessionName is the admin session cookie name
const SessionName = "mindspeak_admin"

// SessionAuthMiddleware enforces an authenticated admin session for
// protected routes. Login and password handling live elsewhere; this
// middleware only reads the established session.
type SessionAuthMiddleware struct {
	store sessions.Store
}

// NewSessionAuthMiddleware creates a session auth middleware backed by a
// cookie store
func NewSessionAuthMiddleware(secret string) *SessionAuthMiddleware {
	return &SessionAuthMiddleware{
		store: sessions.NewCookieStore([]byte(secret)),
	}
}

// NewSessionAuthMiddlewareWithStore creates a session auth middleware with a
// custom store, used by tests
func NewSessionAuthMiddlewareWithStore(store sessions.Store) *SessionAuthMiddleware {
	return &SessionAuthMiddleware{store: store}
}

// RequireAdmin ensures the request carries a session for a moderator or
// admin account. Missing or anonymous sessions get 401; a plain user role
// gets 403. On success the admin id and role are injected into context.
func (m *SessionAuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.store.Get(r, SessionName)
		if err != nil {
			log.Printf("[AUTH_FAILURE] type=bad_session ip=%s method=%s path=%s error=%v",
				r.RemoteAddr, r.Method, r.URL.Path, err)
			writeAuthError(w, http.StatusUnauthorized, "AuthRequired", "Invalid session")
			return
		}

		adminID, ok := session.Values["admin_id"].(int64)
		if !ok || adminID == 0 {
			writeAuthError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
			return
		}

		role, _ := session.Values["role"].(string)
		if role != string(users.RoleAdmin) && role != string(users.RoleModerator) {
			log.Printf("[AUTH_FAILURE] type=forbidden ip=%s method=%s path=%s admin=%d role=%s",
				r.RemoteAddr, r.Method, r.URL.Path, adminID, role)
			writeAuthError(w, http.StatusForbidden, "NotAuthorized", "Moderation rights required")
			return
		}

		ctx := context.WithValue(r.Context(), AdminIDKey, adminID)
		ctx = context.WithValue(ctx, AdminRoleKey, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAdminID returns the authenticated admin's id from the request context,
// or 0 if the request is unauthenticated
func GetAdminID(r *http.Request) int64 {
	if id, ok := r.Context().Value(AdminIDKey).(int64); ok {
		return id
	}
	return 0
}

// GetAdminRole returns the authenticated admin's role from the request context
func GetAdminRole(r *http.Request) string {
	if role, ok := r.Context().Value(AdminRoleKey).(string); ok {
		return role
	}
	return ""
}

func writeAuthError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   errorType,
		"message": message,
	}); err != nil {
		log.Printf("Failed to encode auth error: %v", err)
	}
}
