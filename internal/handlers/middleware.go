package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"kidlearn/internal/models"
	"kidlearn/internal/security"
	"kidlearn/internal/service"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const UserContextKey ContextKey = "user"

// Middleware holds dependencies for middleware functions
type Middleware struct {
	authService *service.AuthService
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(authService *service.AuthService) *Middleware {
	return &Middleware{authService: authService}
}

// RequireAuth requires either a parent session or a child token and
// puts the resolved account into the request context.
func (m *Middleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := m.resolveUser(r)
		if user == nil {
			respondMessage(w, http.StatusUnauthorized, "authentication required")
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)
		next(w, r.WithContext(ctx))
	}
}

// RequireParent requires an authenticated parent account
func (m *Middleware) RequireParent(next http.HandlerFunc) http.HandlerFunc {
	return m.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		user := GetUserFromContext(r.Context())
		if !user.IsParent {
			respondMessage(w, http.StatusForbidden, "parent account required")
			return
		}
		next(w, r)
	})
}

func (m *Middleware) resolveUser(r *http.Request) *models.User {
	if cookie, err := r.Cookie(security.SessionCookieName); err == nil {
		if user, err := m.authService.ValidateSession(cookie.Value); err == nil {
			return user
		}
	}

	if cookie, err := r.Cookie(security.ChildCookieName); err == nil {
		if user, err := m.authService.ValidateChildToken(cookie.Value); err == nil {
			return user
		}
	}

	return nil
}

// Logging middleware logs HTTP requests
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

// GetUserFromContext retrieves the user from the request context
func GetUserFromContext(ctx context.Context) *models.User {
	user, ok := ctx.Value(UserContextKey).(*models.User)
	if !ok {
		return nil
	}
	return user
}
