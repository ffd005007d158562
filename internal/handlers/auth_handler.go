package handlers

import (
	"net/http"
	"time"

	"kidlearn/internal/security"
	"kidlearn/internal/service"
)

// AuthHandler handles login, logout and the current-account endpoint
type AuthHandler struct {
	authService          *service.AuthService
	childSessionDuration time.Duration
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, childSessionDuration time.Duration) *AuthHandler {
	return &AuthHandler{
		authService:          authService,
		childSessionDuration: childSessionDuration,
	}
}

// Login handles POST /api/login for parent accounts
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	session, user, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	http.SetCookie(w, security.CreateSessionCookie(r, security.SessionCookieName, session.ID, session.ExpiresAt))
	respondJSON(w, http.StatusOK, user)
}

// ChildLogin handles POST /api/child/login. The body carries either an
// avatar color or a username; no password is involved.
func (h *AuthHandler) ChildLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Identifier string `json:"identifier"`
		Avatar     string `json:"avatar"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	identifier := req.Identifier
	if identifier == "" {
		identifier = req.Avatar
	}

	token, child, err := h.authService.ChildLogin(identifier)
	if err != nil {
		respondError(w, err)
		return
	}

	expires := time.Now().Add(h.childSessionDuration)
	http.SetCookie(w, security.CreateSessionCookie(r, security.ChildCookieName, token, expires))
	respondJSON(w, http.StatusOK, child)
}

// Logout handles POST /api/logout for both account kinds
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(security.SessionCookieName); err == nil {
		if err := h.authService.Logout(cookie.Value); err != nil {
			respondError(w, err)
			return
		}
	}

	http.SetCookie(w, security.CreateDeleteCookie(r, security.SessionCookieName))
	http.SetCookie(w, security.CreateDeleteCookie(r, security.ChildCookieName))
	respondJSON(w, http.StatusOK, errorResponse{Message: "logged out"})
}

// Me handles GET /api/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, GetUserFromContext(r.Context()))
}
