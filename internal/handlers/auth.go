package handlers

import (
	"context"
	"net/http"

	"activity-booking-platform/internal/api"
	"activity-booking-platform/internal/middleware"
	"activity-booking-platform/internal/models"
)

// AuthAPI is the slice of the upstream API the auth handlers depend on
type AuthAPI interface {
	Login(ctx context.Context, req *models.LoginRequest) (*api.LoginResult, error)
	Logout(ctx context.Context) error
}

// AuthHandlers proxies authentication to the upstream API and keeps the
// resulting token in the cookie session
type AuthHandlers struct {
	authAPI  AuthAPI
	sessions *middleware.SessionManager
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authAPI AuthAPI, sessions *middleware.SessionManager) *AuthHandlers {
	return &AuthHandlers{
		authAPI:  authAPI,
		sessions: sessions,
	}
}

// Login handles POST /api/login
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.authAPI.Login(r.Context(), &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	if err := h.sessions.SignIn(w, r, result.Token, result.User); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to start session")
		return
	}

	respondJSON(w, http.StatusOK, result.User)
}

// Logout handles POST /api/logout. The upstream logout is best effort; the
// local session is cleared either way.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	_ = h.authAPI.Logout(r.Context())

	if err := h.sessions.SignOut(w, r); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to end session")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// Me handles GET /api/me
func (h *AuthHandlers) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	respondJSON(w, http.StatusOK, user)
}
