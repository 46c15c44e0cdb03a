package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/sessions"

	"activity-booking-platform/internal/api"
	"activity-booking-platform/internal/models"
)

const (
	// SessionName is the cookie name shared by every handler.
	SessionName = "booking-session"

	sessionTokenKey = "token"
	sessionUserKey  = "user"
)

const userKey contextKey = "current_user"

// SessionManager loads the signed-in user from the cookie session and makes
// the upstream bearer token available to the API client.
type SessionManager struct {
	store sessions.Store
}

func NewSessionManager(store sessions.Store) *SessionManager {
	return &SessionManager{store: store}
}

// LoadSession resolves the session on every request. An expired token clears
// the session instead of failing the request, so public pages keep working.
func (m *SessionManager) LoadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.store.Get(r, SessionName)
		if err != nil {
			// A corrupt cookie should not take the site down.
			next.ServeHTTP(w, r)
			return
		}

		token, _ := session.Values[sessionTokenKey].(string)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		if tokenExpired(token) {
			session.Options.MaxAge = -1
			_ = session.Save(r, w)
			next.ServeHTTP(w, r)
			return
		}

		ctx := api.WithToken(r.Context(), token)
		if userJSON, ok := session.Values[sessionUserKey].(string); ok && userJSON != "" {
			var user models.User
			if err := json.Unmarshal([]byte(userJSON), &user); err == nil {
				ctx = context.WithValue(ctx, userKey, &user)
			}
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SignIn stores the upstream token and user in the session.
func (m *SessionManager) SignIn(w http.ResponseWriter, r *http.Request, token string, user *models.User) error {
	// New still returns a usable session when the old cookie fails to decode
	session, _ := m.store.New(r, SessionName)
	if session == nil {
		return fmt.Errorf("failed to create session")
	}

	userJSON, err := json.Marshal(user)
	if err != nil {
		return err
	}

	session.Values[sessionTokenKey] = token
	session.Values[sessionUserKey] = string(userJSON)
	return session.Save(r, w)
}

// SignOut drops the session cookie.
func (m *SessionManager) SignOut(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.store.Get(r, SessionName)
	if session == nil {
		return nil
	}
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

// Session exposes the raw session for handlers that keep extra state in it,
// such as the cart selection.
func (m *SessionManager) Session(r *http.Request) (*sessions.Session, error) {
	return m.store.Get(r, SessionName)
}

func contextWithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext returns the signed-in user, or nil for guests.
func UserFromContext(ctx context.Context) *models.User {
	if user, ok := ctx.Value(userKey).(*models.User); ok {
		return user
	}
	return nil
}

// tokenExpired inspects the token's exp claim without verifying the
// signature. Verification belongs to the upstream API; this only avoids
// sending requests that are guaranteed to bounce.
func tokenExpired(token string) bool {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
