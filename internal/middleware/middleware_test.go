package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"activity-booking-platform/internal/api"
	"activity-booking-platform/internal/models"
)

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestRequestIDGenerated(t *testing.T) {
	var seen string
	handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get("X-Request-ID"))
}

func TestRequestIDReusesInboundHeader(t *testing.T) {
	var seen string
	handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "upstream-id")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "upstream-id", seen)
}

func TestLoadSessionAttachesTokenAndUser(t *testing.T) {
	store := sessions.NewCookieStore([]byte("session-secret"))
	manager := NewSessionManager(store)

	// Sign in on one request, then replay the cookie on a second one.
	signInRec := httptest.NewRecorder()
	signInReq := httptest.NewRequest(http.MethodPost, "/login", nil)
	token := signedToken(t, time.Now().Add(time.Hour))
	err := manager.SignIn(signInRec, signInReq, token, &models.User{
		ID:    "user-1",
		Name:  "Dewi",
		Email: "dewi@example.com",
		Role:  models.RoleAdmin,
	})
	require.NoError(t, err)

	var gotToken string
	var gotUser *models.User
	handler := manager.LoadSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = api.TokenFromContext(r.Context())
		gotUser = UserFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range signInRec.Result().Cookies() {
		req.AddCookie(cookie)
	}
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, token, gotToken)
	require.NotNil(t, gotUser)
	assert.Equal(t, "Dewi", gotUser.Name)
	assert.True(t, gotUser.IsAdmin())
}

func TestLoadSessionDropsExpiredToken(t *testing.T) {
	store := sessions.NewCookieStore([]byte("session-secret"))
	manager := NewSessionManager(store)

	signInRec := httptest.NewRecorder()
	signInReq := httptest.NewRequest(http.MethodPost, "/login", nil)
	expired := signedToken(t, time.Now().Add(-time.Hour))
	require.NoError(t, manager.SignIn(signInRec, signInReq, expired, &models.User{ID: "user-1"}))

	var gotToken string
	var gotUser *models.User
	handler := manager.LoadSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = api.TokenFromContext(r.Context())
		gotUser = UserFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range signInRec.Result().Cookies() {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Empty(t, gotToken)
	assert.Nil(t, gotUser)
}

func TestLoggingMiddlewarePreservesFlusher(t *testing.T) {
	var isFlusher bool
	handler := LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, isFlusher = w.(http.Flusher)
		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, isFlusher, "wrapped writer must stay flushable for event streams")
	assert.True(t, rec.Flushed)
}

func TestRequireAuth(t *testing.T) {
	handler := RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdmin(t *testing.T) {
	handler := RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name string
		user *models.User
		want int
	}{
		{name: "guest", user: nil, want: http.StatusUnauthorized},
		{name: "regular user", user: &models.User{Role: models.RoleUser}, want: http.StatusForbidden},
		{name: "admin", user: &models.User{Role: models.RoleAdmin}, want: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.user != nil {
				ctx := contextWithUser(req.Context(), tt.user)
				req = req.WithContext(ctx)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
