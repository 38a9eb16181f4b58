package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mitrasinergi/sales-api/internal/auth"
	"github.com/mitrasinergi/sales-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthMiddleware() *auth.Middleware {
	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret: testSecret,
			APIKey:    "system-key",
		},
	}
	return auth.NewMiddleware(cfg, zap.NewNop())
}

func okHandler(captured **auth.UserContext) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user, ok := auth.FromContext(r.Context()); ok {
			*captured = user
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate_APIKey(t *testing.T) {
	var user *auth.UserContext
	handler := newAuthMiddleware().Authenticate(okHandler(&user))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
	req.Header.Set("x-api-key", "system-key")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, user)
	assert.True(t, user.HasRole(auth.RoleAPIService))
	assert.True(t, user.IsAdmin())
}

func TestAuthenticate_InvalidAPIKey(t *testing.T) {
	var user *auth.UserContext
	handler := newAuthMiddleware().Authenticate(okHandler(&user))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
	req.Header.Set("x-api-key", "wrong-key")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, user)
}

func TestAuthenticate_BearerToken(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "dewi@mitrasinergi.co.id",
		"roles": []string{"sales"},
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	var user *auth.UserContext
	handler := newAuthMiddleware().Authenticate(okHandler(&user))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, user)
	assert.True(t, user.CanWrite())
	assert.False(t, user.IsAdmin())
}

func TestAuthenticate_MissingCredentials(t *testing.T) {
	var user *auth.UserContext
	handler := newAuthMiddleware().Authenticate(okHandler(&user))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdmin(t *testing.T) {
	m := newAuthMiddleware()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := m.RequireAdmin(next)

	// Viewer is rejected
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/projects/x", nil)
	req = req.WithContext(auth.WithUserContext(req.Context(), &auth.UserContext{Roles: []auth.Role{auth.RoleViewer}}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Admin passes
	req = httptest.NewRequest(http.MethodDelete, "/api/v1/projects/x", nil)
	req = req.WithContext(auth.WithUserContext(req.Context(), &auth.UserContext{Roles: []auth.Role{auth.RoleAdmin}}))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// No user context at all
	req = httptest.NewRequest(http.MethodDelete, "/api/v1/projects/x", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRole(t *testing.T) {
	m := newAuthMiddleware()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := m.RequireRole(auth.RoleSales)(next)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects", nil)
	req = req.WithContext(auth.WithUserContext(req.Context(), &auth.UserContext{Roles: []auth.Role{auth.RoleSales}}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/projects", nil)
	req = req.WithContext(auth.WithUserContext(req.Context(), &auth.UserContext{Roles: []auth.Role{auth.RoleViewer}}))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/projects", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireWriter(t *testing.T) {
	m := newAuthMiddleware()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := m.RequireWriter(next)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects", nil)
	req = req.WithContext(auth.WithUserContext(req.Context(), &auth.UserContext{Roles: []auth.Role{auth.RoleSales}}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/projects", nil)
	req = req.WithContext(auth.WithUserContext(req.Context(), &auth.UserContext{Roles: []auth.Role{auth.RoleViewer}}))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
