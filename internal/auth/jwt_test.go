package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mitrasinergi/sales-api/internal/auth"
	"github.com/mitrasinergi/sales-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-secret"

func signToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newValidator() *auth.JWTValidator {
	return auth.NewJWTValidator(&config.AuthConfig{JWTSecret: testSecret})
}

func TestValidateToken_Valid(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub":   "2f8c31ce-90a1-4f5b-9f6c-1f2e3d4c5b6a",
		"name":  "Dewi Lestari",
		"email": "dewi@mitrasinergi.co.id",
		"roles": []string{"admin", "sales"},
		"exp":   time.Now().Add(time.Hour).Unix(),
	}, testSecret)

	userCtx, err := newValidator().ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "Dewi Lestari", userCtx.DisplayName)
	assert.Equal(t, "dewi@mitrasinergi.co.id", userCtx.Email)
	assert.True(t, userCtx.HasRole(auth.RoleAdmin))
	assert.True(t, userCtx.IsAdmin())
	assert.True(t, userCtx.CanWrite())
}

func TestValidateToken_Expired(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub": "user",
		"exp": time.Now().Add(-time.Hour).Unix(),
	}, testSecret)

	_, err := newValidator().ValidateToken(token)
	assert.ErrorIs(t, err, auth.ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub": "user",
		"exp": time.Now().Add(time.Hour).Unix(),
	}, "another-secret")

	_, err := newValidator().ValidateToken(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestValidateToken_DefaultsToViewer(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"email": "viewer@mitrasinergi.co.id",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}, testSecret)

	userCtx, err := newValidator().ValidateToken(token)
	require.NoError(t, err)
	assert.True(t, userCtx.HasRole(auth.RoleViewer))
	assert.False(t, userCtx.CanWrite())
	assert.False(t, userCtx.IsAdmin())
	// ID is derived deterministically from the email
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", userCtx.UserID.String())
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := newValidator().ValidateToken("not-a-token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
