package auth

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Abraxas-365/sift/pkg/kernel"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAPIKey_RoundTrip(t *testing.T) {
	key, hash, err := GenerateAPIKey()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(key, apiKeyPrefix))
	assert.True(t, VerifyAPIKey(key, hash))
	assert.False(t, VerifyAPIKey(key+"x", hash))
	assert.False(t, VerifyAPIKey("", hash))
}

func serviceApp(m *TokenMiddleware) *fiber.App {
	app := fiber.New()
	app.Get("/stats", m.AuthenticateService(), m.RequireScope(ScopeScreeningsRead), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestAuthenticateService_APIKey(t *testing.T) {
	key, hash, err := GenerateAPIKey()
	require.NoError(t, err)

	tokenService := NewJWTService("test-secret", time.Minute, time.Hour, "sift")
	app := serviceApp(NewAuthMiddleware(tokenService, hash))

	req := httptest.NewRequest("GET", "/stats", nil)
	req.Header.Set("X-API-Key", key)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest("GET", "/stats", nil)
	req.Header.Set("X-API-Key", "sift_wrong")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthenticateService_RejectsKeysWhenDisabled(t *testing.T) {
	key, _, err := GenerateAPIKey()
	require.NoError(t, err)

	tokenService := NewJWTService("test-secret", time.Minute, time.Hour, "sift")
	app := serviceApp(NewAuthMiddleware(tokenService, ""))

	req := httptest.NewRequest("GET", "/stats", nil)
	req.Header.Set("X-API-Key", key)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthenticateService_FallsBackToBearer(t *testing.T) {
	tokenService := NewJWTService("test-secret", time.Minute, time.Hour, "sift")
	app := serviceApp(NewAuthMiddleware(tokenService, ""))

	token, err := tokenService.GenerateAccessToken(kernel.NewUserID("u1"), []string{ScopeScreeningsRead})
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/stats", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest("GET", "/stats", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
