package auth

import (
	"strings"

	"github.com/Abraxas-365/sift/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

const (
	authContextKey = "auth_context"
	apiKeyHeader   = "X-API-Key"
)

// AuthContext carries the authenticated identity through a request
type AuthContext struct {
	UserID kernel.UserID
	Scopes []string
}

// HasScope reports whether the context was granted the required scope
func (a *AuthContext) HasScope(required string) bool {
	return hasScope(a.Scopes, required)
}

// GetAuthContext retrieves the auth context set by the middleware
func GetAuthContext(c *fiber.Ctx) (*AuthContext, bool) {
	authCtx, ok := c.Locals(authContextKey).(*AuthContext)
	return authCtx, ok
}

// TokenMiddleware authenticates requests with bearer tokens or,
// on service routes, an API key
type TokenMiddleware struct {
	tokenService TokenService
	apiKeyHash   string
}

// NewAuthMiddleware creates a new token middleware. apiKeyHash is
// the bcrypt hash accepted by AuthenticateService; empty disables
// API key access.
func NewAuthMiddleware(tokenService TokenService, apiKeyHash string) *TokenMiddleware {
	return &TokenMiddleware{
		tokenService: tokenService,
		apiKeyHash:   apiKeyHash,
	}
}

// Authenticate validates the Authorization header and stores the
// auth context for downstream handlers
func (m *TokenMiddleware) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "authorization header required",
			})
		}

		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid authorization header format",
			})
		}

		claims, err := m.tokenService.ValidateToken(tokenStr)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or expired token",
			})
		}

		c.Locals(authContextKey, &AuthContext{
			UserID: claims.UserID,
			Scopes: claims.Scopes,
		})
		return c.Next()
	}
}

// AuthenticateService accepts either a service API key or a user
// bearer token. Keys are for machine callers hitting operational
// endpoints; a verified key is granted read access to screenings.
func (m *TokenMiddleware) AuthenticateService() fiber.Handler {
	bearer := m.Authenticate()
	return func(c *fiber.Ctx) error {
		key := c.Get(apiKeyHeader)
		if key == "" {
			return bearer(c)
		}

		if m.apiKeyHash == "" || !VerifyAPIKey(key, m.apiKeyHash) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid api key",
			})
		}

		c.Locals(authContextKey, &AuthContext{
			UserID: kernel.NewUserID("service"),
			Scopes: []string{ScopeScreeningsRead},
		})
		return c.Next()
	}
}

// RequireScope rejects requests whose auth context lacks the scope
func (m *TokenMiddleware) RequireScope(required string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authCtx, ok := GetAuthContext(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "authentication required",
			})
		}
		if !authCtx.HasScope(required) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error":          "insufficient permissions",
				"required_scope": required,
			})
		}
		return c.Next()
	}
}
