package auth

import (
	"fmt"
	"time"

	"github.com/Abraxas-365/sift/pkg/kernel"
	"github.com/golang-jwt/jwt/v5"
)

// Config holds authentication configuration
type Config struct {
	JWT JWTConfig

	// ServiceKeyHash is the bcrypt hash of the API key machine
	// callers present instead of a bearer token. Empty disables
	// API key authentication.
	ServiceKeyHash string
}

// JWTConfig holds JWT signing configuration
type JWTConfig struct {
	SecretKey       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	Issuer          string
}

// DefaultConfig returns the default auth configuration
func DefaultConfig() Config {
	return Config{
		JWT: JWTConfig{
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 7 * 24 * time.Hour,
			Issuer:          "sift",
		},
	}
}

// Claims are the JWT claims issued by the token service
type Claims struct {
	UserID kernel.UserID `json:"uid"`
	Scopes []string      `json:"scopes"`
	jwt.RegisteredClaims
}

// TokenService issues and validates access tokens
type TokenService interface {
	GenerateAccessToken(userID kernel.UserID, scopes []string) (string, error)
	GenerateRefreshToken(userID kernel.UserID) (string, error)
	ValidateToken(token string) (*Claims, error)
}

// JWTService implements TokenService with HMAC-signed JWTs
type JWTService struct {
	secretKey  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	issuer     string
}

// NewJWTService creates a new JWT token service
func NewJWTService(secretKey string, accessTTL, refreshTTL time.Duration, issuer string) *JWTService {
	return &JWTService{
		secretKey:  []byte(secretKey),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		issuer:     issuer,
	}
}

// GenerateAccessToken issues a signed access token for a user
func (s *JWTService) GenerateAccessToken(userID kernel.UserID, scopes []string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Scopes: scopes,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// GenerateRefreshToken issues a long-lived refresh token
func (s *JWTService) GenerateRefreshToken(userID kernel.UserID) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.refreshTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("sign refresh token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and validates a signed token
func (s *JWTService) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithIssuer(s.issuer))
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
