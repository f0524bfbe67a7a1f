package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const apiKeyPrefix = "sift_"

// GenerateAPIKey produces a new random API key and its bcrypt hash.
// The plaintext key is shown to the caller once; only the hash is stored.
func GenerateAPIKey() (key string, hash string, err error) {
	raw := make([]byte, 24)
	if _, err := rand.Read(raw); err != nil {
		return "", "", fmt.Errorf("generate api key: %w", err)
	}
	key = apiKeyPrefix + hex.EncodeToString(raw)

	hashed, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", "", fmt.Errorf("hash api key: %w", err)
	}
	return key, string(hashed), nil
}

// VerifyAPIKey checks a presented key against its stored hash
func VerifyAPIKey(key, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)) == nil
}
