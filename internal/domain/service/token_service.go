package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTypeAccess marks tokens that authorize API calls.
const TokenTypeAccess = "access"

// Claims defines the custom claims carried by access tokens.
// The subject (sub) holds the waiter's email.
type Claims struct {
	UserID int64  `json:"user_id"`
	Type   string `json:"type"`
	jwt.RegisteredClaims
}

// Email returns the identity the token was issued for.
func (c *Claims) Email() string {
	return c.Subject
}

// TokenService defines the interface for issuing and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for a waiter.
	GenerateAccessToken(userID int64, email string) (string, error)

	// ValidateToken checks signature, expiry and required claims of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// GetAccessTokenDuration returns the configured lifetime of access tokens.
	GetAccessTokenDuration() time.Duration
}
