package service

import (
	"time"

	"github.com/google/uuid"
)

// TokenClaims carries the validated contents of an issued token.
type TokenClaims struct {
	UserID uuid.UUID
	Type   string // "access" or "refresh"
}

// TokenService abstracts issuing and validating authentication tokens.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a user.
	GenerateTokens(userID uuid.UUID) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks an access token and returns its claims.
	ValidateAccessToken(tokenString string) (*TokenClaims, error)

	// ValidateRefreshToken checks a refresh token and returns its claims.
	ValidateRefreshToken(tokenString string) (*TokenClaims, error)

	// RefreshTokenDuration returns the configured lifetime of refresh tokens.
	RefreshTokenDuration() time.Duration
}
