package adapter

import (
	"context"
	"time"
)

// TokenClaims represents the claims contained in an API access token.
type TokenClaims struct {
	Subject   string // client or household member the token was issued to
	ExpiresAt time.Time
}

// TokenService defines the interface for API access token operations.
type TokenService interface {
	// IssueAccessToken signs a new access token for subject valid for ttl.
	IssueAccessToken(ctx context.Context, subject string, ttl time.Duration) (string, error)

	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}
