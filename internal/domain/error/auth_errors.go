package error

import "errors"

// Auth domain errors.
var (
	// ErrInvalidToken is returned when a bearer token fails validation.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a bearer token is past its expiry.
	ErrExpiredToken = errors.New("token expired")
)

// AuthErrorCode defines error codes for API authentication and throttling.
type AuthErrorCode string

const (
	ErrCodeRateLimited  AuthErrorCode = "AUTH-020003"
	ErrCodeInvalidToken AuthErrorCode = "AUTH-030001"
	ErrCodeExpiredToken AuthErrorCode = "AUTH-030002"
	ErrCodeMissingToken AuthErrorCode = "AUTH-030003"
)
