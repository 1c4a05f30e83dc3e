// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/budget/internal/application/adapter"
	domainerror "github.com/finance-tracker/budget/internal/domain/error"
	"github.com/finance-tracker/budget/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

// SubjectKey is the context key for the authenticated token subject.
const SubjectKey ContextKey = "subject"

// AuthMiddleware provides JWT authentication middleware.
type AuthMiddleware struct {
	tokenService adapter.TokenService
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(tokenService adapter.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

// Authenticate returns a Gin middleware handler that enforces bearer token
// authentication.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header is required", domainerror.ErrCodeMissingToken)
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, "Invalid authorization header format", domainerror.ErrCodeInvalidToken)
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			abortUnauthorized(c, "Token is required", domainerror.ErrCodeMissingToken)
			return
		}

		claims, err := m.tokenService.ValidateAccessToken(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, domainerror.ErrExpiredToken) {
				abortUnauthorized(c, "Token has expired", domainerror.ErrCodeExpiredToken)
				return
			}
			abortUnauthorized(c, "Invalid or expired token", domainerror.ErrCodeInvalidToken)
			return
		}

		c.Set(string(SubjectKey), claims.Subject)
		c.Next()
	}
}

// GetSubjectFromContext extracts the token subject from the Gin context.
func GetSubjectFromContext(c *gin.Context) (string, bool) {
	subject, exists := c.Get(string(SubjectKey))
	if !exists {
		return "", false
	}
	s, ok := subject.(string)
	return s, ok
}

func abortUnauthorized(c *gin.Context, message string, code domainerror.AuthErrorCode) {
	c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: message,
		Code:  string(code),
	})
	c.Abort()
}
