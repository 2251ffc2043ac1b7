package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/samScriptt/novapress/internal/auth"
	"github.com/samScriptt/novapress/internal/logger"
)

const (
	// UserIDKey is the context key for the authenticated user's ID
	UserIDKey = "user_id"
	// UserEmailKey is the context key for the authenticated user's email
	UserEmailKey = "user_email"
)

// TokenResolver resolves a bearer token to a user.
type TokenResolver interface {
	Enabled() bool
	ResolveToken(ctx context.Context, token string) (*auth.User, error)
}

// Auth resolves an optional Authorization bearer token into the request
// context. A missing, malformed, or rejected token leaves the request
// anonymous and never blocks it here; handlers that need an identity
// check for one with GetUserID.
func Auth(resolver TokenResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" || resolver == nil || !resolver.Enabled() {
			c.Next()
			return
		}

		user, err := resolver.ResolveToken(c.Request.Context(), token)
		if err != nil {
			logger.Debug("token resolution failed, treating request as anonymous",
				"request_id", GetRequestID(c),
				"error", err.Error())
			c.Next()
			return
		}

		c.Set(UserIDKey, user.ID)
		c.Set(UserEmailKey, user.Email)
		c.Next()
	}
}

// RequireUser aborts with 401 when the request carries no resolved user.
// It must run after Auth.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetUserID(c) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}

// RequireAdmin aborts with 401 unless the request carries the
// configured admin token. An empty configured token disables the
// surface entirely.
func RequireAdmin(adminToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if adminToken == "" || bearerToken(c.GetHeader("Authorization")) != adminToken {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

// GetUserID retrieves the authenticated user's ID from the gin context.
// Empty means anonymous.
func GetUserID(c *gin.Context) string {
	if v, exists := c.Get(UserIDKey); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// GetUserEmail retrieves the authenticated user's email from the gin context.
func GetUserEmail(c *gin.Context) string {
	if v, exists := c.Get(UserEmailKey); exists {
		if email, ok := v.(string); ok {
			return email
		}
	}
	return ""
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
