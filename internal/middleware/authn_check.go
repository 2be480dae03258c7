package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"io.winapps.bumpjournal/internal/auth"
)

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return ""
	}
	return strings.TrimPrefix(authHeader, bearerPrefix)
}

// AuthMiddleware requires a valid session token and sets the user uid in
// the request context.
func AuthMiddleware(manager *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		uid, err := manager.VerifyToken(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("uid", uid)
		c.Next()
	}
}

// OptionalAuthMiddleware sets the user uid when a valid session token is
// present and lets the request continue in guest mode otherwise. Entry
// routes use this so journaling works without an account.
func OptionalAuthMiddleware(manager *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token != "" {
			if uid, err := manager.VerifyToken(c.Request.Context(), token); err == nil {
				c.Set("uid", uid)
			}
		}
		c.Next()
	}
}
