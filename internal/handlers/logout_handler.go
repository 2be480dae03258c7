package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Logout revokes the user's session, invalidating outstanding tokens.
func (h *AuthHandler) Logout(c *gin.Context) {
	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	userUID, ok := uid.(string)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user context"})
		return
	}

	if err := h.manager.RevokeSession(context.Background(), userUID); err != nil {
		h.logError(c, err, "revoke session failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
