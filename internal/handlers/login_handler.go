package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"io.winapps.bumpjournal/internal/auth"
	loginmodels "io.winapps.bumpjournal/internal/models/login"
)

// Login handles user authentication. A successful login starts a session
// and reconciles any guest-mode entries into the account's hosted store.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginmodels.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	ctx := context.Background()

	user, err := h.manager.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		h.logError(c, err, "login failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}

	token, err := h.manager.IssueToken(ctx, user.UID)
	if err != nil {
		h.logError(c, err, "issue token failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session"})
		return
	}

	// A failed sync never blocks the login; local entries are retried
	// by the background sweep.
	if _, err := h.service.SyncLocalEntries(ctx, user.UID); err != nil {
		h.logError(c, err, "sync local entries after login failed", "user_uid", user.UID)
	}

	response := loginmodels.LoginResponse{
		UID:   user.UID,
		Name:  user.Name,
		Email: user.Email,
		Token: token,
	}

	c.JSON(http.StatusOK, response)
}
