package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"io.winapps.bumpjournal/internal/auth"
	"io.winapps.bumpjournal/internal/journal"
	createaccountmodels "io.winapps.bumpjournal/internal/models/create_account"
)

type AuthHandler struct {
	manager *auth.Manager
	service *journal.Service
	logger  *zap.SugaredLogger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(manager *auth.Manager, service *journal.Service, logger *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{
		manager: manager,
		service: service,
		logger:  logger,
	}
}

// CreateAccount handles new account registration. A successful signup
// starts a session and reconciles any guest-mode entries into the
// account's hosted store.
func (h *AuthHandler) CreateAccount(c *gin.Context) {
	var req createaccountmodels.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, email and password are required"})
		return
	}

	ctx := context.Background()

	user, err := h.manager.CreateUser(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "An account already exists for this email"})
			return
		}
		h.logError(c, err, "create account failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	token, err := h.manager.IssueToken(ctx, user.UID)
	if err != nil {
		h.logError(c, err, "issue token failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session"})
		return
	}

	// A failed sync never blocks the signup; local entries are retried
	// by the background sweep.
	if _, err := h.service.SyncLocalEntries(ctx, user.UID); err != nil {
		h.logError(c, err, "sync local entries after signup failed", "user_uid", user.UID)
	}

	response := createaccountmodels.CreateAccountResponse{
		UID:   user.UID,
		Name:  user.Name,
		Email: user.Email,
		Token: token,
	}

	c.JSON(http.StatusCreated, response)
}
