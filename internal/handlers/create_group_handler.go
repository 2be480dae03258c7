package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"io.winapps.bumpjournal/internal/apperrors"
	"io.winapps.bumpjournal/internal/journal"
	creategroupmodels "io.winapps.bumpjournal/internal/models/create_group"
)

type GroupsHandler struct {
	service *journal.Service
	logger  *zap.SugaredLogger
}

// NewGroupsHandler creates a new sharing groups handler
func NewGroupsHandler(service *journal.Service, logger *zap.SugaredLogger) *GroupsHandler {
	return &GroupsHandler{
		service: service,
		logger:  logger,
	}
}

// CreateGroup creates a sharing group. The number of groups is capped;
// hitting the cap is a declined operation, not a failure.
func (h *GroupsHandler) CreateGroup(c *gin.Context) {
	var req creategroupmodels.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	group, err := h.service.CreateGroup(context.Background(), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Group name is required"})
		case errors.Is(err, apperrors.ErrGroupLimit):
			c.JSON(http.StatusConflict, gin.H{"error": "Sharing group limit reached"})
		default:
			h.logError(c, err, "create group failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create group"})
		}
		return
	}

	response := creategroupmodels.GroupResponse{
		ID:          group.ID,
		Name:        group.Name,
		MemberCount: len(group.Members),
	}

	c.JSON(http.StatusCreated, response)
}
