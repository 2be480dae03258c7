package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"io.winapps.bumpjournal/internal/apperrors"
	addmembermodels "io.winapps.bumpjournal/internal/models/add_member"
)

// AddMember invites an email address into a sharing group. Inviting an
// existing member is declined.
func (h *GroupsHandler) AddMember(c *gin.Context) {
	var req addmembermodels.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if req.GroupID == "" || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Group ID and email are required"})
		return
	}

	group, err := h.service.AddMemberToGroup(context.Background(), req.GroupID, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		case errors.Is(err, apperrors.ErrDuplicateMember):
			c.JSON(http.StatusConflict, gin.H{"error": "Email is already a member of the group"})
		default:
			h.logError(c, err, "add member failed", "group_id", req.GroupID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add member"})
		}
		return
	}

	c.JSON(http.StatusOK, group)
}
