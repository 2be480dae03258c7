package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	deletegroupmodels "io.winapps.bumpjournal/internal/models/delete_group"
)

// DeleteGroup removes a sharing group and scrubs its id from every
// entry that referenced it.
func (h *GroupsHandler) DeleteGroup(c *gin.Context) {
	var req deletegroupmodels.DeleteGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if req.GroupID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Group ID is required"})
		return
	}

	if err := h.service.DeleteGroup(context.Background(), req.GroupID); err != nil {
		h.logError(c, err, "delete group failed", "group_id", req.GroupID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete group"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Group deleted successfully"})
}
