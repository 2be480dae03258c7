package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	groupfeedmodels "io.winapps.bumpjournal/internal/models/group_feed"
)

// GroupFeed returns the entries shared with a group, newest first, each
// with its comments and likes.
func (h *GroupsHandler) GroupFeed(c *gin.Context) {
	var req groupfeedmodels.GroupFeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if req.GroupID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Group ID is required"})
		return
	}

	feed, err := h.service.GroupFeed(context.Background(), req.GroupID)
	if err != nil {
		h.logError(c, err, "group feed failed", "group_id", req.GroupID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve group feed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"feed": feed})
}
