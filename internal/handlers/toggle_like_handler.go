package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	togglelikemodels "io.winapps.bumpjournal/internal/models/toggle_like"
)

// ToggleLike adds or removes the caller's like on a shared entry.
func (h *GroupsHandler) ToggleLike(c *gin.Context) {
	var req togglelikemodels.ToggleLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if req.EntryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Entry ID is required"})
		return
	}

	userUID := c.GetString("uid")
	if userUID == "" {
		userUID = "local"
	}

	liked, err := h.service.ToggleLike(context.Background(), req.EntryID, userUID)
	if err != nil {
		h.logError(c, err, "toggle like failed", "entry_id", req.EntryID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle like"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entryId": req.EntryID, "liked": liked})
}
