package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	togglemodels "io.winapps.bumpjournal/internal/models/toggle_favorite"
)

// ToggleFavorite flips the favorite flag on an entry.
func (h *EntryHandler) ToggleFavorite(c *gin.Context) {
	var req togglemodels.ToggleFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if req.EntryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Entry ID is required"})
		return
	}

	userUID := c.GetString("uid")

	entry, err := h.service.ToggleFavorite(context.Background(), userUID, req.EntryID)
	if err != nil {
		h.logError(c, err, "toggle favorite failed", "entry_id", req.EntryID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle favorite"})
		return
	}
	if entry == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		return
	}

	c.JSON(http.StatusOK, entry)
}
