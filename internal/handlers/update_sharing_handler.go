package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	sharingmodels "io.winapps.bumpjournal/internal/models/update_sharing"
)

// UpdateSharing sets the sharing flag and the group id set on an entry.
// Unsharing clears the group references.
func (h *EntryHandler) UpdateSharing(c *gin.Context) {
	var req sharingmodels.UpdateSharingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if req.EntryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Entry ID is required"})
		return
	}

	userUID := c.GetString("uid")

	entry, err := h.service.UpdateSharing(context.Background(), userUID, req.EntryID, req.IsShared, req.SharedWithGroups)
	if err != nil {
		h.logError(c, err, "update sharing failed", "entry_id", req.EntryID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update sharing"})
		return
	}
	if entry == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		return
	}

	c.JSON(http.StatusOK, entry)
}
