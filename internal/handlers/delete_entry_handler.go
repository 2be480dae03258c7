package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	deletemodels "io.winapps.bumpjournal/internal/models/delete_entry"
)

// DeleteEntry removes an entry permanently, releasing the media files
// the entry owns. Deleting an id that does not exist is a no-op.
func (h *EntryHandler) DeleteEntry(c *gin.Context) {
	var req deletemodels.DeleteEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if req.EntryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Entry ID is required"})
		return
	}

	userUID := c.GetString("uid")
	ctx := context.Background()

	// Load the entry first so its owned media can be released after the
	// record is gone. A lookup failure still lets the delete proceed.
	entry, err := h.service.GetEntry(ctx, userUID, req.EntryID)
	if err != nil {
		h.logError(c, err, "load entry before delete failed", "entry_id", req.EntryID)
	}

	if err := h.service.DeleteEntry(ctx, userUID, req.EntryID); err != nil {
		h.logError(c, err, "delete entry failed", "entry_id", req.EntryID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete entry"})
		return
	}

	if entry != nil {
		for _, m := range entry.Media {
			if err := h.files.Remove(m.URL); err != nil {
				h.logError(c, err, "release media file failed", "entry_id", req.EntryID, "url", m.URL)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Entry deleted successfully"})
}
