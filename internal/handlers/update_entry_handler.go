package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"io.winapps.bumpjournal/internal/apperrors"
	updatemodels "io.winapps.bumpjournal/internal/models/update_entry"
)

// UpdateEntry replaces a stored entry wholesale. The most recent write
// wins; there is no merge.
func (h *EntryHandler) UpdateEntry(c *gin.Context) {
	var req updatemodels.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if req.Entry.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Entry ID is required"})
		return
	}

	userUID := c.GetString("uid")

	entry, err := h.service.UpdateEntry(context.Background(), userUID, req.Entry)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logError(c, err, "update entry failed", "entry_id", req.Entry.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update entry"})
		return
	}
	if entry == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		return
	}

	c.JSON(http.StatusOK, entry)
}
