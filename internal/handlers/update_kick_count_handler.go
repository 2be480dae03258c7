package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"io.winapps.bumpjournal/internal/apperrors"
	kickmodels "io.winapps.bumpjournal/internal/models/update_kick_count"
)

// UpdateKickCount sets the kick counter on an entry.
func (h *EntryHandler) UpdateKickCount(c *gin.Context) {
	var req kickmodels.UpdateKickCountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if req.EntryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Entry ID is required"})
		return
	}

	userUID := c.GetString("uid")

	entry, err := h.service.UpdateKickCount(context.Background(), userUID, req.EntryID, req.KickCount)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logError(c, err, "update kick count failed", "entry_id", req.EntryID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update kick count"})
		return
	}
	if entry == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		return
	}

	c.JSON(http.StatusOK, entry)
}
