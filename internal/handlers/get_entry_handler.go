package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	getmodels "io.winapps.bumpjournal/internal/models/get_entry"
)

// GetEntry returns a single journal entry by id.
func (h *EntryHandler) GetEntry(c *gin.Context) {
	var req getmodels.GetEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if req.EntryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Entry ID is required"})
		return
	}

	userUID := c.GetString("uid")

	entry, err := h.service.GetEntry(context.Background(), userUID, req.EntryID)
	if err != nil {
		h.logError(c, err, "get entry failed", "entry_id", req.EntryID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve entry"})
		return
	}
	if entry == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		return
	}

	c.JSON(http.StatusOK, entry)
}
