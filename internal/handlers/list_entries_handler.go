package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	journalmodels "io.winapps.bumpjournal/internal/models/journal"
	listmodels "io.winapps.bumpjournal/internal/models/list_entries"
)

// ListEntries returns the user's journal entries, newest first.
func (h *EntryHandler) ListEntries(c *gin.Context) {
	userUID := c.GetString("uid")

	entries, err := h.service.GetEntries(context.Background(), userUID)
	if err != nil {
		h.logError(c, err, "list entries failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve entries"})
		return
	}
	if entries == nil {
		entries = []journalmodels.Entry{}
	}

	c.JSON(http.StatusOK, listmodels.ListEntriesResponse{Entries: entries})
}
