package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	journalmodels "io.winapps.bumpjournal/internal/models/journal"
	listmodels "io.winapps.bumpjournal/internal/models/list_entries"
)

// ListFavorites returns the entries marked favorite, newest first.
func (h *EntryHandler) ListFavorites(c *gin.Context) {
	userUID := c.GetString("uid")

	entries, err := h.service.GetFavorites(context.Background(), userUID)
	if err != nil {
		h.logError(c, err, "list favorites failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve favorites"})
		return
	}
	if entries == nil {
		entries = []journalmodels.Entry{}
	}

	c.JSON(http.StatusOK, listmodels.ListEntriesResponse{Entries: entries})
}
