package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	journalmodels "io.winapps.bumpjournal/internal/models/journal"
	removeimagemodels "io.winapps.bumpjournal/internal/models/remove_image"
)

// RemoveImage detaches a photo from an entry and releases the
// underlying file when this store owns it.
func (h *EntryHandler) RemoveImage(c *gin.Context) {
	var req removeimagemodels.RemoveImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if req.EntryID == "" || req.ImageURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Entry ID and image URL are required"})
		return
	}

	userUID := c.GetString("uid")
	ctx := context.Background()

	entry, err := h.service.GetEntry(ctx, userUID, req.EntryID)
	if err != nil {
		h.logError(c, err, "load entry for image removal failed", "entry_id", req.EntryID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve entry"})
		return
	}
	if entry == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		return
	}

	kept := make([]journalmodels.MediaItem, 0, len(entry.Media))
	removed := false
	for _, m := range entry.Media {
		if (m.Type == journalmodels.MediaPhoto || m.Type == journalmodels.MediaGallery) && m.URL == req.ImageURL {
			removed = true
			continue
		}
		kept = append(kept, m)
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found on entry"})
		return
	}
	entry.Media = kept

	if _, err := h.service.UpdateEntry(ctx, userUID, *entry); err != nil {
		h.logError(c, err, "detach image failed", "entry_id", req.EntryID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove image"})
		return
	}

	if err := h.files.Remove(req.ImageURL); err != nil {
		h.logError(c, err, "release image file failed", "image_url", req.ImageURL)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Image removed successfully"})
}
