package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	journalmodels "io.winapps.bumpjournal/internal/models/journal"
	removeaudiomodels "io.winapps.bumpjournal/internal/models/remove_audio"
)

// RemoveAudio detaches an audio clip from an entry. The underlying file
// is released too when this store owns it; external URLs are only
// detached.
func (h *EntryHandler) RemoveAudio(c *gin.Context) {
	var req removeaudiomodels.RemoveAudioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if req.EntryID == "" || req.AudioURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Entry ID and audio URL are required"})
		return
	}

	userUID := c.GetString("uid")
	ctx := context.Background()

	entry, err := h.service.GetEntry(ctx, userUID, req.EntryID)
	if err != nil {
		h.logError(c, err, "load entry for audio removal failed", "entry_id", req.EntryID)
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
		if m.Type == journalmodels.MediaAudio && m.URL == req.AudioURL {
			removed = true
			continue
		}
		kept = append(kept, m)
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "Audio not found on entry"})
		return
	}
	entry.Media = kept

	if _, err := h.service.UpdateEntry(ctx, userUID, *entry); err != nil {
		h.logError(c, err, "detach audio failed", "entry_id", req.EntryID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove audio"})
		return
	}

	if err := h.files.Remove(req.AudioURL); err != nil {
		// The entry no longer references the clip; an orphaned file is
		// logged, not surfaced.
		h.logError(c, err, "release audio file failed", "audio_url", req.AudioURL)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Audio removed successfully"})
}
