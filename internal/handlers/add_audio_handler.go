package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"io.winapps.bumpjournal/internal/media"
	addaudiomodels "io.winapps.bumpjournal/internal/models/add_audio"
	journalmodels "io.winapps.bumpjournal/internal/models/journal"
)

// AddAudio handles attaching a base64-encoded audio clip to an existing
// journal entry. The bytes are written to the file store and the entry
// gains an audio media item pointing at the served URL.
func (h *EntryHandler) AddAudio(c *gin.Context) {
	var req addaudiomodels.AddAudioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if req.EntryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Entry ID is required"})
		return
	}

	if req.Audio == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Audio data is required"})
		return
	}

	userUID := c.GetString("uid")
	ctx := context.Background()

	entry, err := h.service.GetEntry(ctx, userUID, req.EntryID)
	if err != nil {
		h.logError(c, err, "load entry for audio failed", "entry_id", req.EntryID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve entry"})
		return
	}
	if entry == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		return
	}

	data, err := media.DecodeBase64(req.Audio)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid audio encoding"})
		return
	}

	audioURL, err := h.files.SaveAudio(data, req.EntryID)
	if err != nil {
		h.logError(c, err, "save audio to filesystem failed", "entry_id", req.EntryID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save audio"})
		return
	}

	entry.Media = append(entry.Media, journalmodels.MediaItem{
		Type: journalmodels.MediaAudio,
		URL:  audioURL,
	})

	if _, err := h.service.UpdateEntry(ctx, userUID, *entry); err != nil {
		h.files.Remove(audioURL)
		h.logError(c, err, "attach audio failed", "entry_id", req.EntryID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add audio"})
		return
	}

	response := addaudiomodels.AddAudioResponse{
		EntryID:  req.EntryID,
		AudioURL: audioURL,
		Message:  "Audio added successfully",
	}

	c.JSON(http.StatusOK, response)
}
