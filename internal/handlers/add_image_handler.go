package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"io.winapps.bumpjournal/internal/media"
	addimagemodels "io.winapps.bumpjournal/internal/models/add_image"
	journalmodels "io.winapps.bumpjournal/internal/models/journal"
)

// AddImage handles attaching a base64-encoded photo to an existing
// journal entry. Gallery uploads are tagged as such so clients can
// render them grouped.
func (h *EntryHandler) AddImage(c *gin.Context) {
	var req addimagemodels.AddImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if req.EntryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Entry ID is required"})
		return
	}

	if req.Image == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image data is required"})
		return
	}

	userUID := c.GetString("uid")
	ctx := context.Background()

	entry, err := h.service.GetEntry(ctx, userUID, req.EntryID)
	if err != nil {
		h.logError(c, err, "load entry for image failed", "entry_id", req.EntryID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve entry"})
		return
	}
	if entry == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		return
	}

	data, err := media.DecodeBase64(req.Image)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image encoding"})
		return
	}

	imageURL, err := h.files.SaveImage(data, req.EntryID)
	if err != nil {
		h.logError(c, err, "save image to filesystem failed", "entry_id", req.EntryID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
		return
	}

	mediaType := journalmodels.MediaPhoto
	if req.Gallery {
		mediaType = journalmodels.MediaGallery
	}
	entry.Media = append(entry.Media, journalmodels.MediaItem{
		Type: mediaType,
		URL:  imageURL,
	})

	if _, err := h.service.UpdateEntry(ctx, userUID, *entry); err != nil {
		h.files.Remove(imageURL)
		h.logError(c, err, "attach image failed", "entry_id", req.EntryID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add image"})
		return
	}

	response := addimagemodels.AddImageResponse{
		EntryID:  req.EntryID,
		ImageURL: imageURL,
		Message:  "Image added successfully",
	}

	c.JSON(http.StatusOK, response)
}
