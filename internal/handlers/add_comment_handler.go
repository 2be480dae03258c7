package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"io.winapps.bumpjournal/internal/apperrors"
	addcommentmodels "io.winapps.bumpjournal/internal/models/add_comment"
)

// AddComment leaves a comment on a shared entry.
func (h *GroupsHandler) AddComment(c *gin.Context) {
	var req addcommentmodels.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if req.EntryID == "" || req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Entry ID and content are required"})
		return
	}

	comment, err := h.service.AddComment(context.Background(), req.EntryID, req.Author, req.Content)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
			return
		}
		h.logError(c, err, "add comment failed", "entry_id", req.EntryID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add comment"})
		return
	}

	c.JSON(http.StatusCreated, comment)
}
