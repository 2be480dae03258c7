package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"io.winapps.bumpjournal/internal/apperrors"
	"io.winapps.bumpjournal/internal/journal"
	"io.winapps.bumpjournal/internal/media"
	createmodels "io.winapps.bumpjournal/internal/models/create_entry"
	journalmodels "io.winapps.bumpjournal/internal/models/journal"
)

type EntryHandler struct {
	service *journal.Service
	files   *media.FileStore
	logger  *zap.SugaredLogger
}

// NewEntryHandler creates a new entry handler
func NewEntryHandler(service *journal.Service, files *media.FileStore, logger *zap.SugaredLogger) *EntryHandler {
	return &EntryHandler{
		service: service,
		files:   files,
		logger:  logger,
	}
}

// CreateEntry handles creation of new journal entries. Guest requests
// land in the local store; authenticated requests go to the hosted
// store with a local fallback.
func (h *EntryHandler) CreateEntry(c *gin.Context) {
	var req createmodels.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userUID := c.GetString("uid")

	draft := journalmodels.Entry{
		Title:            req.Title,
		Content:          req.Content,
		Date:             req.Date,
		Media:            req.Media,
		Mood:             req.Mood,
		KickCount:        req.KickCount,
		IsShared:         req.IsShared,
		SharedWithGroups: req.SharedWithGroups,
	}

	entry, err := h.service.CreateEntry(context.Background(), userUID, draft)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logError(c, err, "create entry failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create entry"})
		return
	}

	response := createmodels.CreateEntryResponse{
		Entry:   *entry,
		Message: "Entry created successfully",
	}

	c.JSON(http.StatusCreated, response)
}
