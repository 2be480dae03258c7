package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"io.winapps.bumpjournal/internal/media"
	recordingmodels "io.winapps.bumpjournal/internal/models/recording"
	"io.winapps.bumpjournal/internal/recorder"
	"io.winapps.bumpjournal/internal/transcribe"
)

type RecordingHandler struct {
	rec        *recorder.Recorder
	device     *recorder.PushDevice
	transcribe transcribe.Func
	logger     *zap.SugaredLogger
}

// NewRecordingHandler creates a new recording handler
func NewRecordingHandler(rec *recorder.Recorder, device *recorder.PushDevice, transcribeFn transcribe.Func, logger *zap.SugaredLogger) *RecordingHandler {
	return &RecordingHandler{
		rec:        rec,
		device:     device,
		transcribe: transcribeFn,
		logger:     logger,
	}
}

// Start opens a capture session. Fails fast while another session is
// active or when the device cannot be acquired.
func (h *RecordingHandler) Start(c *gin.Context) {
	if err := h.rec.Start(context.Background()); err != nil {
		switch {
		case errors.Is(err, recorder.ErrBusy):
			c.JSON(http.StatusConflict, gin.H{"error": "A recording session is already active"})
		case errors.Is(err, recorder.ErrDeviceUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Audio device unavailable"})
		default:
			h.logError(c, err, "start recording failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start recording"})
		}
		return
	}

	c.JSON(http.StatusOK, recordingmodels.StateResponse{State: string(h.rec.State())})
}

// Chunk feeds one base64-encoded audio chunk into the open session.
func (h *RecordingHandler) Chunk(c *gin.Context) {
	var req recordingmodels.ChunkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if req.Chunk == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Chunk data is required"})
		return
	}

	data, err := media.DecodeBase64(req.Chunk)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid chunk encoding"})
		return
	}

	if err := h.device.Push(data); err != nil {
		switch {
		case errors.Is(err, recorder.ErrNoActiveRecording):
			c.JSON(http.StatusConflict, gin.H{"error": "No active recording"})
		case errors.Is(err, recorder.ErrChunkBufferFull):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Chunk buffer full"})
		default:
			h.logError(c, err, "push chunk failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to accept chunk"})
		}
		return
	}

	c.JSON(http.StatusOK, recordingmodels.StateResponse{State: string(h.rec.State())})
}

// Pause suspends capture without ending the session.
func (h *RecordingHandler) Pause(c *gin.Context) {
	h.rec.Pause()
	c.JSON(http.StatusOK, recordingmodels.StateResponse{State: string(h.rec.State())})
}

// Resume continues a paused session.
func (h *RecordingHandler) Resume(c *gin.Context) {
	h.rec.Resume()
	c.JSON(http.StatusOK, recordingmodels.StateResponse{State: string(h.rec.State())})
}

// Stop finalizes the session into a playable recording and runs the
// transcription stub over the captured audio.
func (h *RecordingHandler) Stop(c *gin.Context) {
	result, err := h.rec.Stop(context.Background())
	if err != nil {
		if errors.Is(err, recorder.ErrNoActiveRecording) {
			c.JSON(http.StatusConflict, gin.H{"error": "No active recording"})
			return
		}
		h.logError(c, err, "stop recording failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to stop recording"})
		return
	}

	transcript, err := h.transcribe(c.Request.Context(), result.Data)
	if err != nil {
		// The recording itself is already safe; a transcription failure
		// just leaves the transcript empty.
		h.logError(c, err, "transcription failed")
		transcript = ""
	}

	response := recordingmodels.StopResponse{
		AudioURL:   result.URL,
		Transcript: transcript,
		Size:       len(result.Data),
	}

	c.JSON(http.StatusOK, response)
}

// Cancel discards the session. Safe to call in any state.
func (h *RecordingHandler) Cancel(c *gin.Context) {
	h.rec.Cancel()
	c.JSON(http.StatusOK, recordingmodels.StateResponse{State: string(h.rec.State())})
}
