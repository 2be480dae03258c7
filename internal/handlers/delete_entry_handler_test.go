package handlers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	addaudiomodels "io.winapps.bumpjournal/internal/models/add_audio"
	createmodels "io.winapps.bumpjournal/internal/models/create_entry"
	deletemodels "io.winapps.bumpjournal/internal/models/delete_entry"
	listmodels "io.winapps.bumpjournal/internal/models/list_entries"
)

func TestDeleteEntryReleasesOwnedMedia(t *testing.T) {
	router, mediaRoot := newTestRouter(t)

	w := postJSON(t, router, "/create-entry", createmodels.CreateEntryRequest{
		Title: "voice memo day",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created createmodels.CreateEntryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	audio := base64.StdEncoding.EncodeToString([]byte("OggS fake audio"))
	w = postJSON(t, router, "/add-audio", addaudiomodels.AddAudioRequest{
		EntryID: created.Entry.ID,
		Audio:   audio,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var added addaudiomodels.AddAudioResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &added))

	onDisk := filepath.Join(mediaRoot, filepath.FromSlash(strings.TrimPrefix(added.AudioURL, "/")))
	_, err := os.Stat(onDisk)
	require.NoError(t, err, "audio file should exist after upload")

	w = postJSON(t, router, "/delete-entry", deletemodels.DeleteEntryRequest{
		EntryID: created.Entry.ID,
	})
	require.Equal(t, http.StatusOK, w.Code)

	// The record is gone and so is the file it owned.
	w = postJSON(t, router, "/list-entries", gin.H{})
	require.Equal(t, http.StatusOK, w.Code)
	var listed listmodels.ListEntriesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Empty(t, listed.Entries)

	_, err = os.Stat(onDisk)
	assert.True(t, os.IsNotExist(err), "owned audio file should be released on delete")
}

func TestDeleteEntryAbsentIDIsNoOp(t *testing.T) {
	router, _ := newTestRouter(t)

	w := postJSON(t, router, "/delete-entry", deletemodels.DeleteEntryRequest{
		EntryID: "never-existed",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}
