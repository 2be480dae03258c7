package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"io.winapps.bumpjournal/internal/journal"
	"io.winapps.bumpjournal/internal/localstore"
	"io.winapps.bumpjournal/internal/media"
	createmodels "io.winapps.bumpjournal/internal/models/create_entry"
	journalmodels "io.winapps.bumpjournal/internal/models/journal"
	listmodels "io.winapps.bumpjournal/internal/models/list_entries"
)

var errRemoteDown = errors.New("remote store down")

// unreachableRemote stands in for a hosted store that guest requests
// must never reach.
type unreachableRemote struct{}

func (unreachableRemote) GetEntries(ctx context.Context, userID string) ([]journalmodels.Entry, error) {
	return nil, errRemoteDown
}

func (unreachableRemote) GetEntry(ctx context.Context, userID, id string) (*journalmodels.Entry, error) {
	return nil, errRemoteDown
}

func (unreachableRemote) CreateEntry(ctx context.Context, userID string, entry journalmodels.Entry) (*journalmodels.Entry, error) {
	return nil, errRemoteDown
}

func (unreachableRemote) UpdateEntry(ctx context.Context, userID string, entry journalmodels.Entry) (*journalmodels.Entry, error) {
	return nil, errRemoteDown
}

func (unreachableRemote) DeleteEntry(ctx context.Context, userID, id string) error {
	return errRemoteDown
}

func (unreachableRemote) UpsertEntries(ctx context.Context, userID string, entries []journalmodels.Entry) error {
	return errRemoteDown
}

func newTestRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mediaRoot := t.TempDir()
	logger := zap.NewNop().Sugar()
	local := localstore.New(localstore.NewMemoryKV(), logger)
	service := journal.NewService(local, unreachableRemote{}, logger)
	handler := NewEntryHandler(service, media.NewFileStore(mediaRoot), logger)

	router := gin.New()
	router.POST("/create-entry", handler.CreateEntry)
	router.POST("/list-entries", handler.ListEntries)
	router.POST("/add-audio", handler.AddAudio)
	router.POST("/delete-entry", handler.DeleteEntry)
	return router, mediaRoot
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGuestCreateAndListEntries(t *testing.T) {
	router, _ := newTestRouter(t)

	w := postJSON(t, router, "/create-entry", createmodels.CreateEntryRequest{
		Title:   "Week 18",
		Content: "Feeling great today.",
		Mood:    journalmodels.MoodContent,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created createmodels.CreateEntryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.Entry.ID)
	assert.Equal(t, "Week 18", created.Entry.Title)

	w = postJSON(t, router, "/list-entries", gin.H{})
	require.Equal(t, http.StatusOK, w.Code)

	var listed listmodels.ListEntriesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed.Entries, 1)
	assert.Equal(t, created.Entry.ID, listed.Entries[0].ID)
}

func TestCreateEntryRejectsMissingTitle(t *testing.T) {
	router, _ := newTestRouter(t)

	w := postJSON(t, router, "/create-entry", createmodels.CreateEntryRequest{
		Content: "no title here",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateEntryRejectsUnknownMood(t *testing.T) {
	router, _ := newTestRouter(t)

	w := postJSON(t, router, "/create-entry", createmodels.CreateEntryRequest{
		Title: "Week 19",
		Mood:  "overjoyed",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
