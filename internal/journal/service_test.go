package journal

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"io.winapps.bumpjournal/internal/apperrors"
	"io.winapps.bumpjournal/internal/localstore"
	models "io.winapps.bumpjournal/internal/models/journal"
)

type mockRemote struct {
	mock.Mock
}

func (m *mockRemote) GetEntries(ctx context.Context, userID string) ([]models.Entry, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.([]models.Entry), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRemote) GetEntry(ctx context.Context, userID, id string) (*models.Entry, error) {
	args := m.Called(ctx, userID, id)
	if v := args.Get(0); v != nil {
		return v.(*models.Entry), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRemote) CreateEntry(ctx context.Context, userID string, entry models.Entry) (*models.Entry, error) {
	args := m.Called(ctx, userID, entry)
	if v := args.Get(0); v != nil {
		return v.(*models.Entry), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRemote) UpdateEntry(ctx context.Context, userID string, entry models.Entry) (*models.Entry, error) {
	args := m.Called(ctx, userID, entry)
	if v := args.Get(0); v != nil {
		return v.(*models.Entry), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRemote) DeleteEntry(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *mockRemote) UpsertEntries(ctx context.Context, userID string, entries []models.Entry) error {
	args := m.Called(ctx, userID, entries)
	return args.Error(0)
}

func newTestService(remote RemoteStore) *Service {
	local := localstore.New(localstore.NewMemoryKV(), zap.NewNop().Sugar())
	return NewService(local, remote, zap.NewNop().Sugar())
}

func TestGuestOperationsNeverTouchRemote(t *testing.T) {
	remote := &mockRemote{}
	s := newTestService(remote)
	ctx := context.Background()

	entry, err := s.CreateEntry(ctx, "", models.Entry{Title: "guest note"})
	require.NoError(t, err)
	require.NotEmpty(t, entry.ID)

	entries, err := s.GetEntries(ctx, "")
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	remote.AssertNotCalled(t, "CreateEntry", mock.Anything, mock.Anything, mock.Anything)
	remote.AssertNotCalled(t, "GetEntries", mock.Anything, mock.Anything)
}

func TestRemoteFailureFallsBackToLocal(t *testing.T) {
	remote := &mockRemote{}
	remote.On("GetEntries", mock.Anything, "user-1").Return(nil, errors.New("connection refused"))

	s := newTestService(remote)
	ctx := context.Background()

	_, err := s.Local().SaveEntry(ctx, models.Entry{Title: "written offline"})
	require.NoError(t, err)

	entries, err := s.GetEntries(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "written offline", entries[0].Title)
	remote.AssertExpectations(t)
}

func TestCreateEntryRemoteFailureInsertsLocally(t *testing.T) {
	remote := &mockRemote{}
	remote.On("CreateEntry", mock.Anything, "user-1", mock.Anything).Return(nil, errors.New("timeout"))

	s := newTestService(remote)
	ctx := context.Background()

	entry, err := s.CreateEntry(ctx, "user-1", models.Entry{Title: "resilient"})
	require.NoError(t, err)
	require.NotEmpty(t, entry.ID)

	// The identical entry landed in the local store, id included.
	local, err := s.Local().GetEntry(ctx, entry.ID)
	require.NoError(t, err)
	require.NotNil(t, local)
	assert.Equal(t, "resilient", local.Title)
}

func TestCreateEntryValidation(t *testing.T) {
	s := newTestService(&mockRemote{})
	ctx := context.Background()

	_, err := s.CreateEntry(ctx, "", models.Entry{Title: ""})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = s.CreateEntry(ctx, "", models.Entry{Title: "x", Mood: "ecstatic"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = s.CreateEntry(ctx, "", models.Entry{Title: "x", KickCount: -3})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestUpdateMoodRejectsUnknownMood(t *testing.T) {
	s := newTestService(&mockRemote{})

	_, err := s.UpdateMood(context.Background(), "", "some-id", "gleeful")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestSyncLocalEntriesPreservesIDsAndKeepsLocal(t *testing.T) {
	remote := &mockRemote{}
	var pushed []models.Entry
	remote.On("UpsertEntries", mock.Anything, "user-1", mock.Anything).
		Run(func(args mock.Arguments) {
			pushed = args.Get(2).([]models.Entry)
		}).
		Return(nil)

	s := newTestService(remote)
	ctx := context.Background()

	var ids []string
	for _, title := range []string{"one", "two", "three"} {
		entry, err := s.Local().SaveEntry(ctx, models.Entry{Title: title})
		require.NoError(t, err)
		ids = append(ids, entry.ID)
	}

	count, err := s.SyncLocalEntries(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	require.Len(t, pushed, 3)
	pushedIDs := map[string]bool{}
	for _, e := range pushed {
		pushedIDs[e.ID] = true
	}
	for _, id := range ids {
		assert.True(t, pushedIDs[id], "expected entry %s to be pushed with its local id", id)
	}

	// Local storage stays intact as a standby backup.
	local, err := s.Local().GetAllEntries(ctx)
	require.NoError(t, err)
	assert.Len(t, local, 3)
	remote.AssertExpectations(t)
}

func TestSyncLocalEntriesEmptySkipsRemote(t *testing.T) {
	remote := &mockRemote{}
	s := newTestService(remote)

	count, err := s.SyncLocalEntries(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Zero(t, count)
	remote.AssertNotCalled(t, "UpsertEntries", mock.Anything, mock.Anything, mock.Anything)
}

func TestSyncLocalEntriesSurfacesRemoteError(t *testing.T) {
	remote := &mockRemote{}
	remote.On("UpsertEntries", mock.Anything, "user-1", mock.Anything).Return(errors.New("unreachable"))

	s := newTestService(remote)
	ctx := context.Background()

	_, err := s.Local().SaveEntry(ctx, models.Entry{Title: "stuck"})
	require.NoError(t, err)

	_, err = s.SyncLocalEntries(ctx, "user-1")
	require.Error(t, err)

	// Nothing was lost: the entry is still local for the next attempt.
	local, err := s.Local().GetAllEntries(ctx)
	require.NoError(t, err)
	assert.Len(t, local, 1)
}

func TestGroupFeedAssemblesCommentsAndLikes(t *testing.T) {
	s := newTestService(&mockRemote{})
	ctx := context.Background()

	group, err := s.CreateGroup(ctx, "Family")
	require.NoError(t, err)

	entry, err := s.Local().SaveEntry(ctx, models.Entry{Title: "gender reveal"})
	require.NoError(t, err)
	_, err = s.Local().UpdateSharing(ctx, entry.ID, true, []string{group.ID})
	require.NoError(t, err)

	_, err = s.AddComment(ctx, entry.ID, "nana@example.com", "Wonderful news!")
	require.NoError(t, err)
	liked, err := s.ToggleLike(ctx, entry.ID, "nana@example.com")
	require.NoError(t, err)
	assert.True(t, liked)

	feed, err := s.GroupFeed(ctx, group.ID)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, entry.ID, feed[0].Entry.ID)
	assert.Len(t, feed[0].Comments, 1)
	assert.Len(t, feed[0].Likes, 1)
}
