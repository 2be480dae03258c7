package localstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"io.winapps.bumpjournal/internal/apperrors"
	"io.winapps.bumpjournal/internal/models/journal"
)

func newTestStore() *Store {
	return New(NewMemoryKV(), zap.NewNop().Sugar())
}

func TestSaveEntryRoundTrip(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	saved, err := s.SaveEntry(ctx, journal.Entry{
		Title:   "First kick",
		Content: "Felt the baby kick during breakfast.",
		Mood:    journal.MoodHappy,
	})
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)
	assert.False(t, saved.Date.IsZero())

	got, err := s.GetEntry(ctx, saved.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "First kick", got.Title)
	assert.Equal(t, journal.MoodHappy, got.Mood)
	assert.NotNil(t, got.Media)
}

func TestSaveEntryAssignsFreshID(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	saved, err := s.SaveEntry(ctx, journal.Entry{ID: "caller-chosen", Title: "Week 12"})
	require.NoError(t, err)
	assert.NotEqual(t, "caller-chosen", saved.ID)
}

func TestGetAllEntriesNewestFirst(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	now := time.Now().UTC()

	for i, title := range []string{"oldest", "middle", "newest"} {
		_, err := s.InsertEntry(ctx, journal.Entry{
			ID:    title,
			Title: title,
			Date:  now.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	entries, err := s.GetAllEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "newest", entries[0].Title)
	assert.Equal(t, "middle", entries[1].Title)
	assert.Equal(t, "oldest", entries[2].Title)
}

func TestGetEntryAbsentReturnsNil(t *testing.T) {
	s := newTestStore()

	got, err := s.GetEntry(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDeleteEntryIdempotent(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	saved, err := s.SaveEntry(ctx, journal.Entry{Title: "to delete"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteEntry(ctx, saved.ID))
	require.NoError(t, s.DeleteEntry(ctx, saved.ID))

	entries, err := s.GetAllEntries(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUpdateEntryAbsentIsNoOp(t *testing.T) {
	s := newTestStore()

	got, err := s.UpdateEntry(context.Background(), journal.Entry{ID: "missing", Title: "x"})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestToggleFavoriteSelfInverse(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	saved, err := s.SaveEntry(ctx, journal.Entry{Title: "ultrasound day"})
	require.NoError(t, err)

	once, err := s.ToggleFavorite(ctx, saved.ID)
	require.NoError(t, err)
	assert.True(t, once.Favorite)

	twice, err := s.ToggleFavorite(ctx, saved.ID)
	require.NoError(t, err)
	assert.False(t, twice.Favorite)
}

func TestUpdateKickCount(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	saved, err := s.SaveEntry(ctx, journal.Entry{Title: "kick session"})
	require.NoError(t, err)
	assert.Equal(t, 0, saved.KickCount)

	updated, err := s.UpdateKickCount(ctx, saved.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, updated.KickCount)

	_, err = s.UpdateKickCount(ctx, saved.ID, -1)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	got, err := s.GetEntry(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.KickCount)
}

func TestUpdateSharingClearsGroupsWhenUnshared(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	saved, err := s.SaveEntry(ctx, journal.Entry{Title: "shared moment"})
	require.NoError(t, err)

	shared, err := s.UpdateSharing(ctx, saved.ID, true, []string{"g1", "g2"})
	require.NoError(t, err)
	assert.True(t, shared.IsShared)
	assert.Equal(t, []string{"g1", "g2"}, shared.SharedWithGroups)

	unshared, err := s.UpdateSharing(ctx, saved.ID, false, nil)
	require.NoError(t, err)
	assert.False(t, unshared.IsShared)
	assert.Empty(t, unshared.SharedWithGroups)
}

func TestGetFavorites(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	fav, err := s.SaveEntry(ctx, journal.Entry{Title: "keeper"})
	require.NoError(t, err)
	_, err = s.SaveEntry(ctx, journal.Entry{Title: "ordinary"})
	require.NoError(t, err)

	_, err = s.ToggleFavorite(ctx, fav.ID)
	require.NoError(t, err)

	favorites, err := s.GetFavorites(ctx)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, "keeper", favorites[0].Title)
}

func TestCorruptCollectionTreatedAsEmpty(t *testing.T) {
	kv := NewMemoryKV()
	s := New(kv, zap.NewNop().Sugar())
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, entriesKey, "{not-json"))

	entries, err := s.GetAllEntries(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// The collection recovers on the next write.
	_, err = s.SaveEntry(ctx, journal.Entry{Title: "fresh start"})
	require.NoError(t, err)

	entries, err = s.GetAllEntries(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
