package localstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"io.winapps.bumpjournal/internal/apperrors"
	"io.winapps.bumpjournal/internal/models/journal"
)

func TestCreateGroupEnforcesCap(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	for i := 0; i < journal.MaxGroups; i++ {
		_, err := s.CreateGroup(ctx, "Family")
		require.NoError(t, err)
	}

	_, err := s.CreateGroup(ctx, "One too many")
	assert.ErrorIs(t, err, apperrors.ErrGroupLimit)
}

func TestCreateGroupRequiresName(t *testing.T) {
	s := newTestStore()

	_, err := s.CreateGroup(context.Background(), "")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestAddMemberDuplicateDeclined(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	group, err := s.CreateGroup(ctx, "Close friends")
	require.NoError(t, err)

	updated, err := s.AddMemberToGroup(ctx, group.ID, "nana@example.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"nana@example.com"}, updated.Members)

	_, err = s.AddMemberToGroup(ctx, group.ID, "nana@example.com")
	assert.ErrorIs(t, err, apperrors.ErrDuplicateMember)

	got, err := s.GetGroup(ctx, group.ID)
	require.NoError(t, err)
	assert.Len(t, got.Members, 1)
}

func TestAddMemberUnknownGroup(t *testing.T) {
	s := newTestStore()

	_, err := s.AddMemberToGroup(context.Background(), "missing", "a@example.com")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteGroupScrubsEntryReferences(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	group, err := s.CreateGroup(ctx, "Family")
	require.NoError(t, err)
	other, err := s.CreateGroup(ctx, "Friends")
	require.NoError(t, err)

	entry, err := s.SaveEntry(ctx, journal.Entry{Title: "big news"})
	require.NoError(t, err)
	_, err = s.UpdateSharing(ctx, entry.ID, true, []string{group.ID, other.ID})
	require.NoError(t, err)

	require.NoError(t, s.DeleteGroup(ctx, group.ID))

	groups, err := s.GetAllGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, other.ID, groups[0].ID)

	got, err := s.GetEntry(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{other.ID}, got.SharedWithGroups)
	assert.True(t, got.IsShared)
}

func TestGetEntriesSharedWithGroup(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	group, err := s.CreateGroup(ctx, "Family")
	require.NoError(t, err)

	shared, err := s.SaveEntry(ctx, journal.Entry{Title: "shared"})
	require.NoError(t, err)
	_, err = s.UpdateSharing(ctx, shared.ID, true, []string{group.ID})
	require.NoError(t, err)

	_, err = s.SaveEntry(ctx, journal.Entry{Title: "private"})
	require.NoError(t, err)

	feed, err := s.GetEntriesSharedWithGroup(ctx, group.ID)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "shared", feed[0].Title)
}

func TestCommentsAndLikes(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	entry, err := s.SaveEntry(ctx, journal.Entry{Title: "week 20 scan"})
	require.NoError(t, err)

	comment, err := s.AddComment(ctx, entry.ID, "nana@example.com", "So excited for you!")
	require.NoError(t, err)
	assert.NotEmpty(t, comment.ID)

	comments, err := s.GetCommentsForEntry(ctx, entry.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "So excited for you!", comments[0].Content)

	liked, err := s.ToggleLike(ctx, entry.ID, "nana@example.com")
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = s.ToggleLike(ctx, entry.ID, "nana@example.com")
	require.NoError(t, err)
	assert.False(t, liked)

	likes, err := s.GetLikesForEntry(ctx, entry.ID)
	require.NoError(t, err)
	assert.Empty(t, likes)
}

func TestAddCommentRequiresContent(t *testing.T) {
	s := newTestStore()

	_, err := s.AddComment(context.Background(), "e1", "someone", "")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
