package journal

import (
	"context"

	models "io.winapps.bumpjournal/internal/models/journal"
)

// Sharing groups, comments and likes live only in the local store: they
// describe who this device shares with, not hosted data.

// FeedEntry is one shared entry in a group feed, with its comments and
// likes attached.
type FeedEntry struct {
	Entry    models.Entry     `json:"entry"`
	Comments []models.Comment `json:"comments"`
	Likes    []models.Like    `json:"likes"`
}

// ListGroups returns every sharing group.
func (s *Service) ListGroups(ctx context.Context) ([]models.Group, error) {
	return s.local.GetAllGroups(ctx)
}

// CreateGroup adds a sharing group, subject to the group cap.
func (s *Service) CreateGroup(ctx context.Context, name string) (*models.Group, error) {
	return s.local.CreateGroup(ctx, name)
}

// DeleteGroup removes a group and its references from entries.
func (s *Service) DeleteGroup(ctx context.Context, id string) error {
	return s.local.DeleteGroup(ctx, id)
}

// AddMemberToGroup invites an email to a group. Duplicate invites are
// declined.
func (s *Service) AddMemberToGroup(ctx context.Context, id, email string) (*models.Group, error) {
	return s.local.AddMemberToGroup(ctx, id, email)
}

// GroupFeed assembles the entries shared with a group, newest first,
// each with its comments and likes.
func (s *Service) GroupFeed(ctx context.Context, groupID string) ([]FeedEntry, error) {
	entries, err := s.local.GetEntriesSharedWithGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	feed := []FeedEntry{}
	for _, entry := range entries {
		comments, err := s.local.GetCommentsForEntry(ctx, entry.ID)
		if err != nil {
			return nil, err
		}
		likes, err := s.local.GetLikesForEntry(ctx, entry.ID)
		if err != nil {
			return nil, err
		}
		feed = append(feed, FeedEntry{Entry: entry, Comments: comments, Likes: likes})
	}
	return feed, nil
}

// AddComment leaves a comment on a shared entry.
func (s *Service) AddComment(ctx context.Context, entryID, author, content string) (*models.Comment, error) {
	return s.local.AddComment(ctx, entryID, author, content)
}

// ToggleLike adds or removes the user's like on a shared entry.
func (s *Service) ToggleLike(ctx context.Context, entryID, userID string) (bool, error) {
	return s.local.ToggleLike(ctx, entryID, userID)
}
