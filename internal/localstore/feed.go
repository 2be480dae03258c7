package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"io.winapps.bumpjournal/internal/apperrors"
	"io.winapps.bumpjournal/internal/models/journal"
)

// Comments and likes live alongside entries in their own collections so a
// group feed can be assembled without touching the entry records.

func (s *Store) readComments(ctx context.Context) []journal.Comment {
	raw, err := s.kv.Get(ctx, commentsKey)
	if errors.Is(err, ErrKeyNotFound) {
		return []journal.Comment{}
	}
	if err != nil {
		s.logger.Errorw("failed to read comments", "error", err)
		return []journal.Comment{}
	}

	var comments []journal.Comment
	if err := json.Unmarshal([]byte(raw), &comments); err != nil {
		s.logger.Errorw("failed to parse comments, treating as empty", "error", err)
		return []journal.Comment{}
	}
	return comments
}

// AddComment appends a comment to an entry.
func (s *Store) AddComment(ctx context.Context, entryID, author, content string) (*journal.Comment, error) {
	if content == "" {
		return nil, apperrors.ErrValidation
	}

	comment := journal.Comment{
		ID:      uuid.New().String(),
		EntryID: entryID,
		Author:  author,
		Content: content,
		Date:    time.Now().UTC(),
	}
	comments := append(s.readComments(ctx), comment)
	raw, err := json.Marshal(comments)
	if err != nil {
		return nil, err
	}
	if err := s.kv.Set(ctx, commentsKey, string(raw)); err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetCommentsForEntry returns the comments on an entry in insertion order.
func (s *Store) GetCommentsForEntry(ctx context.Context, entryID string) ([]journal.Comment, error) {
	comments := []journal.Comment{}
	for _, c := range s.readComments(ctx) {
		if c.EntryID == entryID {
			comments = append(comments, c)
		}
	}
	return comments, nil
}

func (s *Store) readLikes(ctx context.Context) []journal.Like {
	raw, err := s.kv.Get(ctx, likesKey)
	if errors.Is(err, ErrKeyNotFound) {
		return []journal.Like{}
	}
	if err != nil {
		s.logger.Errorw("failed to read likes", "error", err)
		return []journal.Like{}
	}

	var likes []journal.Like
	if err := json.Unmarshal([]byte(raw), &likes); err != nil {
		s.logger.Errorw("failed to parse likes, treating as empty", "error", err)
		return []journal.Like{}
	}
	return likes
}

// ToggleLike adds or removes a user's like on an entry and reports
// whether the entry is liked afterwards.
func (s *Store) ToggleLike(ctx context.Context, entryID, userID string) (bool, error) {
	likes := s.readLikes(ctx)
	kept := likes[:0]
	removed := false
	for _, l := range likes {
		if l.EntryID == entryID && l.UserID == userID {
			removed = true
			continue
		}
		kept = append(kept, l)
	}
	if !removed {
		kept = append(kept, journal.Like{EntryID: entryID, UserID: userID})
	}

	raw, err := json.Marshal(kept)
	if err != nil {
		return false, err
	}
	if err := s.kv.Set(ctx, likesKey, string(raw)); err != nil {
		return false, err
	}
	return !removed, nil
}

// GetLikesForEntry returns the likes recorded on an entry.
func (s *Store) GetLikesForEntry(ctx context.Context, entryID string) ([]journal.Like, error) {
	likes := []journal.Like{}
	for _, l := range s.readLikes(ctx) {
		if l.EntryID == entryID {
			likes = append(likes, l)
		}
	}
	return likes, nil
}
