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

func (s *Store) readGroups(ctx context.Context) []journal.Group {
	raw, err := s.kv.Get(ctx, groupsKey)
	if errors.Is(err, ErrKeyNotFound) {
		return []journal.Group{}
	}
	if err != nil {
		s.logger.Errorw("failed to read sharing groups", "error", err)
		return []journal.Group{}
	}

	var groups []journal.Group
	if err := json.Unmarshal([]byte(raw), &groups); err != nil {
		s.logger.Errorw("failed to parse sharing groups, treating as empty", "error", err)
		return []journal.Group{}
	}
	return groups
}

func (s *Store) writeGroups(ctx context.Context, groups []journal.Group) error {
	raw, err := json.Marshal(groups)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, groupsKey, string(raw))
}

// GetAllGroups returns every sharing group.
func (s *Store) GetAllGroups(ctx context.Context) ([]journal.Group, error) {
	return s.readGroups(ctx), nil
}

// GetGroup returns the group with the given id, or nil if absent.
func (s *Store) GetGroup(ctx context.Context, id string) (*journal.Group, error) {
	for _, g := range s.readGroups(ctx) {
		if g.ID == id {
			group := g
			return &group, nil
		}
	}
	return nil, nil
}

// CreateGroup adds a new sharing group. The collection is capped at
// journal.MaxGroups; creation beyond the cap is declined.
func (s *Store) CreateGroup(ctx context.Context, name string) (*journal.Group, error) {
	if name == "" {
		return nil, apperrors.ErrValidation
	}

	groups := s.readGroups(ctx)
	if len(groups) >= journal.MaxGroups {
		return nil, apperrors.ErrGroupLimit
	}

	group := journal.Group{
		ID:        uuid.New().String(),
		Name:      name,
		Members:   []string{},
		CreatedAt: time.Now().UTC(),
	}
	groups = append(groups, group)
	if err := s.writeGroups(ctx, groups); err != nil {
		return nil, err
	}
	return &group, nil
}

// DeleteGroup removes a group and scrubs its id from every entry's
// shared-with set, so no entry is left pointing at a deleted group.
func (s *Store) DeleteGroup(ctx context.Context, id string) error {
	groups := s.readGroups(ctx)
	filtered := groups[:0]
	for _, g := range groups {
		if g.ID != id {
			filtered = append(filtered, g)
		}
	}
	if err := s.writeGroups(ctx, filtered); err != nil {
		return err
	}

	entries := s.readEntries(ctx)
	changed := false
	for i := range entries {
		refs := entries[i].SharedWithGroups
		kept := refs[:0]
		for _, ref := range refs {
			if ref != id {
				kept = append(kept, ref)
			}
		}
		if len(kept) != len(refs) {
			entries[i].SharedWithGroups = kept
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.writeEntries(ctx, entries)
}

// AddMemberToGroup records an invited email on a group. Inviting an email
// that is already a member is declined with ErrDuplicateMember.
func (s *Store) AddMemberToGroup(ctx context.Context, id, email string) (*journal.Group, error) {
	groups := s.readGroups(ctx)
	for i, g := range groups {
		if g.ID != id {
			continue
		}
		if g.HasMember(email) {
			return nil, apperrors.ErrDuplicateMember
		}
		groups[i].Members = append(groups[i].Members, email)
		if err := s.writeGroups(ctx, groups); err != nil {
			return nil, err
		}
		group := groups[i]
		return &group, nil
	}
	return nil, apperrors.ErrNotFound
}
