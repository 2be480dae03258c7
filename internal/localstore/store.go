// Package localstore implements the client-local persistence layer: two
// fixed keys holding JSON arrays of entries and sharing groups, plus the
// group feed collections. It is the sole store in guest mode and the
// offline fallback otherwise.
package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"io.winapps.bumpjournal/internal/apperrors"
	"io.winapps.bumpjournal/internal/models/journal"
)

// Fixed storage keys. Entries and groups are independent collections.
const (
	entriesKey  = "journal_entries"
	groupsKey   = "sharing_groups"
	commentsKey = "entry_comments"
	likesKey    = "entry_likes"
)

// Store is the Local Persistence Store over an injected KV.
type Store struct {
	kv     KV
	logger *zap.SugaredLogger
}

// New creates a local store on top of kv.
func New(kv KV, logger *zap.SugaredLogger) *Store {
	return &Store{kv: kv, logger: logger}
}

// readEntries loads the full entry collection. Malformed stored data is
// treated as an empty collection, never an error.
func (s *Store) readEntries(ctx context.Context) []journal.Entry {
	raw, err := s.kv.Get(ctx, entriesKey)
	if errors.Is(err, ErrKeyNotFound) {
		return []journal.Entry{}
	}
	if err != nil {
		s.logger.Errorw("failed to read local entries", "error", err)
		return []journal.Entry{}
	}

	var entries []journal.Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		s.logger.Errorw("failed to parse local entries, treating as empty", "error", err)
		return []journal.Entry{}
	}
	return entries
}

func (s *Store) writeEntries(ctx context.Context, entries []journal.Entry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, entriesKey, string(raw))
}

// GetAllEntries returns every entry sorted by date, newest first.
func (s *Store) GetAllEntries(ctx context.Context) ([]journal.Entry, error) {
	entries := s.readEntries(ctx)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
	return entries, nil
}

// GetEntry returns the entry with the given id, or nil if absent.
func (s *Store) GetEntry(ctx context.Context, id string) (*journal.Entry, error) {
	for _, e := range s.readEntries(ctx) {
		if e.ID == id {
			entry := e
			return &entry, nil
		}
	}
	return nil, nil
}

// SaveEntry stores a new entry, assigning a fresh id and the current
// timestamp regardless of what the caller supplied, and prepends it to
// the collection.
func (s *Store) SaveEntry(ctx context.Context, entry journal.Entry) (*journal.Entry, error) {
	entry.ID = uuid.New().String()
	entry.Date = time.Now().UTC()
	if entry.Media == nil {
		entry.Media = []journal.MediaItem{}
	}
	if entry.KickCount < 0 {
		entry.KickCount = 0
	}

	entries := s.readEntries(ctx)
	entries = append([]journal.Entry{entry}, entries...)
	if err := s.writeEntries(ctx, entries); err != nil {
		return nil, err
	}
	return &entry, nil
}

// InsertEntry stores an entry as-is, keeping the id and timestamps the
// caller assigned. Used when a remote write falls back to local storage.
func (s *Store) InsertEntry(ctx context.Context, entry journal.Entry) (*journal.Entry, error) {
	entries := s.readEntries(ctx)
	entries = append([]journal.Entry{entry}, entries...)
	if err := s.writeEntries(ctx, entries); err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdateEntry replaces the stored entry with a matching id. Updating an
// absent id is a no-op and returns nil.
func (s *Store) UpdateEntry(ctx context.Context, updated journal.Entry) (*journal.Entry, error) {
	entries := s.readEntries(ctx)
	for i, e := range entries {
		if e.ID == updated.ID {
			entries[i] = updated
			if err := s.writeEntries(ctx, entries); err != nil {
				return nil, err
			}
			return &updated, nil
		}
	}
	return nil, nil
}

// DeleteEntry removes the entry with the given id. Deleting an absent id
// is not an error.
func (s *Store) DeleteEntry(ctx context.Context, id string) error {
	entries := s.readEntries(ctx)
	filtered := entries[:0]
	for _, e := range entries {
		if e.ID != id {
			filtered = append(filtered, e)
		}
	}
	return s.writeEntries(ctx, filtered)
}

// mutateEntry applies a single-field mutation as a whole-entry
// read-modify-write cycle.
func (s *Store) mutateEntry(ctx context.Context, id string, apply func(*journal.Entry)) (*journal.Entry, error) {
	entry, err := s.GetEntry(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}
	apply(entry)
	return s.UpdateEntry(ctx, *entry)
}

// ToggleFavorite flips the favorite flag on an entry.
func (s *Store) ToggleFavorite(ctx context.Context, id string) (*journal.Entry, error) {
	return s.mutateEntry(ctx, id, func(e *journal.Entry) {
		e.Favorite = !e.Favorite
	})
}

// UpdateMood sets the mood tag on an entry.
func (s *Store) UpdateMood(ctx context.Context, id string, mood journal.Mood) (*journal.Entry, error) {
	return s.mutateEntry(ctx, id, func(e *journal.Entry) {
		e.Mood = mood
	})
}

// UpdateSharing sets the sharing flag and the optional group set.
func (s *Store) UpdateSharing(ctx context.Context, id string, shared bool, groups []string) (*journal.Entry, error) {
	return s.mutateEntry(ctx, id, func(e *journal.Entry) {
		e.IsShared = shared
		if shared {
			e.SharedWithGroups = groups
		} else {
			e.SharedWithGroups = nil
		}
	})
}

// UpdateKickCount sets the kick counter on an entry.
func (s *Store) UpdateKickCount(ctx context.Context, id string, count int) (*journal.Entry, error) {
	if count < 0 {
		return nil, apperrors.ErrValidation
	}
	return s.mutateEntry(ctx, id, func(e *journal.Entry) {
		e.KickCount = count
	})
}

// GetFavorites returns the entries marked favorite, newest first.
func (s *Store) GetFavorites(ctx context.Context) ([]journal.Entry, error) {
	all, err := s.GetAllEntries(ctx)
	if err != nil {
		return nil, err
	}
	favorites := []journal.Entry{}
	for _, e := range all {
		if e.Favorite {
			favorites = append(favorites, e)
		}
	}
	return favorites, nil
}

// GetEntriesSharedWithGroup returns the entries shared with a group,
// newest first.
func (s *Store) GetEntriesSharedWithGroup(ctx context.Context, groupID string) ([]journal.Entry, error) {
	all, err := s.GetAllEntries(ctx)
	if err != nil {
		return nil, err
	}
	shared := []journal.Entry{}
	for _, e := range all {
		if e.SharedWith(groupID) {
			shared = append(shared, e)
		}
	}
	return shared, nil
}
