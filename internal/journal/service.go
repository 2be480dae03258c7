// Package journal holds the entry service: a single routing policy over
// the local and remote stores, the sync reconciler, and the sharing-group
// operations.
package journal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"io.winapps.bumpjournal/internal/apperrors"
	"io.winapps.bumpjournal/internal/localstore"
	models "io.winapps.bumpjournal/internal/models/journal"
)

// RemoteStore is the hosted persistence adapter the service routes to
// when a user session exists.
type RemoteStore interface {
	GetEntries(ctx context.Context, userID string) ([]models.Entry, error)
	GetEntry(ctx context.Context, userID, id string) (*models.Entry, error)
	CreateEntry(ctx context.Context, userID string, entry models.Entry) (*models.Entry, error)
	UpdateEntry(ctx context.Context, userID string, entry models.Entry) (*models.Entry, error)
	DeleteEntry(ctx context.Context, userID, id string) error
	UpsertEntries(ctx context.Context, userID string, entries []models.Entry) error
}

// Service applies the read/write routing policy: guest requests always go
// to the local store; authenticated requests try the remote store and
// fall back to the equivalent local operation on any remote failure. A
// transient backend failure never blocks journaling.
type Service struct {
	local  *localstore.Store
	remote RemoteStore
	logger *zap.SugaredLogger
}

// NewService creates the entry service.
func NewService(local *localstore.Store, remote RemoteStore, logger *zap.SugaredLogger) *Service {
	return &Service{local: local, remote: remote, logger: logger}
}

// Local exposes the underlying local store.
func (s *Service) Local() *localstore.Store {
	return s.local
}

// route runs the remote operation when a session exists and falls back
// to the local one on any remote error. Every entry operation goes
// through here so the fallback behavior stays uniform.
func route[T any](s *Service, userID, op string, remote func() (T, error), local func() (T, error)) (T, error) {
	if userID == "" {
		return local()
	}
	v, err := remote()
	if err != nil {
		s.logger.Warnw("remote store unavailable, falling back to local", "op", op, "error", err)
		return local()
	}
	return v, nil
}

func routeErr(s *Service, userID, op string, remote func() error, local func() error) error {
	if userID == "" {
		return local()
	}
	if err := remote(); err != nil {
		s.logger.Warnw("remote store unavailable, falling back to local", "op", op, "error", err)
		return local()
	}
	return nil
}

func validateEntry(entry *models.Entry) error {
	if entry.Title == "" {
		return fmt.Errorf("%w: title is required", apperrors.ErrValidation)
	}
	if !entry.Mood.Valid() {
		return fmt.Errorf("%w: unknown mood %q", apperrors.ErrValidation, entry.Mood)
	}
	if entry.KickCount < 0 {
		return fmt.Errorf("%w: kick count must not be negative", apperrors.ErrValidation)
	}
	for _, m := range entry.Media {
		if !m.Type.Valid() {
			return fmt.Errorf("%w: unknown media type %q", apperrors.ErrValidation, m.Type)
		}
	}
	return nil
}

// GetEntries returns the user's entries, newest first.
func (s *Service) GetEntries(ctx context.Context, userID string) ([]models.Entry, error) {
	return route(s, userID, "get entries",
		func() ([]models.Entry, error) { return s.remote.GetEntries(ctx, userID) },
		func() ([]models.Entry, error) { return s.local.GetAllEntries(ctx) },
	)
}

// GetFavorites returns the entries marked favorite, newest first.
func (s *Service) GetFavorites(ctx context.Context, userID string) ([]models.Entry, error) {
	return route(s, userID, "get favorites",
		func() ([]models.Entry, error) {
			all, err := s.remote.GetEntries(ctx, userID)
			if err != nil {
				return nil, err
			}
			favorites := []models.Entry{}
			for _, e := range all {
				if e.Favorite {
					favorites = append(favorites, e)
				}
			}
			return favorites, nil
		},
		func() ([]models.Entry, error) { return s.local.GetFavorites(ctx) },
	)
}

// GetEntry returns one entry, or nil if it does not exist in the store
// that answered.
func (s *Service) GetEntry(ctx context.Context, userID, id string) (*models.Entry, error) {
	return route(s, userID, "get entry",
		func() (*models.Entry, error) { return s.remote.GetEntry(ctx, userID, id) },
		func() (*models.Entry, error) { return s.local.GetEntry(ctx, id) },
	)
}

// CreateEntry validates and persists a new entry. The id and timestamps
// are assigned here, before any store is involved, so a remote failure
// can fall back to inserting the identical entry locally.
func (s *Service) CreateEntry(ctx context.Context, userID string, draft models.Entry) (*models.Entry, error) {
	if err := validateEntry(&draft); err != nil {
		return nil, err
	}

	if userID == "" {
		return s.local.SaveEntry(ctx, draft)
	}

	now := time.Now().UTC()
	draft.ID = uuid.New().String()
	if draft.Date.IsZero() {
		draft.Date = now
	}
	draft.CreatedAt = now
	draft.UpdatedAt = now
	if draft.Media == nil {
		draft.Media = []models.MediaItem{}
	}

	return route(s, userID, "create entry",
		func() (*models.Entry, error) { return s.remote.CreateEntry(ctx, userID, draft) },
		func() (*models.Entry, error) { return s.local.InsertEntry(ctx, draft) },
	)
}

// UpdateEntry replaces a stored entry wholesale. Returns nil if the id
// is unknown to the store that answered.
func (s *Service) UpdateEntry(ctx context.Context, userID string, entry models.Entry) (*models.Entry, error) {
	if err := validateEntry(&entry); err != nil {
		return nil, err
	}
	return route(s, userID, "update entry",
		func() (*models.Entry, error) { return s.remote.UpdateEntry(ctx, userID, entry) },
		func() (*models.Entry, error) { return s.local.UpdateEntry(ctx, entry) },
	)
}

// DeleteEntry removes an entry permanently from whichever store
// currently owns it. Idempotent.
func (s *Service) DeleteEntry(ctx context.Context, userID, id string) error {
	return routeErr(s, userID, "delete entry",
		func() error { return s.remote.DeleteEntry(ctx, userID, id) },
		func() error { return s.local.DeleteEntry(ctx, id) },
	)
}

// remoteMutate applies a single-field mutation against the remote store
// as a whole-entry read-modify-write cycle.
func (s *Service) remoteMutate(ctx context.Context, userID, id string, apply func(*models.Entry)) (*models.Entry, error) {
	entry, err := s.remote.GetEntry(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}
	apply(entry)
	return s.remote.UpdateEntry(ctx, userID, *entry)
}

// ToggleFavorite flips the favorite flag. Returns nil if the entry does
// not exist.
func (s *Service) ToggleFavorite(ctx context.Context, userID, id string) (*models.Entry, error) {
	return route(s, userID, "toggle favorite",
		func() (*models.Entry, error) {
			return s.remoteMutate(ctx, userID, id, func(e *models.Entry) { e.Favorite = !e.Favorite })
		},
		func() (*models.Entry, error) { return s.local.ToggleFavorite(ctx, id) },
	)
}

// UpdateMood sets the mood tag on an entry.
func (s *Service) UpdateMood(ctx context.Context, userID, id string, mood models.Mood) (*models.Entry, error) {
	if !mood.Valid() {
		return nil, fmt.Errorf("%w: unknown mood %q", apperrors.ErrValidation, mood)
	}
	return route(s, userID, "update mood",
		func() (*models.Entry, error) {
			return s.remoteMutate(ctx, userID, id, func(e *models.Entry) { e.Mood = mood })
		},
		func() (*models.Entry, error) { return s.local.UpdateMood(ctx, id, mood) },
	)
}

// UpdateKickCount sets the kick counter on an entry.
func (s *Service) UpdateKickCount(ctx context.Context, userID, id string, count int) (*models.Entry, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: kick count must not be negative", apperrors.ErrValidation)
	}
	return route(s, userID, "update kick count",
		func() (*models.Entry, error) {
			return s.remoteMutate(ctx, userID, id, func(e *models.Entry) { e.KickCount = count })
		},
		func() (*models.Entry, error) { return s.local.UpdateKickCount(ctx, id, count) },
	)
}

// UpdateSharing sets the sharing flag and the optional group id set.
func (s *Service) UpdateSharing(ctx context.Context, userID, id string, shared bool, groups []string) (*models.Entry, error) {
	return route(s, userID, "update sharing",
		func() (*models.Entry, error) {
			return s.remoteMutate(ctx, userID, id, func(e *models.Entry) {
				e.IsShared = shared
				if shared {
					e.SharedWithGroups = groups
				} else {
					e.SharedWithGroups = nil
				}
			})
		},
		func() (*models.Entry, error) { return s.local.UpdateSharing(ctx, id, shared, groups) },
	)
}

// SyncLocalEntries pushes every locally-stored entry into the user's
// remote store, upserting by id. Local storage is kept afterwards as a
// standby backup. Called once per login or signup; the caller logs
// failures instead of surfacing them.
func (s *Service) SyncLocalEntries(ctx context.Context, userID string) (int, error) {
	entries, err := s.local.GetAllEntries(ctx)
	if err != nil {
		return 0, err
	}
	if len(entries) == 0 {
		return 0, nil
	}

	if err := s.remote.UpsertEntries(ctx, userID, entries); err != nil {
		return 0, fmt.Errorf("failed to sync local entries: %w", err)
	}

	s.logger.Infow("synced local entries to remote store", "user_id", userID, "count", len(entries))
	return len(entries), nil
}
