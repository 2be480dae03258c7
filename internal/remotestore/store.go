// Package remotestore implements the hosted persistence adapter: the same
// logical operations as the local store, scoped to one user's rows in
// PostgreSQL, with a Redis read cache in front of point lookups.
package remotestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"io.winapps.bumpjournal/internal/models/journal"
)

const entryCacheTTL = 24 * time.Hour

// entryCacheKey scopes cached entries by owner, so a cache hit can never
// leak another user's entry even when ids collide.
func entryCacheKey(userID, id string) string {
	return fmt.Sprintf("entry:%s:%s", userID, id)
}

// ErrMediaDecode indicates a media payload that did not match the
// expected shape. Raised at the adapter boundary instead of silently
// coercing the column.
var ErrMediaDecode = errors.New("remotestore: malformed media payload")

// Store is the Remote Persistence Adapter.
type Store struct {
	postgres *pgxpool.Pool
	redis    *redis.Client
	logger   *zap.SugaredLogger
}

// New creates a remote store over the given pool and cache.
func New(postgres *pgxpool.Pool, redisClient *redis.Client, logger *zap.SugaredLogger) *Store {
	return &Store{postgres: postgres, redis: redisClient, logger: logger}
}

// decodeMedia parses a media JSON column into typed media items.
func decodeMedia(raw []byte) ([]journal.MediaItem, error) {
	if len(raw) == 0 {
		return []journal.MediaItem{}, nil
	}
	var media []journal.MediaItem
	if err := json.Unmarshal(raw, &media); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMediaDecode, err)
	}
	if media == nil {
		media = []journal.MediaItem{}
	}
	return media, nil
}

func decodeGroupRefs(raw []byte) []string {
	if len(raw) == 0 {
		return nil
	}
	var refs []string
	if err := json.Unmarshal(raw, &refs); err != nil {
		return nil
	}
	return refs
}

const entryColumns = `id, title, content, date, favorite, media, mood, kick_count, is_shared, shared_with_groups, created_at, updated_at`

func scanEntry(row pgx.Row) (*journal.Entry, error) {
	var entry journal.Entry
	var mediaRaw, groupsRaw []byte
	err := row.Scan(
		&entry.ID,
		&entry.Title,
		&entry.Content,
		&entry.Date,
		&entry.Favorite,
		&mediaRaw,
		&entry.Mood,
		&entry.KickCount,
		&entry.IsShared,
		&groupsRaw,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	entry.Media, err = decodeMedia(mediaRaw)
	if err != nil {
		return nil, err
	}
	entry.SharedWithGroups = decodeGroupRefs(groupsRaw)
	return &entry, nil
}

// GetEntries returns all of the user's entries, newest first.
func (s *Store) GetEntries(ctx context.Context, userID string) ([]journal.Entry, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM journal_entries
		WHERE user_id = $1
		ORDER BY date DESC
	`, entryColumns)
	rows, err := s.postgres.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch entries: %w", err)
	}
	defer rows.Close()

	entries := []journal.Entry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}
	return entries, nil
}

// GetEntry returns the user's entry with the given id, or nil if absent.
// Absence is not an error.
func (s *Store) GetEntry(ctx context.Context, userID, id string) (*journal.Entry, error) {
	// Check Redis cache first
	cached, err := s.redis.Get(ctx, entryCacheKey(userID, id)).Result()
	if err == nil && cached != "" {
		var entry journal.Entry
		if err := json.Unmarshal([]byte(cached), &entry); err == nil {
			return &entry, nil
		}
	}

	query := fmt.Sprintf(`
		SELECT %s FROM journal_entries
		WHERE id = $1 AND user_id = $2
	`, entryColumns)
	entry, err := scanEntry(s.postgres.QueryRow(ctx, query, id, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch entry: %w", err)
	}

	s.cacheEntry(ctx, userID, entry)
	return entry, nil
}

// CreateEntry inserts an entry whose id and timestamps were already
// assigned by the caller, so the same id survives a local fallback.
func (s *Store) CreateEntry(ctx context.Context, userID string, entry journal.Entry) (*journal.Entry, error) {
	mediaRaw, err := json.Marshal(entry.Media)
	if err != nil {
		return nil, err
	}
	groupsRaw, err := json.Marshal(entry.SharedWithGroups)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO journal_entries (id, user_id, title, content, date, favorite, media, mood, kick_count, is_shared, shared_with_groups, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err = s.postgres.Exec(ctx, query,
		entry.ID,
		userID,
		entry.Title,
		entry.Content,
		entry.Date,
		entry.Favorite,
		mediaRaw,
		entry.Mood,
		entry.KickCount,
		entry.IsShared,
		groupsRaw,
		entry.CreatedAt,
		entry.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}

	s.cacheEntry(ctx, userID, &entry)
	return &entry, nil
}

// UpdateEntry replaces the user's stored entry, stamping a fresh
// updated_at. Returns nil if no row matched.
func (s *Store) UpdateEntry(ctx context.Context, userID string, entry journal.Entry) (*journal.Entry, error) {
	entry.UpdatedAt = time.Now().UTC()

	mediaRaw, err := json.Marshal(entry.Media)
	if err != nil {
		return nil, err
	}
	groupsRaw, err := json.Marshal(entry.SharedWithGroups)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE journal_entries
		SET title = $1, content = $2, date = $3, favorite = $4, media = $5, mood = $6,
			kick_count = $7, is_shared = $8, shared_with_groups = $9, updated_at = $10
		WHERE id = $11 AND user_id = $12
	`
	tag, err := s.postgres.Exec(ctx, query,
		entry.Title,
		entry.Content,
		entry.Date,
		entry.Favorite,
		mediaRaw,
		entry.Mood,
		entry.KickCount,
		entry.IsShared,
		groupsRaw,
		entry.UpdatedAt,
		entry.ID,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, nil
	}

	s.invalidate(ctx, userID, entry.ID)
	return &entry, nil
}

// DeleteEntry removes the user's entry by id. Deleting an absent id is
// not an error.
func (s *Store) DeleteEntry(ctx context.Context, userID, id string) error {
	query := `
		DELETE FROM journal_entries
		WHERE id = $1 AND user_id = $2
	`
	if _, err := s.postgres.Exec(ctx, query, id, userID); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	s.invalidate(ctx, userID, id)
	return nil
}

// UpsertEntries writes a batch of entries keyed by id: insert if absent,
// overwrite if present. Used by the sync reconciler on login.
func (s *Store) UpsertEntries(ctx context.Context, userID string, entries []journal.Entry) error {
	tx, err := s.postgres.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO journal_entries (id, user_id, title, content, date, favorite, media, mood, kick_count, is_shared, shared_with_groups, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO UPDATE SET
			user_id = EXCLUDED.user_id,
			title = EXCLUDED.title,
			content = EXCLUDED.content,
			date = EXCLUDED.date,
			favorite = EXCLUDED.favorite,
			media = EXCLUDED.media,
			mood = EXCLUDED.mood,
			kick_count = EXCLUDED.kick_count,
			is_shared = EXCLUDED.is_shared,
			shared_with_groups = EXCLUDED.shared_with_groups,
			updated_at = EXCLUDED.updated_at
	`
	now := time.Now().UTC()
	for _, entry := range entries {
		mediaRaw, err := json.Marshal(entry.Media)
		if err != nil {
			return err
		}
		groupsRaw, err := json.Marshal(entry.SharedWithGroups)
		if err != nil {
			return err
		}
		createdAt := entry.CreatedAt
		if createdAt.IsZero() {
			createdAt = entry.Date
		}
		_, err = tx.Exec(ctx, query,
			entry.ID,
			userID,
			entry.Title,
			entry.Content,
			entry.Date,
			entry.Favorite,
			mediaRaw,
			entry.Mood,
			entry.KickCount,
			entry.IsShared,
			groupsRaw,
			createdAt,
			now,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert entry %s: %w", entry.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit sync batch: %w", err)
	}

	for _, entry := range entries {
		s.invalidate(ctx, userID, entry.ID)
	}
	return nil
}

func (s *Store) cacheEntry(ctx context.Context, userID string, entry *journal.Entry) {
	raw, err := json.Marshal(entry)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, entryCacheKey(userID, entry.ID), raw, entryCacheTTL).Err(); err != nil {
		s.logger.Warnw("failed to cache entry", "entry_id", entry.ID, "error", err)
	}
}

func (s *Store) invalidate(ctx context.Context, userID, id string) {
	if err := s.redis.Del(ctx, entryCacheKey(userID, id)).Err(); err != nil {
		s.logger.Warnw("failed to invalidate entry cache", "entry_id", id, "error", err)
	}
}
