package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// InitPostgres initializes and returns a PostgreSQL connection pool for
// the hosted entry store.
func InitPostgres(databaseURL string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	// Set connection pool settings
	config.MaxConns = 25
	config.MinConns = 5
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = time.Minute * 30
	config.HealthCheckPeriod = time.Minute * 5

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Create tables if they don't exist
	if err := createTables(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return pool, nil
}

// createTables creates all required tables if they don't exist
func createTables(ctx context.Context, pool *pgxpool.Pool) error {
	// Journal entries table - mirrors the in-memory entry shape plus
	// ownership and bookkeeping columns. Media and group references are
	// JSON-typed columns deserialized at the adapter boundary.
	entriesTable := `
		CREATE TABLE IF NOT EXISTS journal_entries (
			id UUID PRIMARY KEY,
			user_id VARCHAR(255) NOT NULL,
			title VARCHAR(500) NOT NULL,
			content TEXT NOT NULL DEFAULT '',
			date TIMESTAMPTZ NOT NULL,
			favorite BOOLEAN NOT NULL DEFAULT FALSE,
			media JSONB NOT NULL DEFAULT '[]'::jsonb,
			mood VARCHAR(20) NOT NULL DEFAULT '',
			kick_count INTEGER NOT NULL DEFAULT 0 CHECK (kick_count >= 0),
			is_shared BOOLEAN NOT NULL DEFAULT FALSE,
			shared_with_groups JSONB NOT NULL DEFAULT '[]'::jsonb,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_journal_entries_user_id ON journal_entries(user_id);`,
		`CREATE INDEX IF NOT EXISTS idx_journal_entries_date ON journal_entries(date DESC);`,
		`CREATE INDEX IF NOT EXISTS idx_journal_entries_favorite ON journal_entries(user_id, favorite);`,
	}

	if _, err := pool.Exec(ctx, entriesTable); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	for _, index := range indexes {
		if _, err := pool.Exec(ctx, index); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}
