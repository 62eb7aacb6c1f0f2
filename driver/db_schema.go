package driver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaStatements creates the tables the ingestion service writes to and
// the unique constraints its upserts rely on. Every statement is idempotent.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS sources (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		base_url TEXT NOT NULL,
		api_key TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		value TEXT NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS source_categories (
		source_id TEXT NOT NULL REFERENCES sources(id) ON DELETE CASCADE,
		category_id TEXT NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
		PRIMARY KEY (source_id, category_id)
	)`,
	`CREATE TABLE IF NOT EXISTS authors (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS articles (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL DEFAULT '',
		content TEXT NOT NULL DEFAULT '',
		url TEXT NOT NULL UNIQUE,
		image_url TEXT NOT NULL DEFAULT '',
		source_id TEXT NOT NULL REFERENCES sources(id),
		category_id TEXT NOT NULL REFERENCES categories(id),
		author_id TEXT REFERENCES authors(id),
		published_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_articles_published_at ON articles (published_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_articles_source_id ON articles (source_id)`,
	`CREATE INDEX IF NOT EXISTS idx_articles_category_id ON articles (category_id)`,
}

// EnsureSchema applies the schema statements so the service can run against
// an empty database.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool, log *slog.Logger) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	for _, statement := range schemaStatements {
		if _, err := db.Exec(ctx, statement); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}

	log.InfoContext(ctx, "database schema ensured")

	return nil
}
