package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oliverDX1234/news-aggregator/driver"
)

// AuthorRepository implementation.
type authorRepository struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

// NewAuthorRepository creates a new author repository.
func NewAuthorRepository(db *pgxpool.Pool, logger *slog.Logger) AuthorRepository {
	return &authorRepository{
		db:     db,
		logger: logger,
	}
}

// FindOrCreateByName resolves a canonical author name to its ID, creating
// the row when absent. The underlying statement is a single atomic upsert,
// so concurrent resolutions of the same new name cannot create duplicates.
func (r *authorRepository) FindOrCreateByName(ctx context.Context, name string) (string, error) {
	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return "", fmt.Errorf("failed to find or create author: database connection is nil")
	}

	if name == "" {
		return "", fmt.Errorf("failed to find or create author: name cannot be empty")
	}

	authorID, err := driver.FindOrCreateAuthorByName(ctx, r.db, name)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to find or create author", "error", err, "name", name)
		return "", fmt.Errorf("failed to find or create author: %w", err)
	}

	return authorID, nil
}
