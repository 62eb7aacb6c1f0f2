package driver

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FindOrCreateAuthorByName resolves a canonical author name to its ID,
// creating the row when absent. The no-op DO UPDATE makes the statement
// return the existing id on conflict, so the whole find-or-create is one
// atomic statement and concurrent callers racing on a new name cannot
// produce duplicates.
func FindOrCreateAuthorByName(ctx context.Context, db *pgxpool.Pool, name string) (string, error) {
	if db == nil {
		return "", fmt.Errorf("database connection is nil")
	}

	query := `
		INSERT INTO authors (id, name)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`

	var authorID string

	err := db.QueryRow(ctx, query, uuid.New().String(), name).Scan(&authorID)
	if err != nil {
		return "", fmt.Errorf("failed to find or create author %q: %w", name, err)
	}

	return authorID, nil
}
