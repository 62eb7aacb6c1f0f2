package driver

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oliverDX1234/news-aggregator/domain"
)

// GetSourcesWithCategories returns every source joined with each of its
// supported categories in one query, avoiding per-source round trips.
func GetSourcesWithCategories(ctx context.Context, db *pgxpool.Pool) ([]domain.SourcePair, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	query := `
		SELECT s.id, s.name, s.base_url, s.api_key,
		       c.id, c.name, c.value
		FROM   sources s
		JOIN   source_categories sc ON sc.source_id = s.id
		JOIN   categories c ON c.id = sc.category_id
		ORDER  BY s.name, c.name
	`

	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query sources with categories: %w", err)
	}
	defer rows.Close()

	var pairs []domain.SourcePair

	for rows.Next() {
		var pair domain.SourcePair

		err = rows.Scan(
			&pair.Source.ID,
			&pair.Source.Name,
			&pair.Source.BaseURL,
			&pair.Source.APIKey,
			&pair.Category.ID,
			&pair.Category.Name,
			&pair.Category.Value,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan source pair: %w", err)
		}

		pairs = append(pairs, pair)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read source pairs: %w", err)
	}

	return pairs, nil
}
