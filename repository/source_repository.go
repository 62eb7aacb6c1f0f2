package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oliverDX1234/news-aggregator/domain"
	"github.com/oliverDX1234/news-aggregator/driver"
)

// SourceRepository implementation.
type sourceRepository struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

// NewSourceRepository creates a new source repository.
func NewSourceRepository(db *pgxpool.Pool, logger *slog.Logger) SourceRepository {
	return &sourceRepository{
		db:     db,
		logger: logger,
	}
}

// ListWithCategories returns every source paired with each of its supported
// categories, read in one joined query.
func (r *sourceRepository) ListWithCategories(ctx context.Context) ([]domain.SourcePair, error) {
	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return nil, fmt.Errorf("failed to list sources: database connection is nil")
	}

	pairs, err := driver.GetSourcesWithCategories(ctx, r.db)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to list sources with categories", "error", err)
		return nil, fmt.Errorf("failed to list sources: %w", err)
	}

	r.logger.DebugContext(ctx, "listed source pairs", "count", len(pairs))

	return pairs, nil
}
