package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oliverDX1234/news-aggregator/domain"
	"github.com/oliverDX1234/news-aggregator/driver"
)

// ArticleRepository implementation.
type articleRepository struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

// NewArticleRepository creates a new article repository.
func NewArticleRepository(db *pgxpool.Pool, logger *slog.Logger) ArticleRepository {
	return &articleRepository{
		db:     db,
		logger: logger,
	}
}

// Upsert inserts the article or updates the existing row holding the same
// external URL.
func (r *articleRepository) Upsert(ctx context.Context, article *domain.Article) error {
	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return fmt.Errorf("failed to upsert article: database connection is nil")
	}

	if err := driver.UpsertArticleByURL(ctx, r.db, article); err != nil {
		r.logger.ErrorContext(ctx, "failed to upsert article", "error", err, "url", article.URL)
		return fmt.Errorf("failed to upsert article: %w", err)
	}

	r.logger.DebugContext(ctx, "article upserted", "url", article.URL)

	return nil
}
