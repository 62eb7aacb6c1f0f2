package driver

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oliverDX1234/news-aggregator/domain"
)

// UpsertArticleByURL inserts the article, or updates the row holding the
// same external URL. The existing row keeps its id; every other ingested
// field reflects the most recent run that produced the URL.
func UpsertArticleByURL(ctx context.Context, db *pgxpool.Pool, article *domain.Article) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	if article.URL == "" {
		return fmt.Errorf("article URL cannot be empty")
	}

	if article.ID == "" {
		article.ID = uuid.New().String()
	}

	query := `
		INSERT INTO articles (id, title, content, url, image_url, source_id, category_id, author_id, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (url) DO UPDATE SET
			title = EXCLUDED.title,
			content = EXCLUDED.content,
			image_url = EXCLUDED.image_url,
			source_id = EXCLUDED.source_id,
			category_id = EXCLUDED.category_id,
			author_id = EXCLUDED.author_id,
			published_at = EXCLUDED.published_at
	`

	_, err := db.Exec(ctx, query,
		article.ID,
		article.Title,
		article.Content,
		article.URL,
		article.ImageURL,
		article.SourceID,
		article.CategoryID,
		article.AuthorID,
		article.PublishedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert article %s: %w", article.URL, err)
	}

	return nil
}
