package repository

import (
	"context"

	"github.com/oliverDX1234/news-aggregator/domain"
)

//go:generate mockgen -source=interfaces.go -destination=../test/mocks/repository_mocks.go -package=mocks

// ArticleRepository handles article persistence. Upsert is keyed by the
// article's external URL and is idempotent across runs.
type ArticleRepository interface {
	Upsert(ctx context.Context, article *domain.Article) error
}

// AuthorRepository handles author persistence. FindOrCreateByName is atomic
// against concurrent resolutions racing on the same new name.
type AuthorRepository interface {
	FindOrCreateByName(ctx context.Context, name string) (string, error)
}

// SourceRepository reads the source registry reference data.
type SourceRepository interface {
	ListWithCategories(ctx context.Context) ([]domain.SourcePair, error)
}
