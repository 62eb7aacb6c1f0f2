package service

import (
	"context"

	"github.com/oliverDX1234/news-aggregator/domain"
)

//go:generate mockgen -source=interfaces.go -destination=../test/mocks/service_mocks.go -package=mocks

// IngestionService runs one full ingestion pass over every (source, category)
// pair known to the source registry.
type IngestionService interface {
	Run(ctx context.Context) (*RunResult, error)
}

// NormalizerService maps a provider-native record into canonical article
// fields, applying per-field fallback chains.
type NormalizerService interface {
	Normalize(ctx context.Context, record domain.RawRecord) (*NormalizedArticle, error)
}

// AuthorResolverService resolves a raw byline string to a stable author
// identity, creating one when absent.
type AuthorResolverService interface {
	Resolve(ctx context.Context, rawName string) (*string, error)
}

// DeadLetterPublisher keeps records that failed persistence for later
// inspection. Publication failures never fail the run.
type DeadLetterPublisher interface {
	PublishFailedRecord(ctx context.Context, pair domain.SourcePair, record domain.RawRecord, cause error) error
}

// RunResult summarizes one ingestion run. The run always completes; failures
// surface only through logs and these counters.
type RunResult struct {
	Pairs          int
	FetchedRecords int
	StoredArticles int
	SkippedRecords int
	FailedPairs    int
}

// NormalizedArticle carries canonical article fields plus the raw byline
// string, which is handed to the author resolver rather than interpreted by
// the normalizer.
type NormalizedArticle struct {
	Article   domain.Article
	RawAuthor string
}
