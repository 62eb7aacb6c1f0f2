package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/oliverDX1234/news-aggregator/adapter"
	"github.com/oliverDX1234/news-aggregator/domain"
	"github.com/oliverDX1234/news-aggregator/repository"
	"github.com/oliverDX1234/news-aggregator/utils"
)

// ingestionService orchestrates one run: enumerate pairs, fetch, normalize,
// persist. Failures are isolated at the pair boundary; a run always reaches
// completion.
type ingestionService struct {
	sources     repository.SourceRepository
	articles    repository.ArticleRepository
	normalizer  NormalizerService
	authors     AuthorResolverService
	registry    *adapter.Registry
	pool        *utils.IngestWorkerPool
	deadletters DeadLetterPublisher
	logger      *slog.Logger
	running     atomic.Bool
}

// NewIngestionService creates a new ingestion service. deadletters may be
// nil, in which case failed records are only logged.
func NewIngestionService(
	sources repository.SourceRepository,
	articles repository.ArticleRepository,
	normalizer NormalizerService,
	authors AuthorResolverService,
	registry *adapter.Registry,
	pool *utils.IngestWorkerPool,
	deadletters DeadLetterPublisher,
	logger *slog.Logger,
) IngestionService {
	return &ingestionService{
		sources:     sources,
		articles:    articles,
		normalizer:  normalizer,
		authors:     authors,
		registry:    registry,
		pool:        pool,
		deadletters: deadletters,
		logger:      logger,
	}
}

// Run executes one ingestion pass. Runs are serialized; a second caller gets
// domain.ErrRunInProgress while one is executing. Once all pairs have been
// attempted the run completes regardless of individual pair outcomes.
func (s *ingestionService) Run(ctx context.Context) (*RunResult, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, domain.ErrRunInProgress
	}
	defer s.running.Store(false)

	pairs, err := s.sources.ListWithCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate source pairs: %w", err)
	}

	s.logger.InfoContext(ctx, "starting ingestion run", "pairs", len(pairs), "workers", s.pool.Workers())

	results := s.pool.ProcessPairs(ctx, pairs, s.processPair)

	result := &RunResult{Pairs: len(results)}

	for _, pairResult := range results {
		result.FetchedRecords += pairResult.Fetched
		result.StoredArticles += pairResult.Stored
		result.SkippedRecords += pairResult.Skipped

		if pairResult.Err != nil {
			result.FailedPairs++
		}
	}

	s.logger.InfoContext(ctx, "ingestion run completed",
		"pairs", result.Pairs,
		"fetched", result.FetchedRecords,
		"stored", result.StoredArticles,
		"skipped", result.SkippedRecords,
		"failed_pairs", result.FailedPairs)

	return result, nil
}

// processPair handles one (source, category) pair end to end. Any failure,
// including a panic from an adapter, is contained here so sibling pairs keep
// processing.
func (s *ingestionService) processPair(ctx context.Context, pair domain.SourcePair) (result utils.PairResult) {
	result.Pair = pair

	log := s.logger.With("source", pair.Source.Name, "category", pair.Category.Name)

	defer func() {
		if r := recover(); r != nil {
			result.Err = fmt.Errorf("pair processing panicked: %v", r)
			log.ErrorContext(ctx, "pair processing panicked", "panic", r)
		}
	}()

	log.InfoContext(ctx, "scraping articles")

	providerAdapter, err := s.registry.Resolve(pair.Source.Name)
	if err != nil {
		result.Err = err
		log.ErrorContext(ctx, "failed to resolve adapter", "error", err)

		return result
	}

	records, err := providerAdapter.Fetch(ctx, pair.Source, pair.Category)
	if err != nil {
		result.Err = err
		log.ErrorContext(ctx, "failed to fetch articles", "error", err)

		return result
	}

	if len(records) == 0 {
		log.InfoContext(ctx, "no articles found")
		return result
	}

	result.Fetched = len(records)

	for _, record := range records {
		stored, err := s.persistRecord(ctx, pair, record)
		if err != nil {
			result.Skipped++

			if errors.Is(err, domain.ErrMissingIdentity) {
				log.WarnContext(ctx, "record skipped, missing identity URL")
			} else {
				log.ErrorContext(ctx, "failed to persist record", "error", err)

				if s.deadletters != nil {
					if dlqErr := s.deadletters.PublishFailedRecord(ctx, pair, record, err); dlqErr != nil {
						log.ErrorContext(ctx, "failed to dead-letter record", "error", dlqErr)
					}
				}
			}

			continue
		}

		if stored {
			result.Stored++
		}
	}

	log.InfoContext(ctx, "pair completed", "fetched", result.Fetched, "stored", result.Stored, "skipped", result.Skipped)

	return result
}

// persistRecord normalizes one raw record, resolves its author, and upserts
// the article. Author resolution failure downgrades to an article without an
// author link rather than dropping the record.
func (s *ingestionService) persistRecord(ctx context.Context, pair domain.SourcePair, record domain.RawRecord) (bool, error) {
	normalized, err := s.normalizer.Normalize(ctx, record)
	if err != nil {
		return false, err
	}

	article := normalized.Article
	article.SourceID = pair.Source.ID
	article.CategoryID = pair.Category.ID

	authorID, err := s.authors.Resolve(ctx, normalized.RawAuthor)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to resolve author, storing article without author",
			"error", err, "url", article.URL)
	} else {
		article.AuthorID = authorID
	}

	if err := s.articles.Upsert(ctx, &article); err != nil {
		return false, err
	}

	return true, nil
}
