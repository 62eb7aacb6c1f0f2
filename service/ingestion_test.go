// ABOUTME: This file tests the ingestion orchestrator end to end against mocked collaborators
// ABOUTME: Covers counter aggregation, pair and record failure isolation, and run serialization

package service_test

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oliverDX1234/news-aggregator/adapter"
	"github.com/oliverDX1234/news-aggregator/domain"
	"github.com/oliverDX1234/news-aggregator/service"
	"github.com/oliverDX1234/news-aggregator/test/mocks"
	"github.com/oliverDX1234/news-aggregator/utils"
)

func newsAPIPair(categoryValue string) domain.SourcePair {
	return domain.SourcePair{
		Source:   domain.Source{ID: "src-newsapi", Name: adapter.SourceNewsAPI, BaseURL: "https://newsapi.example", APIKey: "key"},
		Category: domain.Category{ID: "cat-" + categoryValue, Name: categoryValue, Value: categoryValue},
	}
}

func guardianPair(categoryValue string) domain.SourcePair {
	return domain.SourcePair{
		Source:   domain.Source{ID: "src-guardian", Name: adapter.SourceGuardian, BaseURL: "https://guardian.example", APIKey: "key"},
		Category: domain.Category{ID: "cat-" + categoryValue, Name: categoryValue, Value: categoryValue},
	}
}

func newTestPool() *utils.IngestWorkerPool {
	return utils.NewIngestWorkerPool(2, 4, slog.Default())
}

func TestIngestionService_Run_StoresFetchedArticles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pair := newsAPIPair("science")
	records := []domain.RawRecord{
		{"url": "https://example.com/one"},
		{"url": "https://example.com/two"},
	}

	sources := mocks.NewMockSourceRepository(ctrl)
	sources.EXPECT().
		ListWithCategories(gomock.Any()).
		Return([]domain.SourcePair{pair}, nil).
		Times(1)

	newsAdapter := mocks.NewMockAdapter(ctrl)
	newsAdapter.EXPECT().
		Fetch(gomock.Any(), pair.Source, pair.Category).
		Return(records, nil).
		Times(1)

	normalizer := mocks.NewMockNormalizerService(ctrl)
	normalizer.EXPECT().
		Normalize(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record domain.RawRecord) (*service.NormalizedArticle, error) {
			return &service.NormalizedArticle{
				Article:   domain.Article{URL: record.FirstString("url"), Title: "t"},
				RawAuthor: "By Jane Doe",
			}, nil
		}).
		Times(2)

	authorID := "author-1"
	authors := mocks.NewMockAuthorResolverService(ctrl)
	authors.EXPECT().
		Resolve(gomock.Any(), "By Jane Doe").
		Return(&authorID, nil).
		Times(2)

	var mu sync.Mutex

	var stored []*domain.Article

	articles := mocks.NewMockArticleRepository(ctrl)
	articles.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, article *domain.Article) error {
			mu.Lock()
			defer mu.Unlock()
			stored = append(stored, article)

			return nil
		}).
		Times(2)

	registry := adapter.NewRegistryWithAdapters(map[string]adapter.Adapter{
		adapter.SourceNewsAPI: newsAdapter,
	})

	svc := service.NewIngestionService(sources, articles, normalizer, authors, registry, newTestPool(), nil, slog.Default())

	result, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Pairs)
	assert.Equal(t, 2, result.FetchedRecords)
	assert.Equal(t, 2, result.StoredArticles)
	assert.Equal(t, 0, result.SkippedRecords)
	assert.Equal(t, 0, result.FailedPairs)

	require.Len(t, stored, 2)

	for _, article := range stored {
		assert.Equal(t, pair.Source.ID, article.SourceID)
		assert.Equal(t, pair.Category.ID, article.CategoryID)
		require.NotNil(t, article.AuthorID)
		assert.Equal(t, authorID, *article.AuthorID)
	}
}

func TestIngestionService_Run_FetchFailureIsolatedToPair(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	healthy := newsAPIPair("science")
	broken := guardianPair("sport")

	sources := mocks.NewMockSourceRepository(ctrl)
	sources.EXPECT().
		ListWithCategories(gomock.Any()).
		Return([]domain.SourcePair{healthy, broken}, nil).
		Times(1)

	newsAdapter := mocks.NewMockAdapter(ctrl)
	newsAdapter.EXPECT().
		Fetch(gomock.Any(), healthy.Source, healthy.Category).
		Return([]domain.RawRecord{{"url": "https://example.com/one"}}, nil).
		Times(1)

	guardianAdapter := mocks.NewMockAdapter(ctrl)
	guardianAdapter.EXPECT().
		Fetch(gomock.Any(), broken.Source, broken.Category).
		Return(nil, errors.New("unexpected status 429 Too Many Requests")).
		Times(1)

	normalizer := mocks.NewMockNormalizerService(ctrl)
	normalizer.EXPECT().
		Normalize(gomock.Any(), gomock.Any()).
		Return(&service.NormalizedArticle{Article: domain.Article{URL: "https://example.com/one"}}, nil).
		Times(1)

	authors := mocks.NewMockAuthorResolverService(ctrl)
	authors.EXPECT().Resolve(gomock.Any(), "").Return(nil, nil).Times(1)

	articles := mocks.NewMockArticleRepository(ctrl)
	articles.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	registry := adapter.NewRegistryWithAdapters(map[string]adapter.Adapter{
		adapter.SourceNewsAPI:  newsAdapter,
		adapter.SourceGuardian: guardianAdapter,
	})

	svc := service.NewIngestionService(sources, articles, normalizer, authors, registry, newTestPool(), nil, slog.Default())

	result, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, result.Pairs)
	assert.Equal(t, 1, result.FailedPairs)
	assert.Equal(t, 1, result.StoredArticles)
}

func TestIngestionService_Run_AdapterPanicIsolatedToPair(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pair := newsAPIPair("science")

	sources := mocks.NewMockSourceRepository(ctrl)
	sources.EXPECT().
		ListWithCategories(gomock.Any()).
		Return([]domain.SourcePair{pair}, nil).
		Times(1)

	newsAdapter := mocks.NewMockAdapter(ctrl)
	newsAdapter.EXPECT().
		Fetch(gomock.Any(), pair.Source, pair.Category).
		DoAndReturn(func(context.Context, domain.Source, domain.Category) ([]domain.RawRecord, error) {
			panic("adapter exploded")
		}).
		Times(1)

	normalizer := mocks.NewMockNormalizerService(ctrl)
	authors := mocks.NewMockAuthorResolverService(ctrl)
	articles := mocks.NewMockArticleRepository(ctrl)

	registry := adapter.NewRegistryWithAdapters(map[string]adapter.Adapter{
		adapter.SourceNewsAPI: newsAdapter,
	})

	svc := service.NewIngestionService(sources, articles, normalizer, authors, registry, newTestPool(), nil, slog.Default())

	result, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Pairs)
	assert.Equal(t, 1, result.FailedPairs)
	assert.Equal(t, 0, result.StoredArticles)
}

func TestIngestionService_Run_RecordWithoutIdentitySkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pair := newsAPIPair("science")

	sources := mocks.NewMockSourceRepository(ctrl)
	sources.EXPECT().
		ListWithCategories(gomock.Any()).
		Return([]domain.SourcePair{pair}, nil).
		Times(1)

	newsAdapter := mocks.NewMockAdapter(ctrl)
	newsAdapter.EXPECT().
		Fetch(gomock.Any(), pair.Source, pair.Category).
		Return([]domain.RawRecord{
			{"title": "no url here"},
			{"url": "https://example.com/ok"},
		}, nil).
		Times(1)

	normalizer := mocks.NewMockNormalizerService(ctrl)
	normalizer.EXPECT().
		Normalize(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record domain.RawRecord) (*service.NormalizedArticle, error) {
			externalURL := record.FirstString("url")
			if externalURL == "" {
				return nil, domain.ErrMissingIdentity
			}

			return &service.NormalizedArticle{Article: domain.Article{URL: externalURL}}, nil
		}).
		Times(2)

	authors := mocks.NewMockAuthorResolverService(ctrl)
	authors.EXPECT().Resolve(gomock.Any(), "").Return(nil, nil).Times(1)

	articles := mocks.NewMockArticleRepository(ctrl)
	articles.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	registry := adapter.NewRegistryWithAdapters(map[string]adapter.Adapter{
		adapter.SourceNewsAPI: newsAdapter,
	})

	svc := service.NewIngestionService(sources, articles, normalizer, authors, registry, newTestPool(), nil, slog.Default())

	result, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, result.FetchedRecords)
	assert.Equal(t, 1, result.StoredArticles)
	assert.Equal(t, 1, result.SkippedRecords)
	assert.Equal(t, 0, result.FailedPairs)
}

func TestIngestionService_Run_AuthorFailureStoresWithoutAuthor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pair := newsAPIPair("science")

	sources := mocks.NewMockSourceRepository(ctrl)
	sources.EXPECT().
		ListWithCategories(gomock.Any()).
		Return([]domain.SourcePair{pair}, nil).
		Times(1)

	newsAdapter := mocks.NewMockAdapter(ctrl)
	newsAdapter.EXPECT().
		Fetch(gomock.Any(), pair.Source, pair.Category).
		Return([]domain.RawRecord{{"url": "https://example.com/one", "author": "Jane Doe"}}, nil).
		Times(1)

	normalizer := mocks.NewMockNormalizerService(ctrl)
	normalizer.EXPECT().
		Normalize(gomock.Any(), gomock.Any()).
		Return(&service.NormalizedArticle{
			Article:   domain.Article{URL: "https://example.com/one"},
			RawAuthor: "Jane Doe",
		}, nil).
		Times(1)

	authors := mocks.NewMockAuthorResolverService(ctrl)
	authors.EXPECT().
		Resolve(gomock.Any(), "Jane Doe").
		Return(nil, errors.New("database connection failed")).
		Times(1)

	articles := mocks.NewMockArticleRepository(ctrl)
	articles.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, article *domain.Article) error {
			assert.Nil(t, article.AuthorID)
			return nil
		}).
		Times(1)

	registry := adapter.NewRegistryWithAdapters(map[string]adapter.Adapter{
		adapter.SourceNewsAPI: newsAdapter,
	})

	svc := service.NewIngestionService(sources, articles, normalizer, authors, registry, newTestPool(), nil, slog.Default())

	result, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.StoredArticles)
	assert.Equal(t, 0, result.SkippedRecords)
}

func TestIngestionService_Run_PersistenceFailureDeadLetters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pair := newsAPIPair("science")
	record := domain.RawRecord{"url": "https://example.com/one"}

	sources := mocks.NewMockSourceRepository(ctrl)
	sources.EXPECT().
		ListWithCategories(gomock.Any()).
		Return([]domain.SourcePair{pair}, nil).
		Times(1)

	newsAdapter := mocks.NewMockAdapter(ctrl)
	newsAdapter.EXPECT().
		Fetch(gomock.Any(), pair.Source, pair.Category).
		Return([]domain.RawRecord{record}, nil).
		Times(1)

	normalizer := mocks.NewMockNormalizerService(ctrl)
	normalizer.EXPECT().
		Normalize(gomock.Any(), gomock.Any()).
		Return(&service.NormalizedArticle{Article: domain.Article{URL: "https://example.com/one"}}, nil).
		Times(1)

	authors := mocks.NewMockAuthorResolverService(ctrl)
	authors.EXPECT().Resolve(gomock.Any(), "").Return(nil, nil).Times(1)

	upsertErr := errors.New("failed to upsert article")

	articles := mocks.NewMockArticleRepository(ctrl)
	articles.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(upsertErr).Times(1)

	deadletters := mocks.NewMockDeadLetterPublisher(ctrl)
	deadletters.EXPECT().
		PublishFailedRecord(gomock.Any(), pair, record, upsertErr).
		Return(nil).
		Times(1)

	registry := adapter.NewRegistryWithAdapters(map[string]adapter.Adapter{
		adapter.SourceNewsAPI: newsAdapter,
	})

	svc := service.NewIngestionService(sources, articles, normalizer, authors, registry, newTestPool(), deadletters, slog.Default())

	result, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, result.StoredArticles)
	assert.Equal(t, 1, result.SkippedRecords)
	assert.Equal(t, 0, result.FailedPairs)
}

func TestIngestionService_Run_UnknownSourceFailsPair(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pair := domain.SourcePair{
		Source:   domain.Source{ID: "src-bbc", Name: "BBC", BaseURL: "https://bbc.example", APIKey: "key"},
		Category: domain.Category{ID: "cat-science", Name: "science", Value: "science"},
	}

	sources := mocks.NewMockSourceRepository(ctrl)
	sources.EXPECT().
		ListWithCategories(gomock.Any()).
		Return([]domain.SourcePair{pair}, nil).
		Times(1)

	normalizer := mocks.NewMockNormalizerService(ctrl)
	authors := mocks.NewMockAuthorResolverService(ctrl)
	articles := mocks.NewMockArticleRepository(ctrl)

	registry := adapter.NewRegistryWithAdapters(map[string]adapter.Adapter{})

	svc := service.NewIngestionService(sources, articles, normalizer, authors, registry, newTestPool(), nil, slog.Default())

	result, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Pairs)
	assert.Equal(t, 1, result.FailedPairs)
}

func TestIngestionService_Run_EmptyFetchCompletesCleanly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pair := newsAPIPair("science")

	sources := mocks.NewMockSourceRepository(ctrl)
	sources.EXPECT().
		ListWithCategories(gomock.Any()).
		Return([]domain.SourcePair{pair}, nil).
		Times(1)

	newsAdapter := mocks.NewMockAdapter(ctrl)
	newsAdapter.EXPECT().
		Fetch(gomock.Any(), pair.Source, pair.Category).
		Return([]domain.RawRecord{}, nil).
		Times(1)

	normalizer := mocks.NewMockNormalizerService(ctrl)
	authors := mocks.NewMockAuthorResolverService(ctrl)
	articles := mocks.NewMockArticleRepository(ctrl)

	registry := adapter.NewRegistryWithAdapters(map[string]adapter.Adapter{
		adapter.SourceNewsAPI: newsAdapter,
	})

	svc := service.NewIngestionService(sources, articles, normalizer, authors, registry, newTestPool(), nil, slog.Default())

	result, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Pairs)
	assert.Equal(t, 0, result.FetchedRecords)
	assert.Equal(t, 0, result.FailedPairs)
}

func TestIngestionService_Run_SourceListFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sources := mocks.NewMockSourceRepository(ctrl)
	sources.EXPECT().
		ListWithCategories(gomock.Any()).
		Return(nil, errors.New("database connection failed")).
		Times(1)

	normalizer := mocks.NewMockNormalizerService(ctrl)
	authors := mocks.NewMockAuthorResolverService(ctrl)
	articles := mocks.NewMockArticleRepository(ctrl)

	registry := adapter.NewRegistryWithAdapters(map[string]adapter.Adapter{})

	svc := service.NewIngestionService(sources, articles, normalizer, authors, registry, newTestPool(), nil, slog.Default())

	result, err := svc.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to enumerate source pairs")
	assert.Nil(t, result)
}

func TestIngestionService_Run_EndToEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pair := newsAPIPair("technology")

	sources := mocks.NewMockSourceRepository(ctrl)
	sources.EXPECT().
		ListWithCategories(gomock.Any()).
		Return([]domain.SourcePair{pair}, nil).
		Times(1)

	newsAdapter := mocks.NewMockAdapter(ctrl)
	newsAdapter.EXPECT().
		Fetch(gomock.Any(), pair.Source, pair.Category).
		Return([]domain.RawRecord{{
			"url":         "https://x/1",
			"title":       "T",
			"author":      "By A",
			"publishedAt": "2024-01-01T00:00:00Z",
		}}, nil).
		Times(1)

	authorRepo := mocks.NewMockAuthorRepository(ctrl)
	authorRepo.EXPECT().
		FindOrCreateByName(gomock.Any(), "A").
		Return("author-a", nil).
		Times(1)

	var stored *domain.Article

	articles := mocks.NewMockArticleRepository(ctrl)
	articles.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, article *domain.Article) error {
			stored = article
			return nil
		}).
		Times(1)

	registry := adapter.NewRegistryWithAdapters(map[string]adapter.Adapter{
		adapter.SourceNewsAPI: newsAdapter,
	})

	normalizer := service.NewNormalizerService(slog.Default())
	authors := service.NewAuthorResolverService(authorRepo, slog.Default())

	svc := service.NewIngestionService(sources, articles, normalizer, authors, registry, newTestPool(), nil, slog.Default())

	result, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.StoredArticles)

	require.NotNil(t, stored)
	assert.Equal(t, "https://x/1", stored.URL)
	assert.Equal(t, "T", stored.Title)
	assert.Equal(t, pair.Source.ID, stored.SourceID)
	assert.Equal(t, pair.Category.ID, stored.CategoryID)
	require.NotNil(t, stored.AuthorID)
	assert.Equal(t, "author-a", *stored.AuthorID)
	assert.Equal(t, "2024-01-01 00:00:00", stored.FormatPublishedAt())
}

func TestIngestionService_Run_SerializedRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	started := make(chan struct{})
	release := make(chan struct{})

	sources := mocks.NewMockSourceRepository(ctrl)
	sources.EXPECT().
		ListWithCategories(gomock.Any()).
		DoAndReturn(func(context.Context) ([]domain.SourcePair, error) {
			close(started)
			<-release

			return []domain.SourcePair{}, nil
		}).
		Times(1)

	normalizer := mocks.NewMockNormalizerService(ctrl)
	authors := mocks.NewMockAuthorResolverService(ctrl)
	articles := mocks.NewMockArticleRepository(ctrl)

	registry := adapter.NewRegistryWithAdapters(map[string]adapter.Adapter{})

	svc := service.NewIngestionService(sources, articles, normalizer, authors, registry, newTestPool(), nil, slog.Default())

	firstDone := make(chan error, 1)

	go func() {
		_, err := svc.Run(context.Background())
		firstDone <- err
	}()

	<-started

	_, err := svc.Run(context.Background())
	assert.ErrorIs(t, err, domain.ErrRunInProgress)

	close(release)
	require.NoError(t, <-firstDone)
}
