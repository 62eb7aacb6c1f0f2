package bootstrap

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oliverDX1234/news-aggregator/adapter"
	"github.com/oliverDX1234/news-aggregator/config"
	"github.com/oliverDX1234/news-aggregator/dlq"
	"github.com/oliverDX1234/news-aggregator/driver"
	"github.com/oliverDX1234/news-aggregator/handler"
	"github.com/oliverDX1234/news-aggregator/repository"
	"github.com/oliverDX1234/news-aggregator/service"
	"github.com/oliverDX1234/news-aggregator/utils"
)

// Dependencies holds all application dependencies.
type Dependencies struct {
	DBPool        *pgxpool.Pool
	Config        *config.Config
	Ingestion     service.IngestionService
	IngestHandler *handler.IngestHandler
	HealthHandler *handler.HealthHandler
	Scheduler     handler.JobScheduler
	DeadLetters   *dlq.FileDLQ
	Logger        *slog.Logger
}

// BuildDependencies constructs all application dependencies. Returns a
// cleanup function that should be deferred.
func BuildDependencies(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Dependencies, func(), error) {
	dbPool, err := driver.Init(ctx, log)
	if err != nil {
		return nil, nil, err
	}

	if err := driver.EnsureSchema(ctx, dbPool, log); err != nil {
		dbPool.Close()
		return nil, nil, err
	}

	if err := driver.SeedReferenceData(ctx, dbPool, &cfg.Providers, log); err != nil {
		dbPool.Close()
		return nil, nil, err
	}

	// Repositories
	articleRepo := repository.NewArticleRepository(dbPool, log)
	authorRepo := repository.NewAuthorRepository(dbPool, log)
	sourceRepo := repository.NewSourceRepository(dbPool, log)

	// Provider adapters
	registry := adapter.NewRegistry(cfg, log)

	// Dead letter queue for records that fail persistence
	deadLetters := dlq.NewFileDLQ(dlq.NewConfigFromEnv(), log)

	// Services
	normalizer := service.NewNormalizerService(log)
	authorResolver := service.NewAuthorResolverService(authorRepo, log)
	pool := utils.NewIngestWorkerPool(cfg.Ingest.Workers, cfg.Ingest.Workers*2, log)
	ingestion := service.NewIngestionService(sourceRepo, articleRepo, normalizer, authorResolver, registry, pool, deadLetters, log)

	// Handlers
	ingestHandler := handler.NewIngestHandler(ingestion, log)
	healthHandler := handler.NewHealthHandler(dbPool, log)
	scheduler := handler.NewJobScheduler(log)

	cleanup := func() {
		dbPool.Close()
	}

	return &Dependencies{
		DBPool:        dbPool,
		Config:        cfg,
		Ingestion:     ingestion,
		IngestHandler: ingestHandler,
		HealthHandler: healthHandler,
		Scheduler:     scheduler,
		DeadLetters:   deadLetters,
		Logger:        log,
	}, cleanup, nil
}
