package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/oliverDX1234/news-aggregator/config"
	"github.com/oliverDX1234/news-aggregator/utils/logger"
)

const ingestJobName = "ingestion"

// Run is the main application entry point. It initializes all dependencies,
// starts the server and the scheduled ingestion job, then waits for a
// shutdown signal.
func Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Optional .env for local development; absence is not an error.
	_ = godotenv.Load()

	log := logger.New(logger.LoadLoggerConfigFromEnv())

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log.Info("starting news-aggregator service",
		"port", cfg.Server.Port,
		"ingest_interval", cfg.Ingest.Interval,
		"ingest_workers", cfg.Ingest.Workers)

	deps, cleanup, err := BuildDependencies(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build dependencies: %w", err)
	}
	defer cleanup()

	httpServer := NewHTTPServer(deps)
	StartHTTPServer(httpServer, cfg.Server.Port, log)

	go deps.DeadLetters.StartCleanup(ctx)

	if cfg.Ingest.Enabled {
		err := deps.Scheduler.Schedule(ctx, ingestJobName, cfg.Ingest.Interval.String(), func() error {
			_, err := deps.Ingestion.Run(context.Background())
			return err
		})
		if err != nil {
			return fmt.Errorf("failed to schedule ingestion job: %w", err)
		}
	} else {
		log.Info("scheduled ingestion disabled, runs only via HTTP trigger")
	}

	log.Info("news-aggregator service started successfully")
	waitForShutdown(ctx, httpServer, deps, log)

	return nil
}

// waitForShutdown blocks until SIGINT/SIGTERM, then stops jobs and drains
// the HTTP server within the configured timeout.
func waitForShutdown(ctx context.Context, e *echo.Echo, deps *Dependencies, log *slog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Info("shutdown signal received", "signal", sig.String())
	case <-ctx.Done():
		log.Info("context cancelled, shutting down")
	}

	if err := deps.Scheduler.StopAll(); err != nil {
		log.Error("failed to stop scheduled jobs", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), deps.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	log.Info("news-aggregator service stopped")
}
