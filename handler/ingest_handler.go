package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/oliverDX1234/news-aggregator/domain"
	"github.com/oliverDX1234/news-aggregator/service"
)

// IngestHandler exposes the "run ingestion now" entry point over HTTP.
type IngestHandler struct {
	ingestion service.IngestionService
	logger    *slog.Logger
}

// NewIngestHandler creates a new ingest handler.
func NewIngestHandler(ingestion service.IngestionService, logger *slog.Logger) *IngestHandler {
	return &IngestHandler{
		ingestion: ingestion,
		logger:    logger,
	}
}

// ingestResponse is the JSON body returned for a completed run.
type ingestResponse struct {
	Status         string `json:"status"`
	Pairs          int    `json:"pairs"`
	FetchedRecords int    `json:"fetched_records"`
	StoredArticles int    `json:"stored_articles"`
	SkippedRecords int    `json:"skipped_records"`
	FailedPairs    int    `json:"failed_pairs"`
}

// HandleIngest triggers one ingestion run and reports its counters. Runs are
// serialized; a trigger while another run is executing gets 409.
func (h *IngestHandler) HandleIngest(c echo.Context) error {
	ctx := c.Request().Context()

	h.logger.InfoContext(ctx, "manual ingestion run triggered")

	result, err := h.ingestion.Run(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrRunInProgress) {
			return c.JSON(http.StatusConflict, map[string]string{
				"status": "error",
				"error":  "ingestion run already in progress",
			})
		}

		h.logger.ErrorContext(ctx, "ingestion run failed to start", "error", err)

		return c.JSON(http.StatusInternalServerError, map[string]string{
			"status": "error",
			"error":  err.Error(),
		})
	}

	return c.JSON(http.StatusOK, ingestResponse{
		Status:         "completed",
		Pairs:          result.Pairs,
		FetchedRecords: result.FetchedRecords,
		StoredArticles: result.StoredArticles,
		SkippedRecords: result.SkippedRecords,
		FailedPairs:    result.FailedPairs,
	})
}
