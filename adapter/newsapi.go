package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/oliverDX1234/news-aggregator/domain"
)

// newsAPIAdapter queries the NewsAPI "everything" endpoint. The topic token
// travels as the q query parameter and records live at the top-level
// articles field.
type newsAPIAdapter struct {
	client    httpDoer
	logger    *slog.Logger
	userAgent string
}

// NewNewsAPIAdapter creates the adapter for the NewsAPI provider.
func NewNewsAPIAdapter(client httpDoer, userAgent string, logger *slog.Logger) Adapter {
	return &newsAPIAdapter{
		client:    client,
		logger:    logger,
		userAgent: userAgent,
	}
}

func (a *newsAPIAdapter) Fetch(ctx context.Context, source domain.Source, category domain.Category) ([]domain.RawRecord, error) {
	if err := validatePair(source); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("q", category.Value)
	query.Set("apiKey", source.APIKey)

	requestURL := fmt.Sprintf("%s/everything?%s", source.BaseURL, query.Encode())

	body, err := fetchJSON(ctx, a.client, a.userAgent, requestURL)
	if err != nil {
		return nil, fmt.Errorf("newsapi fetch for %q failed: %w", category.Value, err)
	}

	records := recordsAt(body, "articles")
	a.logger.DebugContext(ctx, "fetched newsapi records", "category", category.Value, "count", len(records))

	return records, nil
}
