package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/oliverDX1234/news-aggregator/domain"
)

// nyTimesAdapter queries the NYT top stories endpoint. Unlike the other
// providers the topic token is embedded in the URL path, and the full list
// comes back in one call at the top-level results field.
type nyTimesAdapter struct {
	client    httpDoer
	logger    *slog.Logger
	userAgent string
}

// NewNYTimesAdapter creates the adapter for the NY Times provider.
func NewNYTimesAdapter(client httpDoer, userAgent string, logger *slog.Logger) Adapter {
	return &nyTimesAdapter{
		client:    client,
		logger:    logger,
		userAgent: userAgent,
	}
}

func (a *nyTimesAdapter) Fetch(ctx context.Context, source domain.Source, category domain.Category) ([]domain.RawRecord, error) {
	if err := validatePair(source); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("api-key", source.APIKey)

	requestURL := fmt.Sprintf("%s/topstories/v2/%s.json?%s", source.BaseURL, url.PathEscape(category.Value), query.Encode())

	body, err := fetchJSON(ctx, a.client, a.userAgent, requestURL)
	if err != nil {
		return nil, fmt.Errorf("nytimes fetch for %q failed: %w", category.Value, err)
	}

	records := recordsAt(body, "results")
	a.logger.DebugContext(ctx, "fetched nytimes records", "section", category.Value, "count", len(records))

	return records, nil
}
