package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/oliverDX1234/news-aggregator/domain"
)

// guardianAdapter queries the Guardian content search endpoint. The topic
// token travels as the section query parameter and records live at the
// nested response.results path.
type guardianAdapter struct {
	client    httpDoer
	logger    *slog.Logger
	userAgent string
}

// NewGuardianAdapter creates the adapter for the Guardian provider.
func NewGuardianAdapter(client httpDoer, userAgent string, logger *slog.Logger) Adapter {
	return &guardianAdapter{
		client:    client,
		logger:    logger,
		userAgent: userAgent,
	}
}

func (a *guardianAdapter) Fetch(ctx context.Context, source domain.Source, category domain.Category) ([]domain.RawRecord, error) {
	if err := validatePair(source); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("section", category.Value)
	query.Set("api-key", source.APIKey)

	requestURL := fmt.Sprintf("%s/search?%s", source.BaseURL, query.Encode())

	body, err := fetchJSON(ctx, a.client, a.userAgent, requestURL)
	if err != nil {
		return nil, fmt.Errorf("guardian fetch for %q failed: %w", category.Value, err)
	}

	records := recordsAt(body, "response", "results")
	a.logger.DebugContext(ctx, "fetched guardian records", "section", category.Value, "count", len(records))

	return records, nil
}
