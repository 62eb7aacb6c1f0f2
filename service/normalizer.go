package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/araddon/dateparse"

	"github.com/oliverDX1234/news-aggregator/domain"
	"github.com/oliverDX1234/news-aggregator/utils"
)

// Field fallback chains, evaluated in priority order. First present
// non-empty value wins.
var (
	urlFields       = []string{"url", "webUrl", "uri"}
	titleFields     = []string{"title", "webTitle", "headline.main"}
	contentFields   = []string{"content", "bodyText", "abstract"}
	publishedFields = []string{"publishedAt", "webPublicationDate", "published_date", "created_date"}
	authorFields    = []string{"author", "byline", "byline.original"}
)

// normalizerService implementation.
type normalizerService struct {
	logger    *slog.Logger
	sanitizer *utils.Sanitizer
}

// NewNormalizerService creates a new normalizer service.
func NewNormalizerService(logger *slog.Logger) NormalizerService {
	return &normalizerService{
		logger:    logger,
		sanitizer: utils.NewSanitizer(),
	}
}

// Normalize maps one provider-native record to canonical article fields.
// A record without any identity URL is rejected; everything else degrades to
// empty or absent values instead of failing.
func (s *normalizerService) Normalize(ctx context.Context, record domain.RawRecord) (*NormalizedArticle, error) {
	externalURL := record.FirstString(urlFields...)
	if externalURL == "" {
		return nil, fmt.Errorf("%w: tried %v", domain.ErrMissingIdentity, urlFields)
	}

	article := domain.Article{
		URL:         externalURL,
		Title:       s.sanitizer.Clean(record.FirstString(titleFields...)),
		Content:     s.sanitizer.Clean(record.FirstString(contentFields...)),
		ImageURL:    extractImageURL(record),
		PublishedAt: s.parsePublishedAt(ctx, record),
	}

	return &NormalizedArticle{
		Article:   article,
		RawAuthor: record.FirstString(authorFields...),
	}, nil
}

// parsePublishedAt leniently parses the first available timestamp field.
// Unparseable input downgrades to absent rather than an error.
func (s *normalizerService) parsePublishedAt(ctx context.Context, record domain.RawRecord) *time.Time {
	raw := record.FirstString(publishedFields...)
	if raw == "" {
		return nil
	}

	parsed, err := dateparse.ParseAny(raw)
	if err != nil {
		s.logger.DebugContext(ctx, "unparseable published timestamp, storing absent", "value", raw)
		return nil
	}

	utc := parsed.UTC()

	return &utc
}

// extractImageURL reads the NewsAPI urlToImage field, falling back to the
// NYT multimedia list where the "Super Jumbo" rendition carries the URL.
func extractImageURL(record domain.RawRecord) string {
	if image := record.FirstString("urlToImage"); image != "" {
		return image
	}

	for _, value := range record.Slice("multimedia") {
		media, ok := value.(map[string]any)
		if !ok {
			continue
		}

		if format, _ := media["format"].(string); format != "Super Jumbo" {
			continue
		}

		if mediaURL, _ := media["url"].(string); mediaURL != "" {
			return mediaURL
		}
	}

	return ""
}
