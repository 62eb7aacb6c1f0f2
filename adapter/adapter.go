// Package adapter translates (source, category) pairs into provider-specific
// HTTP requests and extracts provider-native article records from the
// responses. One adapter per external news API.
package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/oliverDX1234/news-aggregator/config"
	"github.com/oliverDX1234/news-aggregator/domain"
)

//go:generate mockgen -source=adapter.go -destination=../test/mocks/adapter_mocks.go -package=mocks

// Adapter fetches raw provider records for a (source, category) pair.
// Implementations never retry and never panic; every network call is bounded
// by the shared client timeout.
type Adapter interface {
	Fetch(ctx context.Context, source domain.Source, category domain.Category) ([]domain.RawRecord, error)
}

// Registry maps source names to their adapters. Built once at startup.
type Registry struct {
	adapters map[string]Adapter
}

// NewRegistry wires the three supported providers against a shared HTTP
// client configured from cfg.
func NewRegistry(cfg *config.Config, log *slog.Logger) *Registry {
	client := &http.Client{
		Timeout: cfg.HTTP.Timeout,
		Transport: &http.Transport{
			MaxIdleConns:        cfg.HTTP.MaxIdleConns,
			MaxIdleConnsPerHost: cfg.HTTP.MaxIdleConnsPerHost,
		},
	}

	return &Registry{
		adapters: map[string]Adapter{
			SourceNewsAPI:  NewNewsAPIAdapter(client, cfg.HTTP.UserAgent, log),
			SourceGuardian: NewGuardianAdapter(client, cfg.HTTP.UserAgent, log),
			SourceNYTimes:  NewNYTimesAdapter(client, cfg.HTTP.UserAgent, log),
		},
	}
}

// NewRegistryWithAdapters builds a registry from an explicit adapter map.
func NewRegistryWithAdapters(adapters map[string]Adapter) *Registry {
	return &Registry{adapters: adapters}
}

// Source names as seeded in the source registry.
const (
	SourceNewsAPI  = "NewsAPI"
	SourceGuardian = "The Guardian"
	SourceNYTimes  = "NY Times"
)

// Resolve returns the adapter registered for the given source name.
func (r *Registry) Resolve(sourceName string) (Adapter, error) {
	adapter, ok := r.adapters[sourceName]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownProvider, sourceName)
	}

	return adapter, nil
}

// httpDoer is the subset of http.Client the adapters need. Tests substitute
// their own implementation.
type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// fetchJSON performs a GET against the given URL and decodes the response
// body into a generic document. Non-2xx statuses are returned as errors so
// the orchestrator can log and skip the pair.
func fetchJSON(ctx context.Context, client httpDoer, userAgent, requestURL string) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}

	return body, nil
}

// recordsAt extracts an array of objects from the decoded body. path segments
// descend into nested objects; the final segment must hold an array.
func recordsAt(body map[string]any, path ...string) []domain.RawRecord {
	var current any = body

	for _, segment := range path {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil
		}

		current = obj[segment]
	}

	values, ok := current.([]any)
	if !ok {
		return nil
	}

	records := make([]domain.RawRecord, 0, len(values))

	for _, value := range values {
		if obj, ok := value.(map[string]any); ok {
			records = append(records, domain.RawRecord(obj))
		}
	}

	return records
}

// validatePair guards against sources with no endpoint or credential before
// any network call is made.
func validatePair(source domain.Source) error {
	if source.BaseURL == "" || source.APIKey == "" {
		return fmt.Errorf("%w: %s", domain.ErrMissingCredential, source.Name)
	}

	return nil
}
