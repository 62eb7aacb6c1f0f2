package driver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oliverDX1234/news-aggregator/config"
)

// seedCategories is the provider-agnostic category reference data.
var seedCategories = []struct {
	Name  string
	Value string
}{
	{"Automobiles", "automobiles"},
	{"Food", "food"},
	{"Fashion", "fashion"},
	{"Science", "science"},
	{"World", "world"},
	{"Travel", "travel"},
	{"Politics", "politics"},
	{"Sport", "sport"},
	{"Technology", "technology"},
	{"Wellness", "wellness"},
}

// sourceCategoryValues maps each source to the category tokens it supports.
var sourceCategoryValues = map[string][]string{
	"NewsAPI": {
		"automobiles", "food", "fashion", "science", "world",
		"travel", "politics", "sport", "technology", "wellness",
	},
	"The Guardian": {
		"food", "fashion", "science", "world", "travel",
		"politics", "sport", "technology", "wellness",
	},
	"NY Times": {
		"automobiles", "food", "fashion", "science", "world",
		"travel", "politics", "technology",
	},
}

// SeedReferenceData ensures the three sources, the category list, and their
// associations exist. Reference data is owned by this seeding step; the
// ingestion run itself never mutates it. API keys come from configuration on
// every start so rotated credentials take effect without manual SQL.
func SeedReferenceData(ctx context.Context, db *pgxpool.Pool, providers *config.ProvidersConfig, log *slog.Logger) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	categoryIDs := make(map[string]string, len(seedCategories))

	for _, category := range seedCategories {
		var id string

		err := db.QueryRow(ctx, `
			INSERT INTO categories (id, name, value)
			VALUES ($1, $2, $3)
			ON CONFLICT (value) DO UPDATE SET name = EXCLUDED.name
			RETURNING id
		`, uuid.New().String(), category.Name, category.Value).Scan(&id)
		if err != nil {
			return fmt.Errorf("failed to seed category %q: %w", category.Value, err)
		}

		categoryIDs[category.Value] = id
	}

	seedSources := []struct {
		Name    string
		BaseURL string
		APIKey  string
	}{
		{"NewsAPI", providers.NewsAPIBaseURL, providers.NewsAPIKey},
		{"The Guardian", providers.GuardianURL, providers.GuardianKey},
		{"NY Times", providers.NYTimesURL, providers.NYTimesKey},
	}

	for _, source := range seedSources {
		var sourceID string

		err := db.QueryRow(ctx, `
			INSERT INTO sources (id, name, base_url, api_key)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (name) DO UPDATE SET
				base_url = EXCLUDED.base_url,
				api_key = EXCLUDED.api_key
			RETURNING id
		`, uuid.New().String(), source.Name, source.BaseURL, source.APIKey).Scan(&sourceID)
		if err != nil {
			return fmt.Errorf("failed to seed source %q: %w", source.Name, err)
		}

		for _, value := range sourceCategoryValues[source.Name] {
			categoryID, ok := categoryIDs[value]
			if !ok {
				return fmt.Errorf("unknown category value %q for source %q", value, source.Name)
			}

			_, err := db.Exec(ctx, `
				INSERT INTO source_categories (source_id, category_id)
				VALUES ($1, $2)
				ON CONFLICT DO NOTHING
			`, sourceID, categoryID)
			if err != nil {
				return fmt.Errorf("failed to associate source %q with category %q: %w", source.Name, value, err)
			}
		}
	}

	log.InfoContext(ctx, "reference data seeded", "sources", len(seedSources), "categories", len(seedCategories))

	return nil
}
