package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// LoadConfig builds the configuration from defaults and overrides provided
// via environment variables.
func LoadConfig() (*Config, error) {
	config := defaultConfig()

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ShutdownTimeout: 30 * time.Second,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
		},
		HTTP: HTTPConfig{
			Timeout:             10 * time.Second,
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 2,
			UserAgent:           "news-aggregator/1.0",
		},
		Ingest: IngestConfig{
			Interval: time.Hour,
			Workers:  3,
			Enabled:  true,
		},
		Providers: ProvidersConfig{
			NewsAPIBaseURL: "https://newsapi.org/v2",
			GuardianURL:    "https://content.guardianapis.com",
			NYTimesURL:     "https://api.nytimes.com/svc",
		},
	}
}

func loadFromEnv(config *Config) error {
	if err := loadServerConfig(&config.Server); err != nil {
		return fmt.Errorf("failed to load server config: %w", err)
	}

	if err := loadHTTPConfig(&config.HTTP); err != nil {
		return fmt.Errorf("failed to load HTTP config: %w", err)
	}

	if err := loadIngestConfig(&config.Ingest); err != nil {
		return fmt.Errorf("failed to load ingest config: %w", err)
	}

	loadProvidersConfig(&config.Providers)

	return nil
}

func loadServerConfig(cfg *ServerConfig) error {
	var err error

	if cfg.Port, err = parseIntEnv("SERVER_PORT", cfg.Port); err != nil {
		return err
	}

	if cfg.ShutdownTimeout, err = parseDurationEnv("SERVER_SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout); err != nil {
		return err
	}

	if cfg.ReadTimeout, err = parseDurationEnv("SERVER_READ_TIMEOUT", cfg.ReadTimeout); err != nil {
		return err
	}

	if cfg.WriteTimeout, err = parseDurationEnv("SERVER_WRITE_TIMEOUT", cfg.WriteTimeout); err != nil {
		return err
	}

	return nil
}

func loadHTTPConfig(cfg *HTTPConfig) error {
	var err error

	if cfg.Timeout, err = parseDurationEnv("HTTP_TIMEOUT", cfg.Timeout); err != nil {
		return err
	}

	if cfg.MaxIdleConns, err = parseIntEnv("HTTP_MAX_IDLE_CONNS", cfg.MaxIdleConns); err != nil {
		return err
	}

	if cfg.MaxIdleConnsPerHost, err = parseIntEnv("HTTP_MAX_IDLE_CONNS_PER_HOST", cfg.MaxIdleConnsPerHost); err != nil {
		return err
	}

	if agent := os.Getenv("HTTP_USER_AGENT"); agent != "" {
		cfg.UserAgent = agent
	}

	return nil
}

func loadIngestConfig(cfg *IngestConfig) error {
	var err error

	if cfg.Interval, err = parseDurationEnv("INGEST_INTERVAL", cfg.Interval); err != nil {
		return err
	}

	if cfg.Workers, err = parseIntEnv("INGEST_WORKERS", cfg.Workers); err != nil {
		return err
	}

	if cfg.Enabled, err = parseBoolEnv("INGEST_ENABLED", cfg.Enabled); err != nil {
		return err
	}

	return nil
}

func loadProvidersConfig(cfg *ProvidersConfig) {
	if key := os.Getenv("NEWSAPI_KEY"); key != "" {
		cfg.NewsAPIKey = key
	}

	if base := os.Getenv("NEWSAPI_BASE_URL"); base != "" {
		cfg.NewsAPIBaseURL = base
	}

	if key := os.Getenv("GUARDIAN_API_KEY"); key != "" {
		cfg.GuardianKey = key
	}

	if base := os.Getenv("GUARDIAN_BASE_URL"); base != "" {
		cfg.GuardianURL = base
	}

	if key := os.Getenv("NYTIMES_API_KEY"); key != "" {
		cfg.NYTimesKey = key
	}

	if base := os.Getenv("NYTIMES_BASE_URL"); base != "" {
		cfg.NYTimesURL = base
	}
}

func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", key, value)
	}

	return parsed, nil
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", key, value)
	}

	return parsed, nil
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %s", key, value)
	}

	return parsed, nil
}
