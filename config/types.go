package config

import (
	"time"
)

// Config aggregates all service configuration blocks.
type Config struct {
	Server    ServerConfig    `json:"server"`
	HTTP      HTTPConfig      `json:"http"`
	Ingest    IngestConfig    `json:"ingest"`
	Providers ProvidersConfig `json:"providers"`
}

type ServerConfig struct {
	Port            int           `json:"port" env:"SERVER_PORT" default:"8080"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
	ReadTimeout     time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"30s"`
}

type HTTPConfig struct {
	Timeout             time.Duration `json:"timeout" env:"HTTP_TIMEOUT" default:"10s"`
	MaxIdleConns        int           `json:"max_idle_conns" env:"HTTP_MAX_IDLE_CONNS" default:"10"`
	MaxIdleConnsPerHost int           `json:"max_idle_conns_per_host" env:"HTTP_MAX_IDLE_CONNS_PER_HOST" default:"2"`
	UserAgent           string        `json:"user_agent" env:"HTTP_USER_AGENT" default:"news-aggregator/1.0"`
}

type IngestConfig struct {
	Interval time.Duration `json:"interval" env:"INGEST_INTERVAL" default:"1h"`
	Workers  int           `json:"workers" env:"INGEST_WORKERS" default:"3"`
	Enabled  bool          `json:"enabled" env:"INGEST_ENABLED" default:"true"`
}

// ProvidersConfig carries credentials and base URL overrides for the three
// supported providers. Base URLs default to the real public endpoints; keys
// have no default and come from the environment.
type ProvidersConfig struct {
	NewsAPIKey     string `json:"-" env:"NEWSAPI_KEY"`
	NewsAPIBaseURL string `json:"newsapi_base_url" env:"NEWSAPI_BASE_URL" default:"https://newsapi.org/v2"`
	GuardianKey    string `json:"-" env:"GUARDIAN_API_KEY"`
	GuardianURL    string `json:"guardian_base_url" env:"GUARDIAN_BASE_URL" default:"https://content.guardianapis.com"`
	NYTimesKey     string `json:"-" env:"NYTIMES_API_KEY"`
	NYTimesURL     string `json:"nytimes_base_url" env:"NYTIMES_BASE_URL" default:"https://api.nytimes.com/svc"`
}
