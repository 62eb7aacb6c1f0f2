package driver

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oliverDX1234/news-aggregator/retry"
)

// DatabaseConfig holds Postgres connection settings read from DB_* prefixed
// environment variables.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

// NewDatabaseConfig reads connection settings from the environment, applying
// local-development defaults.
func NewDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		Host:     getEnvOrDefault("DB_HOST", "localhost"),
		Port:     getEnvOrDefault("DB_PORT", "5432"),
		User:     getEnvOrDefault("DB_USER", "news"),
		Password: getEnvOrDefault("DB_PASSWORD", ""),
		DBName:   getEnvOrDefault("DB_NAME", "news_aggregator"),
		SSLMode:  getEnvOrDefault("DB_SSL_MODE", "prefer"),
		MaxConns: int32(getEnvIntOrDefault("DB_MAX_CONNS", 10)),
		MinConns: int32(getEnvIntOrDefault("DB_MIN_CONNS", 2)),
	}
}

// BuildConnectionString renders a postgres:// connection URL.
func (c *DatabaseConfig) BuildConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		url.QueryEscape(c.User),
		url.QueryEscape(c.Password),
		c.Host,
		c.Port,
		c.DBName,
		c.SSLMode,
	)
}

// Init creates and pings a pgx connection pool from environment config.
func Init(ctx context.Context, log *slog.Logger) (*pgxpool.Pool, error) {
	dbConfig := NewDatabaseConfig()

	log.InfoContext(ctx, "connecting to database",
		"host", dbConfig.Host,
		"port", dbConfig.Port,
		"database", dbConfig.DBName,
	)

	config, err := pgxpool.ParseConfig(dbConfig.BuildConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	config.MaxConns = dbConfig.MaxConns
	config.MinConns = dbConfig.MinConns
	config.MaxConnLifetime = 1 * time.Hour
	config.MaxConnIdleTime = 30 * time.Minute

	dbPool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// The database may still be starting when the service comes up, so the
	// first ping retries with backoff.
	pingRetrier := retry.NewRetrier(retry.DefaultConfig(), func(error) bool { return true }, log)

	if err := pingRetrier.Do(ctx, func() error { return dbPool.Ping(ctx) }); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.InfoContext(ctx, "connected to database",
		"max_conns", config.MaxConns,
		"min_conns", config.MinConns,
	)

	return dbPool, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}

	return defaultValue
}
