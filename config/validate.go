package config

import (
	"fmt"
)

func validateConfig(config *Config) error {
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	if config.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server shutdown timeout must be positive: %v", config.Server.ShutdownTimeout)
	}

	if config.HTTP.Timeout <= 0 {
		return fmt.Errorf("HTTP timeout must be positive: %v", config.HTTP.Timeout)
	}

	if config.HTTP.MaxIdleConns < 0 {
		return fmt.Errorf("max idle conns must be non-negative: %d", config.HTTP.MaxIdleConns)
	}

	if config.Ingest.Interval <= 0 {
		return fmt.Errorf("ingest interval must be positive: %v", config.Ingest.Interval)
	}

	if config.Ingest.Workers <= 0 {
		return fmt.Errorf("ingest workers must be positive: %d", config.Ingest.Workers)
	}

	return nil
}
