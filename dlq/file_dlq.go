// ABOUTME: This file implements a JSON file-based dead letter queue for failed records
// ABOUTME: Records that cannot be persisted are kept on disk for later inspection
package dlq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/oliverDX1234/news-aggregator/domain"
)

// FailedRecordMessage is the on-disk shape of one dead-lettered record.
type FailedRecordMessage struct {
	ID        string           `json:"id"`
	Source    string           `json:"source"`
	Category  string           `json:"category"`
	Error     string           `json:"error"`
	Timestamp time.Time        `json:"timestamp"`
	Record    domain.RawRecord `json:"record"`
}

type Config struct {
	BasePath      string
	Retention     time.Duration
	EnableCleanup bool
}

// NewConfigFromEnv reads DLQ settings from DLQ_* environment variables.
func NewConfigFromEnv() Config {
	cfg := Config{
		BasePath:      "./dlq-data",
		Retention:     720 * time.Hour, // 30 days
		EnableCleanup: true,
	}

	if value := os.Getenv("DLQ_BASE_PATH"); value != "" {
		cfg.BasePath = value
	}

	if value := os.Getenv("DLQ_RETENTION"); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			cfg.Retention = parsed
		}
	}

	if value := os.Getenv("DLQ_ENABLE_CLEANUP"); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			cfg.EnableCleanup = parsed
		}
	}

	return cfg
}

// FileDLQ writes failed records to date-partitioned JSON files.
type FileDLQ struct {
	config  Config
	counter uint64
	mu      sync.Mutex
	logger  *slog.Logger
}

func NewFileDLQ(config Config, logger *slog.Logger) *FileDLQ {
	return &FileDLQ{
		config: config,
		logger: logger,
	}
}

// PublishFailedRecord persists one record that could not be stored, together
// with the error that rejected it. Publication failures are logged and
// returned but must never fail the ingestion run.
func (q *FileDLQ) PublishFailedRecord(ctx context.Context, pair domain.SourcePair, record domain.RawRecord, cause error) error {
	q.mu.Lock()
	q.counter++
	messageID := fmt.Sprintf("dlq_%s_%06d", time.Now().Format("20060102"), q.counter)
	q.mu.Unlock()

	message := FailedRecordMessage{
		ID:        messageID,
		Source:    pair.Source.Name,
		Category:  pair.Category.Name,
		Error:     cause.Error(),
		Timestamp: time.Now().UTC(),
		Record:    record,
	}

	if err := q.writeMessageToFile(message); err != nil {
		q.logger.ErrorContext(ctx, "failed to publish dead letter",
			"message_id", messageID,
			"source", message.Source,
			"category", message.Category,
			"error", err)

		return err
	}

	q.logger.InfoContext(ctx, "record dead-lettered",
		"message_id", messageID,
		"source", message.Source,
		"category", message.Category,
		"cause", message.Error)

	return nil
}

func (q *FileDLQ) writeMessageToFile(message FailedRecordMessage) error {
	dateDir := message.Timestamp.Format("2006-01-02")
	dir := filepath.Join(q.config.BasePath, "failed-records", dateDir)

	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("create directory failed: %w", err)
	}

	targetPath := filepath.Join(dir, message.ID+".json")
	tempFile := targetPath + ".tmp"

	messageBytes, err := json.MarshalIndent(message, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}

	// Write to a temp file and rename so readers never see partial messages.
	if err := os.WriteFile(tempFile, messageBytes, 0600); err != nil {
		return fmt.Errorf("write temp file failed: %w", err)
	}

	if err := os.Rename(tempFile, targetPath); err != nil {
		if cleanupErr := os.Remove(tempFile); cleanupErr != nil {
			q.logger.Error("failed to cleanup temp file", "temp_file", tempFile, "error", cleanupErr)
		}

		return fmt.Errorf("rename file failed: %w", err)
	}

	return nil
}

// Stats summarizes the dead letter backlog.
type Stats struct {
	TotalFailedItems int       `json:"total_failed_items"`
	OldestFailure    time.Time `json:"oldest_failure"`
	DiskUsage        int64     `json:"disk_usage_bytes"`
}

func (q *FileDLQ) GetStats() (Stats, error) {
	stats := Stats{}

	failedDir := filepath.Join(q.config.BasePath, "failed-records")

	if _, err := os.Stat(failedDir); os.IsNotExist(err) {
		return stats, nil
	}

	err := filepath.Walk(failedDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() && filepath.Ext(path) == ".json" {
			stats.TotalFailedItems++
			stats.DiskUsage += info.Size()

			if stats.OldestFailure.IsZero() || info.ModTime().Before(stats.OldestFailure) {
				stats.OldestFailure = info.ModTime()
			}
		}

		return nil
	})
	if err != nil {
		return stats, fmt.Errorf("failed to calculate stats: %w", err)
	}

	return stats, nil
}

// StartCleanup removes dead letters older than the retention window once a
// day until the context is cancelled. Blocks; run it in a goroutine.
func (q *FileDLQ) StartCleanup(ctx context.Context) {
	if !q.config.EnableCleanup {
		q.logger.Info("dead letter cleanup disabled")
		return
	}

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	q.logger.Info("dead letter cleanup started",
		"retention", q.config.Retention,
		"base_path", q.config.BasePath)

	for {
		select {
		case <-ctx.Done():
			q.logger.Info("dead letter cleanup stopped")
			return
		case <-ticker.C:
			if err := q.cleanup(); err != nil {
				q.logger.Error("dead letter cleanup failed", "error", err)
			}
		}
	}
}

func (q *FileDLQ) cleanup() error {
	cutoff := time.Now().Add(-q.config.Retention)
	removedCount := 0

	failedDir := filepath.Join(q.config.BasePath, "failed-records")

	if _, err := os.Stat(failedDir); os.IsNotExist(err) {
		return nil
	}

	err := filepath.Walk(failedDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() && info.ModTime().Before(cutoff) {
			if err := os.Remove(path); err != nil {
				q.logger.Warn("failed to remove old dead letter file", "file", path, "error", err)
				return nil
			}

			removedCount++
		}

		return nil
	})

	if removedCount > 0 {
		q.logger.Info("dead letter cleanup completed", "removed_files", removedCount, "cutoff", cutoff)
	}

	return err
}
