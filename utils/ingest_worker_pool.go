package utils

import (
	"context"
	"log/slog"
	"sync"

	"github.com/oliverDX1234/news-aggregator/domain"
)

// PairResult represents the outcome of processing one (source, category)
// pair.
type PairResult struct {
	Err     error
	Pair    domain.SourcePair
	Fetched int
	Stored  int
	Skipped int
}

// PairFunc processes a single pair. Implementations isolate their own
// failures; a returned error marks the pair failed without affecting others.
type PairFunc func(ctx context.Context, pair domain.SourcePair) PairResult

// IngestWorkerPool fans (source, category) pairs out to a bounded set of
// workers. Pairs are independent, so the only ordering guarantee is that
// every pair is attempted exactly once.
type IngestWorkerPool struct {
	logger    *slog.Logger
	workers   int
	queueSize int
}

// Workers returns the number of workers in the pool.
func (p *IngestWorkerPool) Workers() int {
	return p.workers
}

// NewIngestWorkerPool creates a new ingest worker pool.
func NewIngestWorkerPool(workers int, queueSize int, logger *slog.Logger) *IngestWorkerPool {
	if workers < 1 {
		workers = 1
	}

	if queueSize < 1 {
		queueSize = workers
	}

	return &IngestWorkerPool{
		workers:   workers,
		queueSize: queueSize,
		logger:    logger,
	}
}

// ProcessPairs processes pairs concurrently using the worker pool and
// collects one result per attempted pair. The job queue is created per call
// so the pool can be reused across runs.
func (p *IngestWorkerPool) ProcessPairs(ctx context.Context, pairs []domain.SourcePair, process PairFunc) []PairResult {
	results := make([]PairResult, 0, len(pairs))
	resultsChan := make(chan PairResult, len(pairs))
	jobQueue := make(chan domain.SourcePair, p.queueSize)

	var wg sync.WaitGroup

	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go p.worker(ctx, &wg, jobQueue, resultsChan, process)
	}

	go func() {
		defer close(jobQueue)
		for _, pair := range pairs {
			select {
			case jobQueue <- pair:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	for result := range resultsChan {
		results = append(results, result)
	}

	return results
}

// worker processes pairs from the job queue.
func (p *IngestWorkerPool) worker(ctx context.Context, wg *sync.WaitGroup, jobQueue <-chan domain.SourcePair, results chan<- PairResult, process PairFunc) {
	defer wg.Done()

	for {
		select {
		case pair, ok := <-jobQueue:
			if !ok {
				return
			}

			p.logger.Debug("processing pair", "source", pair.Source.Name, "category", pair.Category.Name)

			select {
			case <-ctx.Done():
				return
			default:
			}

			result := process(ctx, pair)

			select {
			case results <- result:
			case <-ctx.Done():
				return
			}
		case <-ctx.Done():
			return
		}
	}
}
