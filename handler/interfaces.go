package handler

import (
	"context"
)

// JobScheduler handles recurring job scheduling and coordination.
type JobScheduler interface {
	Schedule(ctx context.Context, jobName string, interval string, jobFunc func() error) error
	Stop(jobName string) error
	StopAll() error
	GetJobStatus(jobName string) (JobStatus, error)
}

// JobStatus represents the status of a scheduled job.
type JobStatus struct {
	LastError  error
	LastRun    *string
	NextRun    *string
	Name       string
	ErrorCount int
	IsRunning  bool
}
