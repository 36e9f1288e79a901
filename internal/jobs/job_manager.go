package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"marketplace/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	outboxDispatchJob *OutboxDispatchJob
	outboxCleanupJob  *OutboxCleanupJob
}

type OutboxSettings struct {
	Schedule  string
	BatchSize int
	Retention time.Duration
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	outboxHandler commands.OutboxCommandHandler,
	settings OutboxSettings,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		outboxDispatchJob: NewOutboxDispatchJob(outboxHandler, settings.Schedule, settings.BatchSize, logger),
		outboxCleanupJob:  NewOutboxCleanupJob(outboxHandler, settings.Retention, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.outboxDispatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start outbox dispatch job: %w", err)
	}

	if err := jm.outboxCleanupJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.outboxDispatchJob.Stop()
		return fmt.Errorf("failed to start outbox cleanup job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running ones to finish.
func (jm *JobManager) StopAll() {
	jm.outboxCleanupJob.Stop()
	jm.outboxDispatchJob.Stop()
}
