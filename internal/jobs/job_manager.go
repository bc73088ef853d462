package jobs

import (
	"fmt"

	"freightflow/internal/core/application/usecases/commands"
	"freightflow/pkg/logger"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	notificationDispatchJob *NotificationDispatchJob
	queueReclaimJob         *QueueReclaimJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up job execution.
func NewJobManager(
	dispatchHandler commands.ProcessNotificationQueueCommandHandler,
	reclaimHandler commands.ReclaimStaleCommandHandler,
	log logger.Logger,
) *JobManager {
	return &JobManager{
		notificationDispatchJob: NewNotificationDispatchJob(dispatchHandler, log),
		queueReclaimJob:         NewQueueReclaimJob(reclaimHandler, log),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.notificationDispatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start notification dispatch job: %w", err)
	}

	if err := jm.queueReclaimJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.notificationDispatchJob.Stop()
		return fmt.Errorf("failed to start queue reclaim job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.notificationDispatchJob.Stop()
	jm.queueReclaimJob.Stop()
}
