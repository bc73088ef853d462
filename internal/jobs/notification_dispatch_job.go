package jobs

import (
	"context"

	"github.com/robfig/cron/v3"

	"freightflow/internal/core/application/usecases/commands"
	"freightflow/pkg/logger"
)

// dispatchBatchSize limits how many queue items a single tick claims.
const dispatchBatchSize = 50

// NotificationDispatchJob drains the notification queue.
// Runs every second to claim queued items and hand them to the senders.
type NotificationDispatchJob struct {
	handler commands.ProcessNotificationQueueCommandHandler
	cron    *cron.Cron
	log     logger.Logger
}

// NewNotificationDispatchJob creates a new job for dispatching queued
// notifications. Uses ProcessNotificationQueueCommandHandler to process a
// batch every second.
func NewNotificationDispatchJob(handler commands.ProcessNotificationQueueCommandHandler, log logger.Logger) *NotificationDispatchJob {
	return &NotificationDispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		log:     log.With("component", "notification_dispatch_job"),
	}
}

// Start begins the dispatch job to run every second.
func (j *NotificationDispatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd, err := commands.NewProcessNotificationQueueCommand(dispatchBatchSize)
		if err != nil {
			j.log.Error("Notification dispatch job misconfigured", "error", err)
			return
		}

		processed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.log.Error("Notification dispatch job failed", "error", err)
			return
		}

		if processed > 0 {
			j.log.Debug("Dispatched notification batch", "processed", processed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.log.Info("Notification dispatch job started (running every second)")
	return nil
}

// Stop stops the dispatch job.
func (j *NotificationDispatchJob) Stop() {
	j.cron.Stop()
	j.log.Info("Notification dispatch job stopped")
}
