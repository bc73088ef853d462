package jobs

import (
	"context"

	"github.com/robfig/cron/v3"

	"freightflow/internal/core/application/usecases/commands"
	"freightflow/internal/core/domain/model/notification"
	"freightflow/pkg/logger"
)

// QueueReclaimJob returns abandoned queue claims to the queue.
// Runs every minute so items claimed by a crashed instance are retried.
type QueueReclaimJob struct {
	handler commands.ReclaimStaleCommandHandler
	cron    *cron.Cron
	log     logger.Logger
}

// NewQueueReclaimJob creates a new job for reclaiming stale queue claims.
func NewQueueReclaimJob(handler commands.ReclaimStaleCommandHandler, log logger.Logger) *QueueReclaimJob {
	return &QueueReclaimJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		log:     log.With("component", "queue_reclaim_job"),
	}
}

// Start begins the reclaim job to run every minute.
func (j *QueueReclaimJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd, err := commands.NewReclaimStaleCommand(notification.ReclaimAfter)
		if err != nil {
			j.log.Error("Queue reclaim job misconfigured", "error", err)
			return
		}

		reclaimed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.log.Error("Queue reclaim job failed", "error", err)
			return
		}

		if reclaimed > 0 {
			j.log.Warn("Reclaimed stale queue claims", "reclaimed", reclaimed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.log.Info("Queue reclaim job started (running every minute)")
	return nil
}

// Stop stops the reclaim job.
func (j *QueueReclaimJob) Stop() {
	j.cron.Stop()
	j.log.Info("Queue reclaim job stopped")
}
