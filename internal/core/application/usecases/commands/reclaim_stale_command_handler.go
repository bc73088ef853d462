package commands

import (
	"context"
	"time"

	"freightflow/pkg/logger"
)

// ReclaimStaleCommandHandler returns abandoned PROCESSING queue items to
// QUEUED so another dispatcher instance can pick them up. A reclaimed item
// may already have been sent by the crashed instance, which is the
// at-least-once tradeoff.
type ReclaimStaleCommandHandler struct {
	uowFactory DispatchUoWFactory
	log        logger.Logger
}

// NewReclaimStaleCommandHandler creates a handler for stale claim
// reclamation.
func NewReclaimStaleCommandHandler(uowFactory DispatchUoWFactory, log logger.Logger) ReclaimStaleCommandHandler {
	return ReclaimStaleCommandHandler{
		uowFactory: uowFactory,
		log:        log,
	}
}

// Handle reclaims stale claims and returns how many items were returned
// to the queue.
func (h *ReclaimStaleCommandHandler) Handle(ctx context.Context, cmd ReclaimStaleCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().Add(-cmd.OlderThan())
	reclaimed, err := uow.NotificationRepository().RequeueStale(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	if reclaimed > 0 {
		h.log.Warn("reclaimed stale notification queue items", "count", reclaimed)
	}
	return reclaimed, nil
}
