package commands

import (
	"context"
	"time"

	"freightflow/internal/core/domain/model/notification"
	"freightflow/internal/core/ports"
	"freightflow/pkg/logger"
	"freightflow/pkg/metrics"
)

// ProcessNotificationQueueCommandHandler works the durable notification
// queue. Each cycle claims a batch of QUEUED items by flipping them to
// PROCESSING, then for each item writes a PENDING delivery record before
// any send attempt, sends over the item's channel, and records SENT or
// FAILED. The claim flip keeps concurrent dispatcher instances from
// double-sending; a crash between the claim and the final mark leaves the
// item PROCESSING until the stale reclaim job returns it to QUEUED, which
// gives at-least-once delivery.
//
// SYSTEM notifications have no external transport, so persisting the
// record is the delivery. Send failures never fail the cycle: the record
// stays FAILED for reconciliation and the cycle moves on.
type ProcessNotificationQueueCommandHandler struct {
	uowFactory DispatchUoWFactory
	email      ports.EmailSender
	sms        ports.SMSSender
	log        logger.Logger
	metrics    *metrics.Metrics
}

// NewProcessNotificationQueueCommandHandler creates the dispatch cycle
// handler.
func NewProcessNotificationQueueCommandHandler(
	uowFactory DispatchUoWFactory,
	email ports.EmailSender,
	sms ports.SMSSender,
	log logger.Logger,
	m *metrics.Metrics,
) ProcessNotificationQueueCommandHandler {
	return ProcessNotificationQueueCommandHandler{
		uowFactory: uowFactory,
		email:      email,
		sms:        sms,
		log:        log,
		metrics:    m,
	}
}

// Handle runs one dispatch cycle and returns how many items it processed.
func (h *ProcessNotificationQueueCommandHandler) Handle(ctx context.Context, cmd ProcessNotificationQueueCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	items, err := h.claim(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}

	for _, item := range items {
		start := time.Now()
		if err := h.dispatch(ctx, item); err != nil {
			h.log.Error("notification dispatch failed",
				"queueItemId", item.ID().String(), "channel", string(item.Channel()), "error", err)
			continue
		}
		h.metrics.DispatchTime.Observe(time.Since(start).Seconds())
	}

	return len(items), nil
}

func (h *ProcessNotificationQueueCommandHandler) claim(ctx context.Context, limit int) ([]*notification.QueueItem, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	items, err := uow.NotificationRepository().ClaimBatch(ctx, limit, time.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return items, nil
}

// dispatch processes one claimed item: persist PENDING, send, record the
// outcome, finish the item. The PENDING record is written and committed
// before the send so a crash mid-send never loses the notification.
func (h *ProcessNotificationQueueCommandHandler) dispatch(ctx context.Context, item *notification.QueueItem) error {
	record, err := notification.NewNotification(
		item.User(), item.Channel(), item.Subject(), item.Body(), item.Meta(),
	)
	if err != nil {
		return err
	}

	if err = h.inTx(ctx, func(repo ports.NotificationRepository) error {
		return repo.AddNotification(ctx, record)
	}); err != nil {
		return err
	}

	status := notification.DeliverySent
	if sendErr := h.send(ctx, record); sendErr != nil {
		status = notification.DeliveryFailed
		h.metrics.NotificationsFailed.WithLabelValues(string(record.Channel())).Inc()
		h.log.Warn("notification send failed",
			"notificationId", record.ID().String(), "channel", string(record.Channel()), "error", sendErr)
	} else {
		h.metrics.NotificationsSent.WithLabelValues(string(record.Channel())).Inc()
	}

	return h.inTx(ctx, func(repo ports.NotificationRepository) error {
		if err := repo.UpdateNotificationStatus(ctx, record.ID(), status); err != nil {
			return err
		}
		return repo.MarkDone(ctx, item.ID())
	})
}

// send routes the record to its channel transport. SYSTEM is in-app only:
// the persisted record is the delivery.
func (h *ProcessNotificationQueueCommandHandler) send(ctx context.Context, record *notification.Notification) error {
	switch record.Channel() {
	case notification.ChannelEmail:
		return h.email.SendEmail(ctx, record)
	case notification.ChannelSMS:
		return h.sms.SendSMS(ctx, record)
	case notification.ChannelSystem:
		return nil
	}
	return nil
}

func (h *ProcessNotificationQueueCommandHandler) inTx(ctx context.Context, fn func(ports.NotificationRepository) error) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := fn(uow.NotificationRepository()); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
