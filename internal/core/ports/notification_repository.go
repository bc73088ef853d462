package ports

import (
	"context"
	"time"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for notification
// records and the durable dispatch queue.
type NotificationRepository interface {
	// AddNotification persists a delivery record, normally in PENDING
	// status before any send attempt.
	AddNotification(ctx context.Context, n *notification.Notification) error

	// UpdateNotificationStatus moves a delivery record to SENT or FAILED.
	UpdateNotificationStatus(ctx context.Context, id kernel.UUID, status notification.DeliveryStatus) error

	// GetByUser retrieves a user's notifications, newest first.
	GetByUser(ctx context.Context, userID kernel.UUID, limit int) ([]*notification.Notification, error)

	// MarkRead stamps a user's unread notification as read in-app.
	// Marking an already-read or foreign notification is a no-op.
	MarkRead(ctx context.Context, id, userID kernel.UUID) error

	// MarkAllRead stamps all of a user's unread notifications as read and
	// reports how many changed.
	MarkAllRead(ctx context.Context, userID kernel.UUID) (int, error)

	// Enqueue persists queue items atomically with the surrounding
	// transaction when one is active.
	Enqueue(ctx context.Context, items []*notification.QueueItem) error

	// ClaimBatch atomically claims up to limit QUEUED items by flipping
	// them to PROCESSING with the given claim time. Only items whose
	// status was still QUEUED at claim time are returned, which keeps
	// concurrent dispatcher instances from double-sending.
	ClaimBatch(ctx context.Context, limit int, claimedAt time.Time) ([]*notification.QueueItem, error)

	// MarkDone finishes a claimed queue item. Items are kept, not
	// deleted, so dispatch history stays auditable.
	MarkDone(ctx context.Context, id kernel.UUID) error

	// RequeueStale returns PROCESSING items claimed before the cutoff to
	// QUEUED and reports how many were reclaimed.
	RequeueStale(ctx context.Context, cutoff time.Time) (int, error)
}
