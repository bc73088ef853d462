package notification

import (
	"time"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/errs"
)

// QueueStatus is the processing state of a durable queue item.
type QueueStatus string

const (
	QueueQueued     QueueStatus = "QUEUED"
	QueueProcessing QueueStatus = "PROCESSING"
	QueueDone       QueueStatus = "DONE"
)

// QueueItem is one unit of dispatch work in the durable queue. The
// dispatcher claims items by flipping QUEUED to PROCESSING with a
// conditional update, which keeps concurrent dispatcher instances from
// double-sending. Items claimed by a crashed instance are reclaimed
// after ReclaimAfter by the stale reclaim job.
type QueueItem struct {
	id        kernel.UUID
	userID    kernel.UUID
	channel   Channel
	subject   string
	body      string
	meta      map[string]any
	status    QueueStatus
	claimedAt *time.Time
	createdAt time.Time
}

// ReclaimAfter is how long a PROCESSING claim is honored before the
// reclaim job returns the item to QUEUED.
const ReclaimAfter = 5 * time.Minute

// NewQueueItem creates a queued dispatch work item for one user.
func NewQueueItem(userID kernel.UUID, channel Channel, subject, body string, meta map[string]any) (*QueueItem, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}
	if err := channel.Validate(); err != nil {
		return nil, err
	}
	if subject == "" {
		return nil, errs.NewValueIsRequiredError("subject")
	}

	return &QueueItem{
		id:        kernel.NewUUID(),
		userID:    userID,
		channel:   channel,
		subject:   subject,
		body:      body,
		meta:      meta,
		status:    QueueQueued,
		createdAt: time.Now(),
	}, nil
}

// RestoreQueueItem reconstructs a queue item from persistence.
func RestoreQueueItem(
	id, userID kernel.UUID,
	channel Channel,
	subject, body string,
	meta map[string]any,
	status QueueStatus,
	claimedAt *time.Time,
	createdAt time.Time,
) (*QueueItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &QueueItem{
		id:        id,
		userID:    userID,
		channel:   channel,
		subject:   subject,
		body:      body,
		meta:      meta,
		status:    status,
		claimedAt: claimedAt,
		createdAt: createdAt,
	}, nil
}

// ID returns the item identifier.
func (q *QueueItem) ID() kernel.UUID { return q.id }

// User returns the target user.
func (q *QueueItem) User() kernel.UUID { return q.userID }

// Channel returns the delivery channel.
func (q *QueueItem) Channel() Channel { return q.channel }

// Subject returns the notification subject.
func (q *QueueItem) Subject() string { return q.subject }

// Body returns the notification body.
func (q *QueueItem) Body() string { return q.body }

// Meta returns metadata attached at enqueue time.
func (q *QueueItem) Meta() map[string]any { return q.meta }

// Status returns the queue processing status.
func (q *QueueItem) Status() QueueStatus { return q.status }

// ClaimedAt returns when a dispatcher instance claimed the item, or nil.
func (q *QueueItem) ClaimedAt() *time.Time { return q.claimedAt }

// CreatedAt returns when the item was enqueued.
func (q *QueueItem) CreatedAt() time.Time { return q.createdAt }

// IsStale reports whether a PROCESSING claim has expired as of now.
func (q *QueueItem) IsStale(now time.Time) bool {
	if q.status != QueueProcessing || q.claimedAt == nil {
		return false
	}
	return now.Sub(*q.claimedAt) > ReclaimAfter
}
