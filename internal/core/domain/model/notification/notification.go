// Package notification contains the notification record and the durable
// queue item the dispatch subsystem works through. A queue item is the unit
// of pending work; a notification is the per-user, per-channel delivery
// record written before any send attempt, so a crash mid-send never loses
// a notification silently.
package notification

import (
	"fmt"
	"time"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/errs"
)

// Channel is the delivery channel of a notification.
type Channel string

const (
	ChannelEmail  Channel = "EMAIL"
	ChannelSMS    Channel = "SMS"
	ChannelSystem Channel = "SYSTEM"
)

// Validate checks that the channel is one of the defined values.
func (c Channel) Validate() error {
	switch c {
	case ChannelEmail, ChannelSMS, ChannelSystem:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("channel",
		fmt.Errorf("%q is not a valid notification channel", string(c)))
}

// DeliveryStatus is the delivery state of a notification record.
// FAILED is terminal for the dispatcher; only an external reconciliation
// job may re-enqueue failed sends.
type DeliveryStatus string

const (
	DeliveryPending DeliveryStatus = "PENDING"
	DeliverySent    DeliveryStatus = "SENT"
	DeliveryFailed  DeliveryStatus = "FAILED"
)

// Notification is one delivery attempt record for one user on one channel.
type Notification struct {
	id        kernel.UUID
	userID    kernel.UUID
	channel   Channel
	subject   string
	body      string
	meta      map[string]any
	status    DeliveryStatus
	readAt    *time.Time
	createdAt time.Time
}

// NewNotification creates a notification record in PENDING status.
func NewNotification(userID kernel.UUID, channel Channel, subject, body string, meta map[string]any) (*Notification, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}
	if err := channel.Validate(); err != nil {
		return nil, err
	}
	if subject == "" {
		return nil, errs.NewValueIsRequiredError("subject")
	}

	return &Notification{
		id:        kernel.NewUUID(),
		userID:    userID,
		channel:   channel,
		subject:   subject,
		body:      body,
		meta:      meta,
		status:    DeliveryPending,
		createdAt: time.Now(),
	}, nil
}

// RestoreNotification reconstructs a notification from persistence.
func RestoreNotification(
	id, userID kernel.UUID,
	channel Channel,
	subject, body string,
	meta map[string]any,
	status DeliveryStatus,
	readAt *time.Time,
	createdAt time.Time,
) (*Notification, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Notification{
		id:        id,
		userID:    userID,
		channel:   channel,
		subject:   subject,
		body:      body,
		meta:      meta,
		status:    status,
		readAt:    readAt,
		createdAt: createdAt,
	}, nil
}

// ID returns the notification identifier.
func (n *Notification) ID() kernel.UUID { return n.id }

// User returns the target user.
func (n *Notification) User() kernel.UUID { return n.userID }

// Channel returns the delivery channel.
func (n *Notification) Channel() Channel { return n.channel }

// Subject returns the notification subject.
func (n *Notification) Subject() string { return n.subject }

// Body returns the notification body.
func (n *Notification) Body() string { return n.body }

// Meta returns arbitrary metadata attached at enqueue time.
func (n *Notification) Meta() map[string]any { return n.meta }

// Status returns the delivery status.
func (n *Notification) Status() DeliveryStatus { return n.status }

// ReadAt returns when the user read the notification in-app, nil while
// unread. Read state is independent of delivery status.
func (n *Notification) ReadAt() *time.Time { return n.readAt }

// CreatedAt returns when the record was persisted.
func (n *Notification) CreatedAt() time.Time { return n.createdAt }

// MarkSent records a successful delivery.
func (n *Notification) MarkSent() { n.status = DeliverySent }

// MarkFailed records a failed delivery. The dispatcher performs no retry;
// the record stays recoverable for reconciliation.
func (n *Notification) MarkFailed() { n.status = DeliveryFailed }
