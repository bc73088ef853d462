// Package notificationrepo provides data transfer objects and mapping
// functions for notification delivery records and the durable dispatch queue.
package notificationrepo

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/notification"
)

// NotificationDTO represents a delivery record for a single notification.
type NotificationDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;index"`
	Channel   string
	Subject   string
	Body      string
	Meta      []byte `gorm:"type:jsonb"`
	Status    string `gorm:"index"`
	ReadAt    *time.Time
	CreatedAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for notification entities.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// QueueItemDTO represents a pending dispatch in the notification queue.
// Items move QUEUED -> PROCESSING -> DONE and are kept after dispatch so the
// queue doubles as an audit trail.
type QueueItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;index"`
	Channel   string
	Subject   string
	Body      string
	Meta      []byte `gorm:"type:jsonb"`
	Status    string `gorm:"index"`
	ClaimedAt *time.Time
	CreatedAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for queue item entities.
func (QueueItemDTO) TableName() string {
	return "notification_queue"
}

// fromDomain converts a notification to its database representation.
func fromDomain(n *notification.Notification) (NotificationDTO, error) {
	meta, err := marshalMeta(n.Meta())
	if err != nil {
		return NotificationDTO{}, err
	}

	return NotificationDTO{
		ID:        n.ID().Bytes(),
		UserID:    n.User().Bytes(),
		Channel:   string(n.Channel()),
		Subject:   n.Subject(),
		Body:      n.Body(),
		Meta:      meta,
		Status:    string(n.Status()),
		ReadAt:    n.ReadAt(),
		CreatedAt: n.CreatedAt(),
	}, nil
}

// toDomain converts a database DTO to a notification.
func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	meta, err := unmarshalMeta(dto.Meta)
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(
		id, userID,
		notification.Channel(dto.Channel),
		dto.Subject, dto.Body,
		meta,
		notification.DeliveryStatus(dto.Status),
		dto.ReadAt,
		dto.CreatedAt,
	)
}

// queueItemFromDomain converts a queue item to its database representation.
func queueItemFromDomain(item *notification.QueueItem) (QueueItemDTO, error) {
	meta, err := marshalMeta(item.Meta())
	if err != nil {
		return QueueItemDTO{}, err
	}

	return QueueItemDTO{
		ID:        item.ID().Bytes(),
		UserID:    item.User().Bytes(),
		Channel:   string(item.Channel()),
		Subject:   item.Subject(),
		Body:      item.Body(),
		Meta:      meta,
		Status:    string(item.Status()),
		ClaimedAt: item.ClaimedAt(),
		CreatedAt: item.CreatedAt(),
	}, nil
}

// queueItemToDomain converts a database DTO to a queue item.
func queueItemToDomain(dto QueueItemDTO) (*notification.QueueItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	meta, err := unmarshalMeta(dto.Meta)
	if err != nil {
		return nil, err
	}

	return notification.RestoreQueueItem(
		id, userID,
		notification.Channel(dto.Channel),
		dto.Subject, dto.Body,
		meta,
		notification.QueueStatus(dto.Status),
		dto.ClaimedAt,
		dto.CreatedAt,
	)
}

func marshalMeta(meta map[string]any) ([]byte, error) {
	if len(meta) == 0 {
		return nil, nil
	}
	return json.Marshal(meta)
}

func unmarshalMeta(raw []byte) (map[string]any, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var meta map[string]any
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, err
	}
	return meta, nil
}
