package notificationrepo

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/notification"
	"freightflow/internal/pkg/errs"
)

// GormNotificationRepository implements NotificationRepository using GORM.
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewGormNotificationRepository creates a new GORM notification repository.
func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// AddNotification persists a delivery record.
func (r *GormNotificationRepository) AddNotification(ctx context.Context, n *notification.Notification) error {
	dto, err := fromDomain(n)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// UpdateNotificationStatus moves a delivery record to SENT or FAILED.
func (r *GormNotificationRepository) UpdateNotificationStatus(ctx context.Context, id kernel.UUID, status notification.DeliveryStatus) error {
	result := r.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("id = ?", id.Bytes()).
		Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("notification", id.String())
	}
	return nil
}

// GetByUser retrieves a user's notifications, newest first.
func (r *GormNotificationRepository) GetByUser(ctx context.Context, userID kernel.UUID, limit int) ([]*notification.Notification, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dtos []NotificationDTO
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID.Bytes()).
		Order("created_at DESC").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	notifications := make([]*notification.Notification, 0, len(dtos))
	for _, dto := range dtos {
		n, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	return notifications, nil
}

// MarkRead stamps a user's unread notification as read. The user scope
// keeps one user from flipping another's read state; already-read rows
// are left untouched so the first read timestamp survives.
func (r *GormNotificationRepository) MarkRead(ctx context.Context, id, userID kernel.UUID) error {
	return r.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("id = ? AND user_id = ? AND read_at IS NULL", id.Bytes(), userID.Bytes()).
		Update("read_at", time.Now()).Error
}

// MarkAllRead stamps all of a user's unread notifications as read.
func (r *GormNotificationRepository) MarkAllRead(ctx context.Context, userID kernel.UUID) (int, error) {
	result := r.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("user_id = ? AND read_at IS NULL", userID.Bytes()).
		Update("read_at", time.Now())
	if result.Error != nil {
		return 0, result.Error
	}

	return int(result.RowsAffected), nil
}

// Enqueue persists queue items. When the repository is bound to an active
// transaction the items commit together with the caller's writes.
func (r *GormNotificationRepository) Enqueue(ctx context.Context, items []*notification.QueueItem) error {
	if len(items) == 0 {
		return nil
	}

	dtos := make([]QueueItemDTO, 0, len(items))
	for _, item := range items {
		dto, err := queueItemFromDomain(item)
		if err != nil {
			return err
		}
		dtos = append(dtos, dto)
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// ClaimBatch atomically claims up to limit QUEUED items by flipping them to
// PROCESSING. SKIP LOCKED keeps concurrent dispatcher instances from blocking
// on or double-claiming the same rows.
func (r *GormNotificationRepository) ClaimBatch(ctx context.Context, limit int, claimedAt time.Time) ([]*notification.QueueItem, error) {
	var dtos []QueueItemDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("status = ?", string(notification.QueueQueued)).
		Order("created_at").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	if len(dtos) == 0 {
		return nil, nil
	}

	ids := make([]any, 0, len(dtos))
	for _, dto := range dtos {
		ids = append(ids, dto.ID)
	}

	if err := r.db.WithContext(ctx).
		Model(&QueueItemDTO{}).
		Where("id IN ?", ids).
		Updates(map[string]any{
			"status":     string(notification.QueueProcessing),
			"claimed_at": claimedAt,
		}).Error; err != nil {
		return nil, err
	}

	items := make([]*notification.QueueItem, 0, len(dtos))
	for _, dto := range dtos {
		dto.Status = string(notification.QueueProcessing)
		claimed := claimedAt
		dto.ClaimedAt = &claimed

		item, err := queueItemToDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// MarkDone finishes a claimed queue item.
func (r *GormNotificationRepository) MarkDone(ctx context.Context, id kernel.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&QueueItemDTO{}).
		Where("id = ?", id.Bytes()).
		Update("status", string(notification.QueueDone))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("queueItem", id.String())
	}
	return nil
}

// RequeueStale returns PROCESSING items claimed before the cutoff to QUEUED.
// A dispatcher that died mid-batch gets its items redelivered this way.
func (r *GormNotificationRepository) RequeueStale(ctx context.Context, cutoff time.Time) (int, error) {
	result := r.db.WithContext(ctx).
		Model(&QueueItemDTO{}).
		Where("status = ? AND claimed_at < ?", string(notification.QueueProcessing), cutoff).
		Updates(map[string]any{
			"status":     string(notification.QueueQueued),
			"claimed_at": nil,
		})
	if result.Error != nil {
		return 0, result.Error
	}

	return int(result.RowsAffected), nil
}
