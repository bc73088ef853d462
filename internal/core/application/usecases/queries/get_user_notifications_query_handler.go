package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"freightflow/internal/core/domain/model/kernel"
)

// GetUserNotificationsQueryHandler reads a user's notification feed with
// direct SQL for read performance.
type GetUserNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewGetUserNotificationsQueryHandler creates a handler for the
// notification feed query.
func NewGetUserNotificationsQueryHandler(db *gorm.DB) GetUserNotificationsQueryHandler {
	return GetUserNotificationsQueryHandler{db: db}
}

// Handle executes the query, newest notifications first.
func (h GetUserNotificationsQueryHandler) Handle(
	ctx context.Context,
	query GetUserNotificationsQuery,
) ([]GetUserNotificationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	notifications := make([]GetUserNotificationsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			channel,
			subject,
			body,
			status,
			read_at,
			created_at
		FROM notifications
		WHERE user_id = ?
		ORDER BY created_at DESC
		LIMIT ?
	`, query.UserID().String(), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var n GetUserNotificationsQueryResponse
		var id uuid.UUID
		var readAt *time.Time
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&n.Channel,
			&n.Subject,
			&n.Body,
			&n.Status,
			&readAt,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		notificationID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		n.ID = notificationID
		if readAt != nil {
			formatted := readAt.Format(time.RFC3339)
			n.ReadAt = &formatted
		}
		n.CreatedAt = createdAt.Format(time.RFC3339)
		notifications = append(notifications, n)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}
