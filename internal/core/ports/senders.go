package ports

import (
	"context"

	"freightflow/internal/core/domain/model/notification"
)

// EmailSender delivers a notification over email.
type EmailSender interface {
	SendEmail(ctx context.Context, n *notification.Notification) error
}

// SMSSender delivers a notification over SMS.
type SMSSender interface {
	SendSMS(ctx context.Context, n *notification.Notification) error
}
