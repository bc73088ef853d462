package commands

import (
	"context"
)

// MarkNotificationReadCommandHandler flips the read state of a single
// in-app notification. The repository scopes the write to the owning
// user, so reading someone else's notification changes nothing.
type MarkNotificationReadCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewMarkNotificationReadCommandHandler creates a handler for marking a
// notification as read.
func NewMarkNotificationReadCommandHandler(uowFactory DispatchUoWFactory) MarkNotificationReadCommandHandler {
	return MarkNotificationReadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle marks the notification as read. Re-reading is a no-op.
func (h *MarkNotificationReadCommandHandler) Handle(ctx context.Context, cmd MarkNotificationReadCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.NotificationRepository().MarkRead(ctx, cmd.Notification(), cmd.User()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
