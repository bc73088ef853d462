package commands

import (
	"context"
)

// MarkAllNotificationsReadCommandHandler clears a user's unread feed.
type MarkAllNotificationsReadCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewMarkAllNotificationsReadCommandHandler creates a handler for marking
// all of a user's notifications as read.
func NewMarkAllNotificationsReadCommandHandler(uowFactory DispatchUoWFactory) MarkAllNotificationsReadCommandHandler {
	return MarkAllNotificationsReadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle marks every unread notification of the user as read and returns
// how many were flipped.
func (h *MarkAllNotificationsReadCommandHandler) Handle(ctx context.Context, cmd MarkAllNotificationsReadCommand) (int, error) {
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

	updated, err := uow.NotificationRepository().MarkAllRead(ctx, cmd.User())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return updated, nil
}
