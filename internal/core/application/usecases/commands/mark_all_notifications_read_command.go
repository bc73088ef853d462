package commands

import (
	"errors"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/guard"
)

var ErrMarkAllNotificationsReadCommandIsNotConstructed = errors.New(
	"MarkAllNotificationsReadCommand must be created via NewMarkAllNotificationsReadCommand constructor",
)

// MarkAllNotificationsReadCommand represents a user clearing their unread
// notification feed in one go.
type MarkAllNotificationsReadCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkAllNotificationsReadCommand creates a command marking all of a
// user's notifications as read.
func NewMarkAllNotificationsReadCommand(userID kernel.UUID) (MarkAllNotificationsReadCommand, error) {
	if err := userID.Validate(); err != nil {
		return MarkAllNotificationsReadCommand{}, err
	}

	return MarkAllNotificationsReadCommand{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkAllNotificationsReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkAllNotificationsReadCommandIsNotConstructed)
}

// User returns the reading user.
func (c MarkAllNotificationsReadCommand) User() kernel.UUID { return c.userID }
