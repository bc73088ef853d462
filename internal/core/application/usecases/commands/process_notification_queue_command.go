package commands

import (
	"errors"

	"freightflow/internal/pkg/guard"
)

var (
	ErrProcessNotificationQueueCommandIsNotConstructed = errors.New(
		"ProcessNotificationQueueCommand must be created via NewProcessNotificationQueueCommand constructor",
	)
	ErrBatchSizeIsInvalid = errors.New("batch size must be greater than 0")
)

// ProcessNotificationQueueCommand represents one dispatch cycle over the
// durable notification queue.
type ProcessNotificationQueueCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

// NewProcessNotificationQueueCommand creates a command for one dispatch
// cycle claiming up to batchSize queue items.
func NewProcessNotificationQueueCommand(batchSize int) (ProcessNotificationQueueCommand, error) {
	if batchSize <= 0 {
		return ProcessNotificationQueueCommand{}, ErrBatchSizeIsInvalid
	}

	return ProcessNotificationQueueCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessNotificationQueueCommand) Validate() error {
	return c.guard.Validate(ErrProcessNotificationQueueCommandIsNotConstructed)
}

// BatchSize returns the claim limit for the cycle.
func (c ProcessNotificationQueueCommand) BatchSize() int { return c.batchSize }
