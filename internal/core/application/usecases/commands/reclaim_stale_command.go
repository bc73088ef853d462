package commands

import (
	"errors"
	"time"

	"freightflow/internal/pkg/guard"
)

var (
	ErrReclaimStaleCommandIsNotConstructed = errors.New(
		"ReclaimStaleCommand must be created via NewReclaimStaleCommand constructor",
	)
	ErrOlderThanIsInvalid = errors.New("olderThan must be greater than 0")
)

// ReclaimStaleCommand represents returning queue items stuck in PROCESSING
// to QUEUED after a crashed dispatcher instance abandoned its claims.
type ReclaimStaleCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewReclaimStaleCommand creates a command reclaiming claims older than
// the given age.
func NewReclaimStaleCommand(olderThan time.Duration) (ReclaimStaleCommand, error) {
	if olderThan <= 0 {
		return ReclaimStaleCommand{}, ErrOlderThanIsInvalid
	}

	return ReclaimStaleCommand{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReclaimStaleCommand) Validate() error {
	return c.guard.Validate(ErrReclaimStaleCommandIsNotConstructed)
}

// OlderThan returns the minimum claim age for reclaiming.
func (c ReclaimStaleCommand) OlderThan() time.Duration { return c.olderThan }
