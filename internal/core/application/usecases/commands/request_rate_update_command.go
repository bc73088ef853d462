package commands

import (
	"errors"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/guard"
)

var (
	ErrRequestRateUpdateCommandIsNotConstructed = errors.New(
		"RequestRateUpdateCommand must be created via NewRequestRateUpdateCommand constructor",
	)
	ErrRateUpdateNoteIsRequired = errors.New("rate update note is required")
)

// RequestRateUpdateCommand represents a salesperson asking the pricing
// team assigned to a trade lane to refresh its rates.
type RequestRateUpdateCommand struct { //nolint:recvcheck //using for validation
	tradeLaneID kernel.UUID
	requestedBy kernel.UUID
	note        string

	guard guard.ConstructorGuard
}

// NewRequestRateUpdateCommand creates a command to ask for a rate refresh.
func NewRequestRateUpdateCommand(tradeLaneID, requestedBy kernel.UUID, note string) (RequestRateUpdateCommand, error) {
	if err := errors.Join(tradeLaneID.Validate(), requestedBy.Validate()); err != nil {
		return RequestRateUpdateCommand{}, err
	}
	if note == "" {
		return RequestRateUpdateCommand{}, ErrRateUpdateNoteIsRequired
	}

	return RequestRateUpdateCommand{
		tradeLaneID: tradeLaneID,
		requestedBy: requestedBy,
		note:        note,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestRateUpdateCommand) Validate() error {
	return c.guard.Validate(ErrRequestRateUpdateCommandIsNotConstructed)
}

// TradeLane returns the trade lane whose rates need refreshing.
func (c RequestRateUpdateCommand) TradeLane() kernel.UUID { return c.tradeLaneID }

// RequestedBy returns the asking salesperson.
func (c RequestRateUpdateCommand) RequestedBy() kernel.UUID { return c.requestedBy }

// Note returns the salesperson's note to the pricing team.
func (c RequestRateUpdateCommand) Note() string { return c.note }
