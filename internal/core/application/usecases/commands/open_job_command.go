package commands

import (
	"errors"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/guard"
)

var (
	ErrOpenJobCommandIsNotConstructed = errors.New(
		"OpenJobCommand must be created via NewOpenJobCommand constructor",
	)
	ErrErpJobNoIsRequired = errors.New("ERP job number is required")
)

// OpenJobCommand represents a request to open an ERP job against a booking
// request.
type OpenJobCommand struct { //nolint:recvcheck //using for validation
	bookingRequestID kernel.UUID
	erpJobNo         string
	openedByID       kernel.UUID

	guard guard.ConstructorGuard
}

// NewOpenJobCommand creates a command to open an ERP job.
func NewOpenJobCommand(bookingRequestID kernel.UUID, erpJobNo string, openedByID kernel.UUID) (OpenJobCommand, error) {
	if err := errors.Join(bookingRequestID.Validate(), openedByID.Validate()); err != nil {
		return OpenJobCommand{}, err
	}
	if erpJobNo == "" {
		return OpenJobCommand{}, ErrErpJobNoIsRequired
	}

	return OpenJobCommand{
		bookingRequestID: bookingRequestID,
		erpJobNo:         erpJobNo,
		openedByID:       openedByID,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c OpenJobCommand) Validate() error {
	return c.guard.Validate(ErrOpenJobCommandIsNotConstructed)
}

// BookingRequestID returns the owning booking request identifier.
func (c OpenJobCommand) BookingRequestID() kernel.UUID { return c.bookingRequestID }

// ErpJobNo returns the ERP job number.
func (c OpenJobCommand) ErpJobNo() string { return c.erpJobNo }

// OpenedBy returns who opens the job.
func (c OpenJobCommand) OpenedBy() kernel.UUID { return c.openedByID }
