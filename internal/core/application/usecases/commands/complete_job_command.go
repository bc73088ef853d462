package commands

import (
	"errors"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/guard"
)

var ErrCompleteJobCommandIsNotConstructed = errors.New(
	"CompleteJobCommand must be created via NewCompleteJobCommand constructor",
)

// CompleteJobCommand represents a CSE recording a completion on an ERP job.
type CompleteJobCommand struct { //nolint:recvcheck //using for validation
	bookingRequestID kernel.UUID
	jobID            kernel.UUID
	cseUserID        kernel.UUID
	detailsJSON      []byte

	guard guard.ConstructorGuard
}

// NewCompleteJobCommand creates a command to record a job completion.
func NewCompleteJobCommand(bookingRequestID, jobID, cseUserID kernel.UUID, detailsJSON []byte) (CompleteJobCommand, error) {
	if err := errors.Join(
		bookingRequestID.Validate(),
		jobID.Validate(),
		cseUserID.Validate(),
	); err != nil {
		return CompleteJobCommand{}, err
	}

	return CompleteJobCommand{
		bookingRequestID: bookingRequestID,
		jobID:            jobID,
		cseUserID:        cseUserID,
		detailsJSON:      detailsJSON,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteJobCommand) Validate() error {
	return c.guard.Validate(ErrCompleteJobCommandIsNotConstructed)
}

// BookingRequestID returns the owning booking request identifier.
func (c CompleteJobCommand) BookingRequestID() kernel.UUID { return c.bookingRequestID }

// JobID returns the job being completed.
func (c CompleteJobCommand) JobID() kernel.UUID { return c.jobID }

// CseUser returns the completing CSE user.
func (c CompleteJobCommand) CseUser() kernel.UUID { return c.cseUserID }

// DetailsJSON returns the opaque completion details.
func (c CompleteJobCommand) DetailsJSON() []byte { return c.detailsJSON }
