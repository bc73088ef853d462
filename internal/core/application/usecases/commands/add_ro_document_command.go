package commands

import (
	"errors"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/guard"
)

var (
	ErrAddRoDocumentCommandIsNotConstructed = errors.New(
		"AddRoDocumentCommand must be created via NewAddRoDocumentCommand constructor",
	)
	ErrRoNumberIsRequired = errors.New("release order number is required")
)

// AddRoDocumentCommand represents a request to attach a release-order
// document to a booking request.
type AddRoDocumentCommand struct { //nolint:recvcheck //using for validation
	bookingRequestID kernel.UUID
	number           string
	fileURL          string

	guard guard.ConstructorGuard
}

// NewAddRoDocumentCommand creates a command to attach a release order.
func NewAddRoDocumentCommand(bookingRequestID kernel.UUID, number, fileURL string) (AddRoDocumentCommand, error) {
	if err := bookingRequestID.Validate(); err != nil {
		return AddRoDocumentCommand{}, err
	}
	if number == "" {
		return AddRoDocumentCommand{}, ErrRoNumberIsRequired
	}

	return AddRoDocumentCommand{
		bookingRequestID: bookingRequestID,
		number:           number,
		fileURL:          fileURL,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddRoDocumentCommand) Validate() error {
	return c.guard.Validate(ErrAddRoDocumentCommandIsNotConstructed)
}

// BookingRequestID returns the owning booking request identifier.
func (c AddRoDocumentCommand) BookingRequestID() kernel.UUID { return c.bookingRequestID }

// Number returns the release order number.
func (c AddRoDocumentCommand) Number() string { return c.number }

// FileURL returns the stored document location, empty if none.
func (c AddRoDocumentCommand) FileURL() string { return c.fileURL }
