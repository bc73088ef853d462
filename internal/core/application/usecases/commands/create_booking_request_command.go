package commands

import (
	"errors"

	"freightflow/internal/core/domain/model/booking"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/guard"
)

var ErrCreateBookingRequestCommandIsNotConstructed = errors.New(
	"CreateBookingRequestCommand must be created via NewCreateBookingRequestCommand constructor",
)

// CreateBookingRequestCommand represents a request to raise a booking
// against a priced rate for a customer.
type CreateBookingRequestCommand struct { //nolint:recvcheck //using for validation
	bookingRequestID kernel.UUID
	customerID       kernel.UUID
	rateSource       booking.RateSource
	rateRefID        kernel.UUID
	raisedByID       kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateBookingRequestCommand creates a command to raise a booking.
func NewCreateBookingRequestCommand(
	bookingRequestID, customerID kernel.UUID,
	rateSource booking.RateSource,
	rateRefID, raisedByID kernel.UUID,
) (CreateBookingRequestCommand, error) {
	if err := errors.Join(
		bookingRequestID.Validate(),
		customerID.Validate(),
		rateRefID.Validate(),
		raisedByID.Validate(),
	); err != nil {
		return CreateBookingRequestCommand{}, err
	}

	return CreateBookingRequestCommand{
		bookingRequestID: bookingRequestID,
		customerID:       customerID,
		rateSource:       rateSource,
		rateRefID:        rateRefID,
		raisedByID:       raisedByID,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBookingRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateBookingRequestCommandIsNotConstructed)
}

// BookingRequestID returns the identifier for the new booking request.
func (c CreateBookingRequestCommand) BookingRequestID() kernel.UUID { return c.bookingRequestID }

// Customer returns the booked customer.
func (c CreateBookingRequestCommand) Customer() kernel.UUID { return c.customerID }

// RateSource returns the rate source discriminator.
func (c CreateBookingRequestCommand) RateSource() booking.RateSource { return c.rateSource }

// RateRef returns the referenced rate or quote identifier.
func (c CreateBookingRequestCommand) RateRef() kernel.UUID { return c.rateRefID }

// RaisedBy returns who raises the booking.
func (c CreateBookingRequestCommand) RaisedBy() kernel.UUID { return c.raisedByID }
