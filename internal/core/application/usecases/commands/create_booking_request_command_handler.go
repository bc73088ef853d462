package commands

import (
	"context"

	"freightflow/internal/core/domain/model/booking"
)

// CreateBookingRequestCommandHandler raises a booking request in PENDING
// status against a rate source.
type CreateBookingRequestCommandHandler struct {
	uowFactory BookingUoWFactory
}

// NewCreateBookingRequestCommandHandler creates a handler for raising
// booking requests.
func NewCreateBookingRequestCommandHandler(uowFactory BookingUoWFactory) CreateBookingRequestCommandHandler {
	return CreateBookingRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the booking creation command.
func (h *CreateBookingRequestCommandHandler) Handle(ctx context.Context, cmd CreateBookingRequestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := booking.NewBookingRequest(
		cmd.BookingRequestID(), cmd.Customer(), cmd.RateSource(), cmd.RateRef(), cmd.RaisedBy(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.BookingRequestRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
