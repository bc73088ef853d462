package commands

import (
	"context"

	"freightflow/internal/core/domain/model/booking"
	"freightflow/internal/pkg/errs"
)

// OpenJobCommandHandler opens an ERP job against a confirmed booking
// request.
type OpenJobCommandHandler struct {
	uowFactory BookingUoWFactory
}

// NewOpenJobCommandHandler creates a handler for opening ERP jobs.
func NewOpenJobCommandHandler(uowFactory BookingUoWFactory) OpenJobCommandHandler {
	return OpenJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the job opening command. Jobs can only be opened on
// confirmed bookings.
func (h *OpenJobCommandHandler) Handle(ctx context.Context, cmd OpenJobCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.BookingRequestRepository()
	aggregate, err := repo.Get(ctx, cmd.BookingRequestID())
	if err != nil {
		return err
	}

	if aggregate.Status() != booking.StatusConfirmed {
		return errs.NewGuardViolationError("openJob", "jobs can only be opened on confirmed bookings")
	}

	job, err := booking.NewJob(cmd.ErpJobNo(), cmd.OpenedBy())
	if err != nil {
		return err
	}
	aggregate.OpenJob(job)

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
