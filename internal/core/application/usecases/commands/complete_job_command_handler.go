package commands

import (
	"context"
)

// CompleteJobCommandHandler records a completion on an ERP job. Completions
// are append-only; a job with at least one completion is fulfilled.
type CompleteJobCommandHandler struct {
	uowFactory BookingUoWFactory
}

// NewCompleteJobCommandHandler creates a handler for job completions.
func NewCompleteJobCommandHandler(uowFactory BookingUoWFactory) CompleteJobCommandHandler {
	return CompleteJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
func (h *CompleteJobCommandHandler) Handle(ctx context.Context, cmd CompleteJobCommand) error {
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

	job, err := aggregate.Job(cmd.JobID())
	if err != nil {
		return err
	}

	if _, err = job.Complete(cmd.CseUser(), cmd.DetailsJSON()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
