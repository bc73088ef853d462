package commands

import (
	"context"

	"freightflow/internal/core/domain/model/booking"
)

// AddRoDocumentCommandHandler attaches a release-order document to a
// booking request.
type AddRoDocumentCommandHandler struct {
	uowFactory BookingUoWFactory
}

// NewAddRoDocumentCommandHandler creates a handler for release order
// attachment.
func NewAddRoDocumentCommandHandler(uowFactory BookingUoWFactory) AddRoDocumentCommandHandler {
	return AddRoDocumentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the attachment command.
func (h *AddRoDocumentCommandHandler) Handle(ctx context.Context, cmd AddRoDocumentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	doc, err := booking.NewRoDocument(cmd.Number(), cmd.FileURL())
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

	repo := uow.BookingRequestRepository()
	aggregate, err := repo.Get(ctx, cmd.BookingRequestID())
	if err != nil {
		return err
	}

	aggregate.AddRoDocument(doc)

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
