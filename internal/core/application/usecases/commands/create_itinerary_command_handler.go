package commands

import (
	"context"

	"freightflow/internal/core/domain/model/itinerary"
)

// CreateItineraryCommandHandler drafts a weekly itinerary.
type CreateItineraryCommandHandler struct {
	uowFactory ItineraryUoWFactory
}

// NewCreateItineraryCommandHandler creates a handler for drafting
// itineraries.
func NewCreateItineraryCommandHandler(uowFactory ItineraryUoWFactory) CreateItineraryCommandHandler {
	return CreateItineraryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the itinerary creation command.
func (h *CreateItineraryCommandHandler) Handle(ctx context.Context, cmd CreateItineraryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := itinerary.NewItinerary(
		cmd.ItineraryID(), cmd.Owner(), cmd.OwnerSBU(), cmd.Type(), cmd.WeekStart(),
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

	if err = uow.ItineraryRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
