package commands

import (
	"context"

	"freightflow/internal/core/domain/model/itinerary"
)

// AddItineraryItemCommandHandler adds a planned visit to a draft itinerary.
type AddItineraryItemCommandHandler struct {
	uowFactory ItineraryUoWFactory
}

// NewAddItineraryItemCommandHandler creates a handler for planning visits.
func NewAddItineraryItemCommandHandler(uowFactory ItineraryUoWFactory) AddItineraryItemCommandHandler {
	return AddItineraryItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the item addition command. The aggregate refuses items
// once the itinerary has been submitted.
func (h *AddItineraryItemCommandHandler) Handle(ctx context.Context, cmd AddItineraryItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := itinerary.NewItem(cmd.Seq(), cmd.Customer(), cmd.Lead(), cmd.Purpose(), cmd.PlannedDate())
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

	repo := uow.ItineraryRepository()
	aggregate, err := repo.Get(ctx, cmd.ItineraryID())
	if err != nil {
		return err
	}

	if err = aggregate.AddItem(item); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
