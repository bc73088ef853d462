package commands

import (
	"context"

	"freightflow/internal/core/domain/model/raterequest"
	"freightflow/internal/core/domain/model/workflow"
)

// CreateRateRequestCommandHandler registers a new rate request in PENDING
// status and returns the pricing-team fan-out effect for the caller to
// enqueue after commit.
type CreateRateRequestCommandHandler struct {
	uowFactory RateRequestUoWFactory
}

// NewCreateRateRequestCommandHandler creates a handler for rate request
// registration.
func NewCreateRateRequestCommandHandler(uowFactory RateRequestUoWFactory) CreateRateRequestCommandHandler {
	return CreateRateRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rate request creation command.
func (h *CreateRateRequestCommandHandler) Handle(ctx context.Context, cmd CreateRateRequestCommand) ([]workflow.Effect, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := raterequest.NewRateRequest(
		cmd.RateRequestID(),
		cmd.Mode(),
		cmd.Type(),
		cmd.POL(), cmd.POD(), cmd.EquipType(),
		cmd.PreferredLine(),
		cmd.Weight(),
		cmd.CargoReadyDate(),
		cmd.VesselRequired(),
		cmd.Salesperson(),
		cmd.Customer(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.RateRequestRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate.CreationEffects(), nil
}
