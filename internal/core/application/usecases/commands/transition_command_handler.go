package commands

import (
	"context"
	"errors"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/workflow"
	"freightflow/internal/core/ports"
	"freightflow/internal/pkg/errs"
	"freightflow/pkg/metrics"
)

// LifecycleAdapter binds one entity type to its repository so the generic
// transition handler can load and save any workflow aggregate.
type LifecycleAdapter interface {
	// Load retrieves the aggregate as a Transitionable.
	Load(ctx context.Context, uow ports.UnitOfWork, id kernel.UUID) (workflow.Transitionable, error)

	// Save persists the mutated aggregate with a compare-and-swap write
	// on the version it was loaded with.
	Save(ctx context.Context, uow ports.UnitOfWork, entity workflow.Transitionable) error
}

// TransitionCommandHandler applies lifecycle transitions across all four
// workflow entity types. The handler is the single write path for status
// changes: it loads the aggregate inside a transaction, lets the aggregate
// validate and apply the transition, and persists the result conditionally
// on the version the aggregate was read with. A concurrent writer surfaces
// as errs.ErrStateConflict and the caller retries or reports.
type TransitionCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	adapters   map[workflow.EntityType]LifecycleAdapter
	metrics    *metrics.Metrics
}

// NewTransitionCommandHandler creates the generic transition handler with
// an adapter per supported entity type.
func NewTransitionCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	adapters map[workflow.EntityType]LifecycleAdapter,
	m *metrics.Metrics,
) TransitionCommandHandler {
	return TransitionCommandHandler{
		uowFactory: uowFactory,
		adapters:   adapters,
		metrics:    m,
	}
}

// Handle processes the transition command and returns the notification
// effects the transition emitted. Effects are returned, not dispatched;
// the caller enqueues them through the notify publisher after commit.
func (h *TransitionCommandHandler) Handle(ctx context.Context, cmd TransitionCommand) ([]workflow.Effect, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	adapter, ok := h.adapters[cmd.EntityType()]
	if !ok {
		return nil, errs.NewValueIsInvalidError("entityType")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	entity, err := adapter.Load(ctx, uow, cmd.EntityID())
	if err != nil {
		return nil, err
	}

	tc := workflow.TransitionContext{Actor: cmd.Actor(), Payload: cmd.Payload()}
	effects, err := entity.ApplyTransition(cmd.Transition(), tc)
	if err != nil {
		return nil, err
	}

	if err = adapter.Save(ctx, uow, entity); err != nil {
		if errors.Is(err, errs.ErrStateConflict) {
			h.metrics.TransitionConflicts.Inc()
		}
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.metrics.TransitionsApplied.
		WithLabelValues(string(cmd.EntityType()), string(cmd.Transition())).Inc()

	return effects, nil
}
