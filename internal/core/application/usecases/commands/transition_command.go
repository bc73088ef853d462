package commands

import (
	"errors"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/workflow"
	"freightflow/internal/pkg/guard"
)

var (
	ErrTransitionCommandIsNotConstructed = errors.New(
		"TransitionCommand must be created via NewTransitionCommand constructor",
	)
	ErrEntityTypeIsRequired = errors.New("entity type is required")
	ErrTransitionIsRequired = errors.New("transition name is required")
)

// TransitionCommand represents a request to apply one lifecycle transition
// to one workflow entity. The same command shape drives every lifecycle;
// the handler picks the aggregate through its adapter registry.
//
// Example:
//
//	cmd, err := NewTransitionCommand(
//	    workflow.EntityRateRequest, requestID, raterequest.TransitionReject,
//	    actor, raterequest.RejectPayload{Remark: "no capacity"},
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid transition request: %w", err)
//	}
//	effects, err := handler.Handle(ctx, cmd)
type TransitionCommand struct { //nolint:recvcheck //using for validation
	entityType workflow.EntityType
	entityID   kernel.UUID
	transition workflow.TransitionName
	actor      workflow.Actor
	payload    any

	guard guard.ConstructorGuard
}

// NewTransitionCommand creates a command to apply a lifecycle transition.
// Validates that entity type, entity ID, transition name and actor are set.
func NewTransitionCommand(
	entityType workflow.EntityType,
	entityID kernel.UUID,
	transition workflow.TransitionName,
	actor workflow.Actor,
	payload any,
) (TransitionCommand, error) {
	cmd := TransitionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEntityType(entityType),
		cmd.setEntityID(entityID),
		cmd.setTransition(transition),
		cmd.setActor(actor),
	); err != nil {
		return TransitionCommand{}, err
	}

	cmd.payload = payload
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionCommand) Validate() error {
	return c.guard.Validate(ErrTransitionCommandIsNotConstructed)
}

// EntityType returns the lifecycle the transition belongs to.
func (c TransitionCommand) EntityType() workflow.EntityType { return c.entityType }

// EntityID returns the target entity identifier.
func (c TransitionCommand) EntityID() kernel.UUID { return c.entityID }

// Transition returns the transition name.
func (c TransitionCommand) Transition() workflow.TransitionName { return c.transition }

// Actor returns who is requesting the transition.
func (c TransitionCommand) Actor() workflow.Actor { return c.actor }

// Payload returns the transition-specific payload, nil if none.
func (c TransitionCommand) Payload() any { return c.payload }

func (c *TransitionCommand) setEntityType(entityType workflow.EntityType) error {
	if entityType == "" {
		return ErrEntityTypeIsRequired
	}

	c.entityType = entityType
	return nil
}

func (c *TransitionCommand) setEntityID(entityID kernel.UUID) error {
	if err := entityID.Validate(); err != nil {
		return err
	}

	c.entityID = entityID
	return nil
}

func (c *TransitionCommand) setTransition(transition workflow.TransitionName) error {
	if transition == "" {
		return ErrTransitionIsRequired
	}

	c.transition = transition
	return nil
}

func (c *TransitionCommand) setActor(actor workflow.Actor) error {
	if err := actor.ID.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
