// Package workflow provides the generic lifecycle machinery shared by the
// rate request, booking request, itinerary, and customer approval state
// machines. Each entity package declares its own Definition (state set,
// transition table, guard closures) and keeps its field mutations local;
// the table-driven shape avoids duplicating guard evaluation across the
// four lifecycles.
package workflow

import (
	"fmt"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/user"
	"freightflow/internal/pkg/errs"
)

// EntityType names a lifecycle-governed aggregate type.
type EntityType string

const (
	EntityRateRequest    EntityType = "RATE_REQUEST"
	EntityBookingRequest EntityType = "BOOKING_REQUEST"
	EntityItinerary      EntityType = "ITINERARY"
	EntityCustomer       EntityType = "CUSTOMER"
)

// State is a lifecycle state of an aggregate.
type State string

// TransitionName names an edge of a lifecycle graph.
type TransitionName string

// Actor identifies the authenticated user performing a transition.
// Authorization happened upstream; guards only consult role, identity,
// and unit membership.
type Actor struct {
	ID    kernel.UUID
	Role  user.Role
	SBUID *kernel.UUID
}

// TransitionContext carries the actor and the transition-specific payload
// into guard evaluation and effect construction. Payload types are declared
// by the entity packages.
type TransitionContext struct {
	Actor   Actor
	Payload any
}

// Guard validates a transition beyond the state-graph check: payload shape,
// actor identity, entity-specific rules. A nil Guard always passes.
type Guard func(entity any, tc TransitionContext) error

// EffectsFunc builds the notification effects a successful transition emits.
// Effects are data only; the engine never performs notification I/O.
type EffectsFunc func(entity any, tc TransitionContext) []Effect

// Edge is one legal transition of a lifecycle graph.
type Edge struct {
	Name    TransitionName
	From    []State
	To      State
	Guard   Guard
	Effects EffectsFunc
}

// Definition is the lifecycle graph of one entity type.
type Definition struct {
	Entity EntityType
	Edges  []Edge
}

// Apply resolves the edge matching (current, name) and runs its guard.
// It returns the matched edge so callers can read the target state and
// build effects after mutating the aggregate.
//
// An unknown transition name and a known name that is illegal from the
// current state both surface as guard violations; the error does not
// reveal the graph shape.
func (d Definition) Apply(current State, name TransitionName, entity any, tc TransitionContext) (Edge, error) {
	known := false
	for _, edge := range d.Edges {
		if edge.Name != name {
			continue
		}
		known = true

		for _, from := range edge.From {
			if from != current {
				continue
			}
			if edge.Guard != nil {
				if err := edge.Guard(entity, tc); err != nil {
					return Edge{}, err
				}
			}
			return edge, nil
		}
	}

	if !known {
		return Edge{}, errs.NewGuardViolationError(string(name),
			fmt.Sprintf("transition is not defined for %s", d.Entity))
	}
	return Edge{}, errs.NewGuardViolationError(string(name),
		fmt.Sprintf("not allowed from status %s", current))
}

// Transitionable is implemented by every lifecycle-governed aggregate.
// ApplyTransition validates the edge against the aggregate's Definition,
// mutates the aggregate, and returns the effects to dispatch.
type Transitionable interface {
	ID() kernel.UUID
	Version() int
	State() State
	ApplyTransition(name TransitionName, tc TransitionContext) ([]Effect, error)
}
