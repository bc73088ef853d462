// Package itinerary contains the weekly visit-plan aggregate: a salesperson
// drafts a plan, submits it, and the head of their strategic business unit
// approves or rejects it.
package itinerary

import (
	"errors"
	"fmt"
	"time"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/user"
	"freightflow/internal/core/domain/model/workflow"
	"freightflow/internal/pkg/errs"
)

// Type is the kind of itinerary being planned.
type Type string

const (
	TypeCustomerVisit Type = "CUSTOMER_VISIT"
	TypeSalesCall     Type = "SALES_CALL"
)

// Transition names of the itinerary lifecycle.
const (
	TransitionSubmit  workflow.TransitionName = "submit"
	TransitionApprove workflow.TransitionName = "approve"
	TransitionReject  workflow.TransitionName = "reject"
)

// DecisionPayload carries the approver's note for approve and reject.
// The note is optional on approve and mandatory on reject.
type DecisionPayload struct {
	Note string
}

// ErrItineraryIsNotConstructed is returned when an Itinerary was not
// created through NewItinerary or RestoreItinerary.
var ErrItineraryIsNotConstructed = errors.New(
	"Itinerary must be created via NewItinerary or RestoreItinerary")

// Itinerary is the aggregate root for the itinerary approval lifecycle.
type Itinerary struct {
	id          kernel.UUID
	ownerID     kernel.UUID
	ownerSBUID  *kernel.UUID
	itype       Type
	weekStart   time.Time
	status      Status
	approverID  *kernel.UUID
	approveNote string
	submittedAt *time.Time
	decidedAt   *time.Time
	version     int
	items       []Item

	isConstructed bool
}

// NewItinerary drafts an itinerary for the given week. The owner's SBU is
// captured at creation so the approver guard can match against it.
func NewItinerary(id, ownerID kernel.UUID, ownerSBUID *kernel.UUID, itype Type, weekStart time.Time) (*Itinerary, error) {
	if err := errors.Join(id.Validate(), ownerID.Validate()); err != nil {
		return nil, err
	}
	if itype != TypeCustomerVisit && itype != TypeSalesCall {
		return nil, errs.NewValueIsInvalidError("type")
	}
	if weekStart.IsZero() {
		return nil, errs.NewValueIsRequiredError("weekStart")
	}

	return &Itinerary{
		id:            id,
		ownerID:       ownerID,
		ownerSBUID:    ownerSBUID,
		itype:         itype,
		weekStart:     weekStart,
		status:        StatusDraft,
		isConstructed: true,
	}, nil
}

// RestoreItinerary reconstructs an itinerary from persistence.
func RestoreItinerary(
	id, ownerID kernel.UUID,
	ownerSBUID *kernel.UUID,
	itype Type,
	weekStart time.Time,
	status Status,
	approverID *kernel.UUID,
	approveNote string,
	submittedAt, decidedAt *time.Time,
	version int,
	items []Item,
) (*Itinerary, error) {
	if err := errors.Join(id.Validate(), ownerID.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Itinerary{
		id:            id,
		ownerID:       ownerID,
		ownerSBUID:    ownerSBUID,
		itype:         itype,
		weekStart:     weekStart,
		status:        status,
		approverID:    approverID,
		approveNote:   approveNote,
		submittedAt:   submittedAt,
		decidedAt:     decidedAt,
		version:       version,
		items:         items,
		isConstructed: true,
	}, nil
}

// Validate ensures the aggregate was properly constructed.
func (i *Itinerary) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItineraryIsNotConstructed
	}
	return nil
}

// ID returns the itinerary identifier.
func (i *Itinerary) ID() kernel.UUID { return i.id }

// Owner returns the owning salesperson.
func (i *Itinerary) Owner() kernel.UUID { return i.ownerID }

// OwnerSBU returns the owner's strategic business unit, nil if unassigned.
func (i *Itinerary) OwnerSBU() *kernel.UUID { return i.ownerSBUID }

// Type returns the itinerary type.
func (i *Itinerary) Type() Type { return i.itype }

// WeekStart returns the week-start date.
func (i *Itinerary) WeekStart() time.Time { return i.weekStart }

// Status returns the current lifecycle status.
func (i *Itinerary) Status() Status { return i.status }

// Approver returns the deciding SBU head, nil until decided.
func (i *Itinerary) Approver() *kernel.UUID { return i.approverID }

// ApproveNote returns the approver's note; empty if none.
func (i *Itinerary) ApproveNote() string { return i.approveNote }

// SubmittedAt returns when the plan was submitted, nil while drafting.
func (i *Itinerary) SubmittedAt() *time.Time { return i.submittedAt }

// DecidedAt returns when the decision was made, nil until decided.
func (i *Itinerary) DecidedAt() *time.Time { return i.decidedAt }

// Version returns the optimistic-concurrency token read from the store.
func (i *Itinerary) Version() int { return i.version }

// Items returns the ordered planned visits.
func (i *Itinerary) Items() []Item { return i.items }

// State adapts the status to the generic workflow state type.
func (i *Itinerary) State() workflow.State { return i.status.State() }

// AddItem appends a planned visit. Items can only be added while drafting.
func (i *Itinerary) AddItem(item Item) error {
	if i.status != StatusDraft {
		return errs.NewGuardViolationError("addItem", "items can only be added to draft itineraries")
	}
	i.items = append(i.items, item)
	return nil
}

// ApplyTransition validates and applies a lifecycle transition, returning
// the notification effects to dispatch.
func (i *Itinerary) ApplyTransition(name workflow.TransitionName, tc workflow.TransitionContext) ([]workflow.Effect, error) {
	if err := i.Validate(); err != nil {
		return nil, err
	}

	edge, err := lifecycle.Apply(i.State(), name, i, tc)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	switch name {
	case TransitionSubmit:
		i.submittedAt = &now
	case TransitionApprove, TransitionReject:
		actorID := tc.Actor.ID
		i.approverID = &actorID
		i.decidedAt = &now
		if payload, ok := tc.Payload.(DecisionPayload); ok {
			i.approveNote = payload.Note
		}
	}

	i.status = Status(edge.To)

	if edge.Effects == nil {
		return nil, nil
	}
	return edge.Effects(i, tc), nil
}

// lifecycle is the itinerary state graph. Submit is owner-only; decisions
// require the SBU-head capability for the owner's unit.
var lifecycle = workflow.Definition{
	Entity: workflow.EntityItinerary,
	Edges: []workflow.Edge{
		{
			Name:  TransitionSubmit,
			From:  []workflow.State{StatusDraft.State()},
			To:    StatusSubmitted.State(),
			Guard: guardSubmit,
			Effects: func(entity any, tc workflow.TransitionContext) []workflow.Effect {
				i := entity.(*Itinerary)
				return []workflow.Effect{workflow.NotifyRole(user.RoleSBUHead,
					"Itinerary Submitted",
					fmt.Sprintf("Itinerary for week %s awaits approval", i.weekStart.Format("2006-01-02")),
					false)}
			},
		},
		{
			Name:  TransitionApprove,
			From:  []workflow.State{StatusSubmitted.State()},
			To:    StatusApproved.State(),
			Guard: guardDecide(TransitionApprove, false),
			Effects: func(entity any, _ workflow.TransitionContext) []workflow.Effect {
				i := entity.(*Itinerary)
				return []workflow.Effect{workflow.NotifyUser(i.ownerID,
					"Itinerary Approved",
					fmt.Sprintf("Your itinerary for week %s has been approved", i.weekStart.Format("2006-01-02")))}
			},
		},
		{
			Name:  TransitionReject,
			From:  []workflow.State{StatusSubmitted.State()},
			To:    StatusRejected.State(),
			Guard: guardDecide(TransitionReject, true),
			Effects: func(entity any, tc workflow.TransitionContext) []workflow.Effect {
				i := entity.(*Itinerary)
				payload, _ := tc.Payload.(DecisionPayload)
				return []workflow.Effect{workflow.NotifyUser(i.ownerID,
					"Itinerary Rejected",
					fmt.Sprintf("Your itinerary for week %s has been rejected. Note: %s",
						i.weekStart.Format("2006-01-02"), payload.Note))}
			},
		},
	},
}

func guardSubmit(entity any, tc workflow.TransitionContext) error {
	i := entity.(*Itinerary)
	if !tc.Actor.ID.IsEqual(i.ownerID) {
		return errs.NewGuardViolationError(string(TransitionSubmit),
			"only the owner can submit an itinerary")
	}
	return nil
}

// guardDecide checks the approver capability: the actor must be an SBU head
// of the owner's unit. Itineraries of owners without an SBU can be decided
// by any SBU head.
func guardDecide(name workflow.TransitionName, noteRequired bool) workflow.Guard {
	return func(entity any, tc workflow.TransitionContext) error {
		i := entity.(*Itinerary)

		if tc.Actor.Role != user.RoleSBUHead {
			return errs.NewGuardViolationError(string(name),
				"only an SBU head can decide on an itinerary")
		}
		if i.ownerSBUID != nil && (tc.Actor.SBUID == nil || !tc.Actor.SBUID.IsEqual(*i.ownerSBUID)) {
			return errs.NewGuardViolationError(string(name),
				"approver must head the owner's business unit")
		}

		if noteRequired {
			payload, ok := tc.Payload.(DecisionPayload)
			if !ok || payload.Note == "" {
				return errs.NewGuardViolationError(string(name), "a decision note is required")
			}
		}
		return nil
	}
}
