// Package raterequest contains the rate request aggregate: a salesperson's
// ask for carrier pricing that the pricing team answers with responses and
// line quotes. The lifecycle is PENDING -> PROCESSING -> COMPLETED with a
// reject branch from the two non-terminal states.
package raterequest

import (
	"errors"
	"fmt"
	"time"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/user"
	"freightflow/internal/core/domain/model/workflow"
	"freightflow/internal/pkg/errs"
)

// Mode is the transport mode of a rate request.
type Mode string

const (
	ModeSea Mode = "SEA"
	ModeAir Mode = "AIR"
)

// Type is the shipment type of a rate request.
type Type string

const (
	TypeFCL Type = "FCL"
	TypeLCL Type = "LCL"
)

// Transition names of the rate request lifecycle.
const (
	TransitionRespond  workflow.TransitionName = "respond"
	TransitionComplete workflow.TransitionName = "complete"
	TransitionReject   workflow.TransitionName = "reject"
)

// RejectPayload carries the data for the "reject" transition.
type RejectPayload struct {
	Remark string
}

// ErrRateRequestIsNotConstructed is returned when a RateRequest instance
// was not created through NewRateRequest or RestoreRateRequest.
var ErrRateRequestIsNotConstructed = errors.New(
	"RateRequest must be created via NewRateRequest or RestoreRateRequest")

// RateRequest is the aggregate root for the sales-to-pricing lifecycle.
// It owns its pricing responses and line quotes and is mutated only through
// guarded transitions; cancellation and rejection are terminal states, not
// deletions.
type RateRequest struct {
	id              kernel.UUID
	refNo           kernel.RefNo
	mode            Mode
	rtype           Type
	polID           kernel.UUID
	podID           kernel.UUID
	equipTypeID     kernel.UUID
	preferredLineID *kernel.UUID
	weight          float64
	cargoReadyDate  time.Time
	vesselRequired  bool
	specialNotes    string
	salespersonID   kernel.UUID
	customerID      *kernel.UUID
	status          Status
	version         int
	responses       []Response
	quotes          []*LineQuote

	isConstructed bool
}

// NewRateRequest creates a rate request in PENDING status with a freshly
// generated business reference number. A nil preferredLineID means any
// carrier is acceptable.
func NewRateRequest(
	id kernel.UUID,
	mode Mode,
	rtype Type,
	polID, podID, equipTypeID kernel.UUID,
	preferredLineID *kernel.UUID,
	weight float64,
	cargoReadyDate time.Time,
	vesselRequired bool,
	salespersonID kernel.UUID,
	customerID *kernel.UUID,
) (*RateRequest, error) {
	if err := errors.Join(
		id.Validate(),
		polID.Validate(),
		podID.Validate(),
		equipTypeID.Validate(),
		salespersonID.Validate(),
	); err != nil {
		return nil, err
	}
	if mode != ModeSea && mode != ModeAir {
		return nil, errs.NewValueIsInvalidError("mode")
	}
	if rtype != TypeFCL && rtype != TypeLCL {
		return nil, errs.NewValueIsInvalidError("type")
	}
	if weight <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%v is not greater than 0", weight))
	}
	if cargoReadyDate.IsZero() {
		return nil, errs.NewValueIsRequiredError("cargoReadyDate")
	}

	return &RateRequest{
		id:              id,
		refNo:           kernel.NewRateRequestRefNo(),
		mode:            mode,
		rtype:           rtype,
		polID:           polID,
		podID:           podID,
		equipTypeID:     equipTypeID,
		preferredLineID: preferredLineID,
		weight:          weight,
		cargoReadyDate:  cargoReadyDate,
		vesselRequired:  vesselRequired,
		salespersonID:   salespersonID,
		customerID:      customerID,
		status:          StatusPending,
		isConstructed:   true,
	}, nil
}

// RestoreRateRequest reconstructs a rate request from persistence,
// including its version token for optimistic concurrency.
func RestoreRateRequest(
	id kernel.UUID,
	refNo kernel.RefNo,
	mode Mode,
	rtype Type,
	polID, podID, equipTypeID kernel.UUID,
	preferredLineID *kernel.UUID,
	weight float64,
	cargoReadyDate time.Time,
	vesselRequired bool,
	specialNotes string,
	salespersonID kernel.UUID,
	customerID *kernel.UUID,
	status Status,
	version int,
	responses []Response,
	quotes []*LineQuote,
) (*RateRequest, error) {
	if err := errors.Join(id.Validate(), refNo.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &RateRequest{
		id:              id,
		refNo:           refNo,
		mode:            mode,
		rtype:           rtype,
		polID:           polID,
		podID:           podID,
		equipTypeID:     equipTypeID,
		preferredLineID: preferredLineID,
		weight:          weight,
		cargoReadyDate:  cargoReadyDate,
		vesselRequired:  vesselRequired,
		specialNotes:    specialNotes,
		salespersonID:   salespersonID,
		customerID:      customerID,
		status:          status,
		version:         version,
		responses:       responses,
		quotes:          quotes,
		isConstructed:   true,
	}, nil
}

// Validate ensures the aggregate was properly constructed.
func (r *RateRequest) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRateRequestIsNotConstructed
	}
	return nil
}

// ID returns the rate request identifier.
func (r *RateRequest) ID() kernel.UUID { return r.id }

// RefNo returns the human-facing business reference number.
func (r *RateRequest) RefNo() kernel.RefNo { return r.refNo }

// Mode returns the transport mode.
func (r *RateRequest) Mode() Mode { return r.mode }

// Type returns the shipment type.
func (r *RateRequest) Type() Type { return r.rtype }

// POL returns the port of loading reference.
func (r *RateRequest) POL() kernel.UUID { return r.polID }

// POD returns the port of discharge reference.
func (r *RateRequest) POD() kernel.UUID { return r.podID }

// EquipType returns the equipment type reference.
func (r *RateRequest) EquipType() kernel.UUID { return r.equipTypeID }

// PreferredLine returns the preferred carrier, nil meaning any carrier.
func (r *RateRequest) PreferredLine() *kernel.UUID { return r.preferredLineID }

// Weight returns the cargo weight.
func (r *RateRequest) Weight() float64 { return r.weight }

// CargoReadyDate returns the cargo-ready date.
func (r *RateRequest) CargoReadyDate() time.Time { return r.cargoReadyDate }

// VesselRequired reports whether responses must carry vessel details.
func (r *RateRequest) VesselRequired() bool { return r.vesselRequired }

// SpecialNotes returns free-form instructions, including the rejection
// remark for rejected requests.
func (r *RateRequest) SpecialNotes() string { return r.specialNotes }

// Salesperson returns the owning salesperson.
func (r *RateRequest) Salesperson() kernel.UUID { return r.salespersonID }

// Customer returns the customer reference, nil if not tied to one.
func (r *RateRequest) Customer() *kernel.UUID { return r.customerID }

// Status returns the current lifecycle status.
func (r *RateRequest) Status() Status { return r.status }

// Version returns the optimistic-concurrency token read from the store.
func (r *RateRequest) Version() int { return r.version }

// Responses returns the append-only pricing responses.
func (r *RateRequest) Responses() []Response { return r.responses }

// Quotes returns the carrier quotes attached to the request.
func (r *RateRequest) Quotes() []*LineQuote { return r.quotes }

// State adapts the status to the generic workflow state type.
func (r *RateRequest) State() workflow.State { return r.status.State() }

// CreationEffects returns the notifications a freshly created rate request
// emits: a fan-out to the pricing role.
func (r *RateRequest) CreationEffects() []workflow.Effect {
	return []workflow.Effect{
		workflow.NotifyRole(user.RolePricing, "New Rate Request",
			fmt.Sprintf("New rate request %s has been submitted", r.refNo), false),
	}
}

// ApplyTransition validates and applies a lifecycle transition, returning
// the notification effects to dispatch. The caller persists the aggregate
// with a compare-and-swap write afterwards.
func (r *RateRequest) ApplyTransition(name workflow.TransitionName, tc workflow.TransitionContext) ([]workflow.Effect, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	edge, err := lifecycle.Apply(r.State(), name, r, tc)
	if err != nil {
		return nil, err
	}

	switch name {
	case TransitionRespond:
		payload := tc.Payload.(RespondPayload)
		response, respErr := newResponse(payload)
		if respErr != nil {
			return nil, respErr
		}
		r.responses = append(r.responses, response)
	case TransitionReject:
		payload := tc.Payload.(RejectPayload)
		r.specialNotes = fmt.Sprintf("REJECTED: %s", payload.Remark)
	}

	r.status = Status(edge.To)

	if edge.Effects == nil {
		return nil, nil
	}
	return edge.Effects(r, tc), nil
}

// lifecycle is the rate request state graph. Guards validate payload shape
// before ApplyTransition touches aggregate state.
var lifecycle = workflow.Definition{
	Entity: workflow.EntityRateRequest,
	Edges: []workflow.Edge{
		{
			Name:  TransitionRespond,
			From:  []workflow.State{StatusPending.State()},
			To:    StatusProcessing.State(),
			Guard: guardRespond,
			Effects: func(entity any, _ workflow.TransitionContext) []workflow.Effect {
				r := entity.(*RateRequest)
				return []workflow.Effect{workflow.NotifyUser(r.salespersonID,
					"Rate Request Response",
					fmt.Sprintf("Your rate request %s has received a response", r.refNo))}
			},
		},
		{
			Name: TransitionComplete,
			From: []workflow.State{StatusProcessing.State()},
			To:   StatusCompleted.State(),
			Effects: func(entity any, _ workflow.TransitionContext) []workflow.Effect {
				r := entity.(*RateRequest)
				return []workflow.Effect{workflow.NotifyUser(r.salespersonID,
					"Rate Request Completed",
					fmt.Sprintf("Your rate request %s has been completed", r.refNo))}
			},
		},
		{
			Name:  TransitionReject,
			From:  []workflow.State{StatusPending.State(), StatusProcessing.State()},
			To:    StatusRejected.State(),
			Guard: guardReject,
			Effects: func(entity any, tc workflow.TransitionContext) []workflow.Effect {
				r := entity.(*RateRequest)
				payload := tc.Payload.(RejectPayload)
				return []workflow.Effect{workflow.NotifyUser(r.salespersonID,
					"Rate Request Rejected",
					fmt.Sprintf("Your rate request %s has been rejected. Reason: %s", r.refNo, payload.Remark))}
			},
		},
	},
}

func guardRespond(entity any, tc workflow.TransitionContext) error {
	r := entity.(*RateRequest)
	payload, ok := tc.Payload.(RespondPayload)
	if !ok {
		return errs.NewGuardViolationError(string(TransitionRespond), "response payload is required")
	}

	if r.vesselRequired && (payload.VesselName == "" || payload.ETA == nil || payload.ETD == nil) {
		return errs.NewGuardViolationError(string(TransitionRespond),
			"vessel details are required for this request")
	}
	return nil
}

func guardReject(_ any, tc workflow.TransitionContext) error {
	payload, ok := tc.Payload.(RejectPayload)
	if !ok || payload.Remark == "" {
		return errs.NewGuardViolationError(string(TransitionReject), "rejection remark is required")
	}
	return nil
}
