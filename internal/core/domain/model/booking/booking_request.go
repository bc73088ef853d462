// Package booking contains the booking request aggregate: a booking raised
// against a priced rate, confirmed or cancelled by operations, owning its
// release-order documents and ERP jobs.
package booking

import (
	"errors"
	"fmt"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/workflow"
	"freightflow/internal/pkg/errs"
)

// RateSource discriminates where the booking's rate came from.
type RateSource string

const (
	// RateSourcePredefined references a predefined tariff rate.
	RateSourcePredefined RateSource = "PREDEFINED"
	// RateSourceQuote references a rate request line quote.
	RateSourceQuote RateSource = "QUOTE"
)

// Transition names of the booking request lifecycle.
const (
	TransitionConfirm workflow.TransitionName = "confirm"
	TransitionCancel  workflow.TransitionName = "cancel"
)

// ConfirmPayload carries the data for the "confirm" transition.
// ValidityCheck is the pluggable quote-validity hook, injected by the
// composition root; nil means permissive. OverrideValidity bypasses the
// check explicitly.
type ConfirmPayload struct {
	OverrideValidity bool
	ValidityCheck    func(*BookingRequest) error
}

// CancelPayload carries the data for the "cancel" transition.
type CancelPayload struct {
	Reason string
}

// ErrBookingRequestIsNotConstructed is returned when a BookingRequest was
// not created through NewBookingRequest or RestoreBookingRequest.
var ErrBookingRequestIsNotConstructed = errors.New(
	"BookingRequest must be created via NewBookingRequest or RestoreBookingRequest")

// BookingRequest is the aggregate root for the booking lifecycle.
type BookingRequest struct {
	id           kernel.UUID
	customerID   kernel.UUID
	rateSource   RateSource
	rateRefID    kernel.UUID
	raisedByID   kernel.UUID
	status       Status
	cancelReason string
	version      int
	roDocs       []RoDocument
	jobs         []*Job

	isConstructed bool
}

// NewBookingRequest raises a booking in PENDING status against a rate
// source (a predefined rate or a rate request quote).
func NewBookingRequest(id, customerID kernel.UUID, rateSource RateSource, rateRefID, raisedByID kernel.UUID) (*BookingRequest, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		rateRefID.Validate(),
		raisedByID.Validate(),
	); err != nil {
		return nil, err
	}
	if rateSource != RateSourcePredefined && rateSource != RateSourceQuote {
		return nil, errs.NewValueIsInvalidError("rateSource")
	}

	return &BookingRequest{
		id:            id,
		customerID:    customerID,
		rateSource:    rateSource,
		rateRefID:     rateRefID,
		raisedByID:    raisedByID,
		status:        StatusPending,
		isConstructed: true,
	}, nil
}

// RestoreBookingRequest reconstructs a booking request from persistence.
func RestoreBookingRequest(
	id, customerID kernel.UUID,
	rateSource RateSource,
	rateRefID, raisedByID kernel.UUID,
	status Status,
	cancelReason string,
	version int,
	roDocs []RoDocument,
	jobs []*Job,
) (*BookingRequest, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &BookingRequest{
		id:            id,
		customerID:    customerID,
		rateSource:    rateSource,
		rateRefID:     rateRefID,
		raisedByID:    raisedByID,
		status:        status,
		cancelReason:  cancelReason,
		version:       version,
		roDocs:        roDocs,
		jobs:          jobs,
		isConstructed: true,
	}, nil
}

// Validate ensures the aggregate was properly constructed.
func (b *BookingRequest) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBookingRequestIsNotConstructed
	}
	return nil
}

// ID returns the booking request identifier.
func (b *BookingRequest) ID() kernel.UUID { return b.id }

// Customer returns the booked customer.
func (b *BookingRequest) Customer() kernel.UUID { return b.customerID }

// RateSource returns the rate source discriminator.
func (b *BookingRequest) RateSource() RateSource { return b.rateSource }

// RateRef returns the referenced rate or quote identifier.
func (b *BookingRequest) RateRef() kernel.UUID { return b.rateRefID }

// RaisedBy returns who raised the booking.
func (b *BookingRequest) RaisedBy() kernel.UUID { return b.raisedByID }

// Status returns the current lifecycle status.
func (b *BookingRequest) Status() Status { return b.status }

// CancelReason returns the recorded reason; empty unless cancelled.
func (b *BookingRequest) CancelReason() string { return b.cancelReason }

// Version returns the optimistic-concurrency token read from the store.
func (b *BookingRequest) Version() int { return b.version }

// RoDocuments returns the attached release orders.
func (b *BookingRequest) RoDocuments() []RoDocument { return b.roDocs }

// Jobs returns the ERP jobs opened against the booking.
func (b *BookingRequest) Jobs() []*Job { return b.jobs }

// State adapts the status to the generic workflow state type.
func (b *BookingRequest) State() workflow.State { return b.status.State() }

// AddRoDocument attaches a release order to the booking.
func (b *BookingRequest) AddRoDocument(doc RoDocument) {
	b.roDocs = append(b.roDocs, doc)
}

// OpenJob records a newly opened ERP job on the booking.
func (b *BookingRequest) OpenJob(job *Job) {
	b.jobs = append(b.jobs, job)
}

// Job finds an owned job by ID.
func (b *BookingRequest) Job(id kernel.UUID) (*Job, error) {
	for _, job := range b.jobs {
		if job.ID().IsEqual(id) {
			return job, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("job", id.String())
}

// ApplyTransition validates and applies a lifecycle transition, returning
// the notification effects to dispatch.
func (b *BookingRequest) ApplyTransition(name workflow.TransitionName, tc workflow.TransitionContext) ([]workflow.Effect, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	edge, err := lifecycle.Apply(b.State(), name, b, tc)
	if err != nil {
		return nil, err
	}

	if name == TransitionCancel {
		b.cancelReason = tc.Payload.(CancelPayload).Reason
	}

	b.status = Status(edge.To)

	if edge.Effects == nil {
		return nil, nil
	}
	return edge.Effects(b, tc), nil
}

// lifecycle is the booking request state graph. Cancel is legal from any
// non-cancelled state.
var lifecycle = workflow.Definition{
	Entity: workflow.EntityBookingRequest,
	Edges: []workflow.Edge{
		{
			Name:  TransitionConfirm,
			From:  []workflow.State{StatusPending.State()},
			To:    StatusConfirmed.State(),
			Guard: guardConfirm,
			Effects: func(entity any, _ workflow.TransitionContext) []workflow.Effect {
				b := entity.(*BookingRequest)
				return []workflow.Effect{workflow.NotifyUser(b.raisedByID,
					"Booking Confirmed",
					fmt.Sprintf("Booking request %s has been confirmed", b.id))}
			},
		},
		{
			Name:  TransitionCancel,
			From:  []workflow.State{StatusPending.State(), StatusConfirmed.State()},
			To:    StatusCancelled.State(),
			Guard: guardCancel,
			Effects: func(entity any, tc workflow.TransitionContext) []workflow.Effect {
				b := entity.(*BookingRequest)
				payload := tc.Payload.(CancelPayload)
				return []workflow.Effect{workflow.NotifyUser(b.raisedByID,
					"Booking Cancelled",
					fmt.Sprintf("Booking request %s has been cancelled. Reason: %s", b.id, payload.Reason))}
			},
		},
	},
}

func guardConfirm(entity any, tc workflow.TransitionContext) error {
	payload, ok := tc.Payload.(ConfirmPayload)
	if !ok {
		payload = ConfirmPayload{}
	}

	if payload.OverrideValidity || payload.ValidityCheck == nil {
		return nil
	}

	if err := payload.ValidityCheck(entity.(*BookingRequest)); err != nil {
		return errs.NewGuardViolationErrorWithCause(string(TransitionConfirm),
			"quote validity check failed", err)
	}
	return nil
}

func guardCancel(_ any, tc workflow.TransitionContext) error {
	payload, ok := tc.Payload.(CancelPayload)
	if !ok || payload.Reason == "" {
		return errs.NewGuardViolationError(string(TransitionCancel), "cancel reason is required")
	}
	return nil
}
