// Package customer contains the customer aggregate and its approval
// lifecycle: created PENDING, then approved or rejected once. Approved
// customers refuse routine edits.
package customer

import (
	"errors"
	"fmt"
	"time"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/workflow"
	"freightflow/internal/pkg/errs"
)

// ApprovalStatus represents the customer approval state.
type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "PENDING"
	StatusApproved ApprovalStatus = "APPROVED"
	StatusRejected ApprovalStatus = "REJECTED"
)

// Validate checks that the status is one of the defined values.
func (s ApprovalStatus) Validate() error {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("approvalStatus",
		fmt.Errorf("%q is not a valid customer approval status", string(s)))
}

// String returns the status name.
func (s ApprovalStatus) String() string { return string(s) }

// State adapts the status to the generic workflow state type.
func (s ApprovalStatus) State() workflow.State { return workflow.State(s) }

// Transition names of the customer approval lifecycle.
const (
	TransitionApprove workflow.TransitionName = "approve"
	TransitionReject  workflow.TransitionName = "reject"
)

// ErrCustomerIsNotConstructed is returned when a Customer was not created
// through NewCustomer or RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New(
	"Customer must be created via NewCustomer or RestoreCustomer")

// Customer is the aggregate root for the customer approval lifecycle.
type Customer struct {
	id            kernel.UUID
	companyName   string
	contactPerson string
	email         string
	phone         string
	createdByID   kernel.UUID
	status        ApprovalStatus
	approvedByID  *kernel.UUID
	decidedAt     *time.Time
	version       int

	isConstructed bool
}

// NewCustomer registers a customer in PENDING approval status.
func NewCustomer(id kernel.UUID, companyName, contactPerson, email, phone string, createdByID kernel.UUID) (*Customer, error) {
	if err := errors.Join(id.Validate(), createdByID.Validate()); err != nil {
		return nil, err
	}
	if companyName == "" {
		return nil, errs.NewValueIsRequiredError("companyName")
	}

	return &Customer{
		id:            id,
		companyName:   companyName,
		contactPerson: contactPerson,
		email:         email,
		phone:         phone,
		createdByID:   createdByID,
		status:        StatusPending,
		isConstructed: true,
	}, nil
}

// RestoreCustomer reconstructs a customer from persistence.
func RestoreCustomer(
	id kernel.UUID,
	companyName, contactPerson, email, phone string,
	createdByID kernel.UUID,
	status ApprovalStatus,
	approvedByID *kernel.UUID,
	decidedAt *time.Time,
	version int,
) (*Customer, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Customer{
		id:            id,
		companyName:   companyName,
		contactPerson: contactPerson,
		email:         email,
		phone:         phone,
		createdByID:   createdByID,
		status:        status,
		approvedByID:  approvedByID,
		decidedAt:     decidedAt,
		version:       version,
		isConstructed: true,
	}, nil
}

// Validate ensures the aggregate was properly constructed.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer identifier.
func (c *Customer) ID() kernel.UUID { return c.id }

// CompanyName returns the company name.
func (c *Customer) CompanyName() string { return c.companyName }

// ContactPerson returns the contact person.
func (c *Customer) ContactPerson() string { return c.contactPerson }

// Email returns the contact email.
func (c *Customer) Email() string { return c.email }

// Phone returns the contact phone.
func (c *Customer) Phone() string { return c.phone }

// CreatedBy returns who registered the customer.
func (c *Customer) CreatedBy() kernel.UUID { return c.createdByID }

// ApprovalStatus returns the current approval status.
func (c *Customer) ApprovalStatus() ApprovalStatus { return c.status }

// ApprovedBy returns the deciding user, nil until decided.
func (c *Customer) ApprovedBy() *kernel.UUID { return c.approvedByID }

// DecidedAt returns when the decision was made, nil until decided.
func (c *Customer) DecidedAt() *time.Time { return c.decidedAt }

// Version returns the optimistic-concurrency token read from the store.
func (c *Customer) Version() int { return c.version }

// State adapts the status to the generic workflow state type.
func (c *Customer) State() workflow.State { return c.status.State() }

// UpdateDetails applies routine edits. Approved customers are immutable to
// routine edits and refuse the update.
func (c *Customer) UpdateDetails(companyName, contactPerson, email, phone string) error {
	if c.status == StatusApproved {
		return errs.NewGuardViolationError("update", "cannot update approved customer")
	}
	if companyName == "" {
		return errs.NewValueIsRequiredError("companyName")
	}

	c.companyName = companyName
	c.contactPerson = contactPerson
	c.email = email
	c.phone = phone
	return nil
}

// ApplyTransition validates and applies an approval transition, returning
// the notification effects to dispatch.
func (c *Customer) ApplyTransition(name workflow.TransitionName, tc workflow.TransitionContext) ([]workflow.Effect, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	edge, err := lifecycle.Apply(c.State(), name, c, tc)
	if err != nil {
		return nil, err
	}

	actorID := tc.Actor.ID
	now := time.Now()
	c.approvedByID = &actorID
	c.decidedAt = &now
	c.status = ApprovalStatus(edge.To)

	if edge.Effects == nil {
		return nil, nil
	}
	return edge.Effects(c, tc), nil
}

// lifecycle is the customer approval state graph.
var lifecycle = workflow.Definition{
	Entity: workflow.EntityCustomer,
	Edges: []workflow.Edge{
		{
			Name: TransitionApprove,
			From: []workflow.State{StatusPending.State()},
			To:   StatusApproved.State(),
			Effects: func(entity any, _ workflow.TransitionContext) []workflow.Effect {
				c := entity.(*Customer)
				return []workflow.Effect{workflow.NotifyUser(c.createdByID,
					"Customer Approved",
					fmt.Sprintf("Customer %s has been approved", c.companyName))}
			},
		},
		{
			Name: TransitionReject,
			From: []workflow.State{StatusPending.State()},
			To:   StatusRejected.State(),
			Effects: func(entity any, _ workflow.TransitionContext) []workflow.Effect {
				c := entity.(*Customer)
				return []workflow.Effect{workflow.NotifyUser(c.createdByID,
					"Customer Rejected",
					fmt.Sprintf("Customer %s has been rejected", c.companyName))}
			},
		},
	},
}
