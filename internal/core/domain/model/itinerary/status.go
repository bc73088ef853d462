package itinerary

import (
	"fmt"

	"freightflow/internal/core/domain/model/workflow"
	"freightflow/internal/pkg/errs"
)

// Status represents the lifecycle state of an itinerary.
//
// State transitions:
//
//	DRAFT ──submit──> SUBMITTED ──approve──> APPROVED
//	                      │
//	                      └───reject───> REJECTED
type Status string

const (
	// StatusDraft is the initial status while the owner edits the plan.
	StatusDraft Status = "DRAFT"

	// StatusSubmitted means the plan awaits the SBU head's decision.
	StatusSubmitted Status = "SUBMITTED"

	// StatusApproved is terminal; the approver and note are recorded.
	StatusApproved Status = "APPROVED"

	// StatusRejected is terminal; the approver and note are recorded.
	StatusRejected Status = "REJECTED"
)

// Validate checks that the status is one of the defined values.
func (s Status) Validate() error {
	switch s {
	case StatusDraft, StatusSubmitted, StatusApproved, StatusRejected:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid itinerary status", string(s)))
}

// String returns the status name.
func (s Status) String() string {
	return string(s)
}

// State adapts the status to the generic workflow state type.
func (s Status) State() workflow.State {
	return workflow.State(s)
}
