package booking

import (
	"fmt"

	"freightflow/internal/core/domain/model/workflow"
	"freightflow/internal/pkg/errs"
)

// Status represents the lifecycle state of a booking request.
//
// State transitions:
//
//	PENDING ──confirm──> CONFIRMED
//	   │                     │
//	   └──────cancel─────────┴──> CANCELLED
type Status string

const (
	// StatusPending is the initial status of a raised booking.
	StatusPending Status = "PENDING"

	// StatusConfirmed means operations accepted the booking.
	StatusConfirmed Status = "CONFIRMED"

	// StatusCancelled is terminal; a cancel reason is always recorded.
	StatusCancelled Status = "CANCELLED"
)

// Validate checks that the status is one of the defined values.
func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid booking request status", string(s)))
}

// String returns the status name.
func (s Status) String() string {
	return string(s)
}

// State adapts the status to the generic workflow state type.
func (s Status) State() workflow.State {
	return workflow.State(s)
}
