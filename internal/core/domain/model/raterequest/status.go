package raterequest

import (
	"fmt"

	"freightflow/internal/core/domain/model/workflow"
	"freightflow/internal/pkg/errs"
)

// Status represents the lifecycle state of a rate request.
//
// State transitions:
//
//	PENDING ──respond──> PROCESSING ──complete──> COMPLETED
//	   │                     │
//	   └──────reject─────────┴──────────> REJECTED
type Status string

const (
	// StatusPending is the initial status; the pricing team has not
	// responded yet.
	StatusPending Status = "PENDING"

	// StatusProcessing indicates at least one pricing response exists.
	StatusProcessing Status = "PROCESSING"

	// StatusCompleted is a terminal status; pricing work is finished.
	StatusCompleted Status = "COMPLETED"

	// StatusRejected is a terminal status; the request was refused.
	StatusRejected Status = "REJECTED"
)

// Validate checks that the status is one of the defined values.
func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusRejected:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid rate request status", string(s)))
}

// String returns the status name.
func (s Status) String() string {
	return string(s)
}

// State adapts the status to the generic workflow state type.
func (s Status) State() workflow.State {
	return workflow.State(s)
}
