// Package services holds stateless domain services that do not belong to a
// single aggregate.
package services

import (
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/raterequest"
)

// ProcessedPercentage computes how far pricing has progressed on a rate
// request. The measure is binary: 100 once the request can be considered
// answered, 0 otherwise.
//
// When the requester named a preferred carrier line, only a response from
// that line counts as answered. Without a preference, any response counts.
func ProcessedPercentage(preferredLineID *kernel.UUID, responses []raterequest.Response) int {
	if len(responses) == 0 {
		return 0
	}
	if preferredLineID == nil {
		return 100
	}
	for _, r := range responses {
		if r.Line() != nil && r.Line().IsEqual(*preferredLineID) {
			return 100
		}
	}
	return 0
}
