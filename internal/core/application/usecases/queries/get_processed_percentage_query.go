package queries

import (
	"errors"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/guard"
)

var ErrGetProcessedPercentageQueryIsNotConstructed = errors.New(
	"GetProcessedPercentageQuery must be created via NewGetProcessedPercentageQuery constructor",
)

// GetProcessedPercentageQuery computes the processed percentage of one
// rate request.
type GetProcessedPercentageQuery struct {
	rateRequestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProcessedPercentageQuery creates a processed-percentage query.
func NewGetProcessedPercentageQuery(rateRequestID kernel.UUID) (GetProcessedPercentageQuery, error) {
	if err := rateRequestID.Validate(); err != nil {
		return GetProcessedPercentageQuery{}, err
	}

	return GetProcessedPercentageQuery{
		rateRequestID: rateRequestID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProcessedPercentageQuery) Validate() error {
	return q.guard.Validate(ErrGetProcessedPercentageQueryIsNotConstructed)
}

// RateRequestID returns the measured rate request.
func (q GetProcessedPercentageQuery) RateRequestID() kernel.UUID { return q.rateRequestID }
