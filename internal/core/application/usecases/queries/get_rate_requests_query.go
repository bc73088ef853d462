package queries

import (
	"errors"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/guard"
)

var ErrGetRateRequestsQueryIsNotConstructed = errors.New(
	"GetRateRequestsQuery must be created via NewGetRateRequestsQuery constructor",
)

// GetRateRequestsQuery retrieves the rate request worklist, optionally
// filtered by status or owning salesperson.
type GetRateRequestsQuery struct {
	status        string
	salespersonID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRateRequestsQuery creates a worklist query. Empty status and nil
// salesperson mean no filter.
func NewGetRateRequestsQuery(status string, salespersonID *kernel.UUID) (GetRateRequestsQuery, error) {
	if salespersonID != nil {
		if err := salespersonID.Validate(); err != nil {
			return GetRateRequestsQuery{}, err
		}
	}

	return GetRateRequestsQuery{
		status:        status,
		salespersonID: salespersonID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRateRequestsQuery) Validate() error {
	return q.guard.Validate(ErrGetRateRequestsQueryIsNotConstructed)
}

// Status returns the status filter, empty meaning all.
func (q GetRateRequestsQuery) Status() string { return q.status }

// Salesperson returns the owner filter, nil meaning all.
func (q GetRateRequestsQuery) Salesperson() *kernel.UUID { return q.salespersonID }

// GetRateRequestsQueryResponse is one worklist row. ResponseCount lets
// list views show pricing progress without loading the aggregate.
type GetRateRequestsQueryResponse struct {
	ID            kernel.UUID
	RefNo         string
	Mode          string
	Type          string
	Status        string
	ResponseCount int
}
