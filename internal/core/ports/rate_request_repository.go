// Package ports defines repository and gateway interfaces for the freight
// workflow domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/raterequest"
)

// RateRequestRepository defines the persistence contract for rate request
// aggregates. Updates are compare-and-swap writes on the aggregate version;
// a concurrent modification surfaces as errs.ErrStateConflict.
type RateRequestRepository interface {
	// Add persists a new rate request aggregate to storage.
	Add(ctx context.Context, aggregate *raterequest.RateRequest) error

	// Update persists changes to an existing rate request. The write is
	// conditional on the version the aggregate was restored with.
	Update(ctx context.Context, aggregate *raterequest.RateRequest) error

	// Get retrieves a rate request with its responses and quotes.
	Get(ctx context.Context, id kernel.UUID) (*raterequest.RateRequest, error)

	// GetForUpdate retrieves a rate request holding a row lock on the
	// aggregate root until the surrounding transaction ends. Used to
	// serialize quote selection.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*raterequest.RateRequest, error)

	// ReplaceSelectedQuote clears the selected flag on every quote of the
	// rate request and inserts quote as the single selected one.
	ReplaceSelectedQuote(ctx context.Context, rateRequestID kernel.UUID, quote *raterequest.LineQuote) error
}
