package ports

import (
	"context"

	"freightflow/internal/core/domain/model/booking"
	"freightflow/internal/core/domain/model/kernel"
)

// BookingRequestRepository defines the persistence contract for booking
// request aggregates. Updates are compare-and-swap writes on the aggregate
// version.
type BookingRequestRepository interface {
	// Add persists a new booking request aggregate to storage.
	Add(ctx context.Context, aggregate *booking.BookingRequest) error

	// Update persists changes to an existing booking request, including
	// newly attached RO documents, jobs and job completions.
	Update(ctx context.Context, aggregate *booking.BookingRequest) error

	// Get retrieves a booking request with its documents and jobs.
	Get(ctx context.Context, id kernel.UUID) (*booking.BookingRequest, error)
}
