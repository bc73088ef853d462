package ports

import (
	"context"

	"freightflow/internal/core/domain/model/itinerary"
	"freightflow/internal/core/domain/model/kernel"
)

// ItineraryRepository defines the persistence contract for itinerary
// aggregates. Updates are compare-and-swap writes on the aggregate version.
type ItineraryRepository interface {
	// Add persists a new itinerary aggregate to storage.
	Add(ctx context.Context, aggregate *itinerary.Itinerary) error

	// Update persists changes to an existing itinerary and its items.
	Update(ctx context.Context, aggregate *itinerary.Itinerary) error

	// Get retrieves an itinerary with its items.
	Get(ctx context.Context, id kernel.UUID) (*itinerary.Itinerary, error)
}
