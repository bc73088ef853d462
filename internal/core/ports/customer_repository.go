package ports

import (
	"context"

	"freightflow/internal/core/domain/model/customer"
	"freightflow/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer
// aggregates. Updates are compare-and-swap writes on the aggregate version.
type CustomerRepository interface {
	// Add persists a new customer aggregate to storage.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
}
