package ports

import (
	"context"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/user"
)

// UserRepository defines the read contract for users. The workflow treats
// users as a read model; account management lives outside this service.
type UserRepository interface {
	// Get retrieves a user by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetActiveByRole retrieves every active user holding the given role.
	// Used for role fan-out notifications.
	GetActiveByRole(ctx context.Context, role user.Role) ([]*user.User, error)

	// GetPricingTeamByTradeLane retrieves the active pricing users assigned
	// to a trade lane. Used for group fan-out notifications.
	GetPricingTeamByTradeLane(ctx context.Context, tradeLaneID kernel.UUID) ([]*user.User, error)
}
