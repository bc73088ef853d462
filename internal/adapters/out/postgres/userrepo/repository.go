package userrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/user"
	"freightflow/internal/pkg/errs"
)

// GormUserRepository implements UserRepository using GORM. The repository is
// read-only; user accounts are managed outside this service.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Get retrieves a user by ID.
func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveByRole retrieves every active user holding the given role.
func (r *GormUserRepository) GetActiveByRole(ctx context.Context, role user.Role) ([]*user.User, error) {
	var dtos []UserDTO
	if err := r.db.WithContext(ctx).
		Find(&dtos, "role = ? AND status = ?", string(role), string(user.StatusActive)).Error; err != nil {
		return nil, err
	}

	return usersToDomain(dtos)
}

// GetPricingTeamByTradeLane retrieves the active pricing users assigned to a
// trade lane.
func (r *GormUserRepository) GetPricingTeamByTradeLane(ctx context.Context, tradeLaneID kernel.UUID) ([]*user.User, error) {
	if err := tradeLaneID.Validate(); err != nil {
		return nil, err
	}

	var dtos []UserDTO
	if err := r.db.WithContext(ctx).
		Joins("JOIN user_trade_lanes ON user_trade_lanes.user_id = users.id").
		Where("user_trade_lanes.trade_lane_id = ? AND users.status = ?",
			tradeLaneID.Bytes(), string(user.StatusActive)).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return usersToDomain(dtos)
}

func usersToDomain(dtos []UserDTO) ([]*user.User, error) {
	users := make([]*user.User, 0, len(dtos))
	for _, dto := range dtos {
		u, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, nil
}
