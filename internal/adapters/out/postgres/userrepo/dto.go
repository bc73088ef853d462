// Package userrepo provides read-only access to the user table and the
// pricing team trade lane assignments used for notification fan-out.
package userrepo

import (
	"github.com/google/uuid"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/user"
)

// UserDTO represents the database structure of an application user.
type UserDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string
	Email  string
	Phone  string
	Role   string     `gorm:"index"`
	Status string     `gorm:"index"`
	SbuID  *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// TradeLaneAssignmentDTO links a pricing user to a trade lane. Group
// notifications for a trade lane fan out to its assigned users.
type TradeLaneAssignmentDTO struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	TradeLaneID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

// TableName specifies the database table name for trade lane assignments.
func (TradeLaneAssignmentDTO) TableName() string {
	return "user_trade_lanes"
}

// toDomain converts a database DTO to a user read model.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var sbuID *kernel.UUID
	if dto.SbuID != nil {
		sID, sbuErr := kernel.UUIDFromBytes((*dto.SbuID)[:])
		if sbuErr != nil {
			return nil, sbuErr
		}
		sbuID = &sID
	}

	return user.RestoreUser(id, dto.Name, dto.Email, dto.Phone,
		user.Role(dto.Role), user.Status(dto.Status), sbuID)
}
