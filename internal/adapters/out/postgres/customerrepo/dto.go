// Package customerrepo provides data transfer objects and mapping functions
// for customer persistence.
package customerrepo

import (
	"time"

	"github.com/google/uuid"

	"freightflow/internal/core/domain/model/customer"
	"freightflow/internal/core/domain/model/kernel"
)

// CustomerDTO represents the database structure for persisting customer
// aggregates.
type CustomerDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyName   string
	ContactPerson string
	Email         string
	Phone         string
	CreatedByID   uuid.UUID  `gorm:"type:uuid;index"`
	Status        string     `gorm:"index"`
	ApprovedByID  *uuid.UUID `gorm:"type:uuid"`
	DecidedAt     *time.Time
	Version       int
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer aggregate to its database representation.
func fromDomain(aggregate *customer.Customer) CustomerDTO {
	var approvedByID *uuid.UUID
	if id := aggregate.ApprovedBy(); id != nil {
		raw := id.Bytes()
		approvedByID = &raw
	}

	return CustomerDTO{
		ID:            aggregate.ID().Bytes(),
		CompanyName:   aggregate.CompanyName(),
		ContactPerson: aggregate.ContactPerson(),
		Email:         aggregate.Email(),
		Phone:         aggregate.Phone(),
		CreatedByID:   aggregate.CreatedBy().Bytes(),
		Status:        aggregate.ApprovalStatus().String(),
		ApprovedByID:  approvedByID,
		DecidedAt:     aggregate.DecidedAt(),
		Version:       aggregate.Version(),
	}
}

// toDomain converts a database DTO to a customer aggregate.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	createdByID, err := kernel.UUIDFromBytes(dto.CreatedByID[:])
	if err != nil {
		return nil, err
	}

	var approvedByID *kernel.UUID
	if dto.ApprovedByID != nil {
		aID, approverErr := kernel.UUIDFromBytes((*dto.ApprovedByID)[:])
		if approverErr != nil {
			return nil, approverErr
		}
		approvedByID = &aID
	}

	return customer.RestoreCustomer(
		id,
		dto.CompanyName, dto.ContactPerson, dto.Email, dto.Phone,
		createdByID,
		customer.ApprovalStatus(dto.Status),
		approvedByID,
		dto.DecidedAt,
		dto.Version,
	)
}
