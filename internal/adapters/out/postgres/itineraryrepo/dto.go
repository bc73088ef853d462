// Package itineraryrepo provides data transfer objects and mapping functions
// for itinerary persistence.
package itineraryrepo

import (
	"time"

	"github.com/google/uuid"

	"freightflow/internal/core/domain/model/itinerary"
	"freightflow/internal/core/domain/model/kernel"
)

// ItineraryDTO represents the database structure for persisting itinerary
// aggregates.
type ItineraryDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID  `gorm:"type:uuid;index"`
	OwnerSBUID  *uuid.UUID `gorm:"type:uuid;index"`
	Type        string
	WeekStart   time.Time
	Status      string     `gorm:"index"`
	ApproverID  *uuid.UUID `gorm:"type:uuid"`
	ApproveNote string
	SubmittedAt *time.Time
	DecidedAt   *time.Time
	Version     int
}

// TableName specifies the database table name for itinerary entities.
func (ItineraryDTO) TableName() string {
	return "itineraries"
}

// ItemDTO represents a planned visit within an itinerary.
type ItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItineraryID uuid.UUID `gorm:"type:uuid;index"`
	Seq         int
	CustomerID  *uuid.UUID `gorm:"type:uuid"`
	LeadID      *uuid.UUID `gorm:"type:uuid"`
	Purpose     string
	PlannedDate time.Time
}

// TableName specifies the database table name for itinerary item entities.
func (ItemDTO) TableName() string {
	return "itinerary_items"
}

// fromDomain converts an itinerary aggregate to its database representation.
func fromDomain(aggregate *itinerary.Itinerary) ItineraryDTO {
	return ItineraryDTO{
		ID:          aggregate.ID().Bytes(),
		OwnerID:     aggregate.Owner().Bytes(),
		OwnerSBUID:  optionalUUID(aggregate.OwnerSBU()),
		Type:        string(aggregate.Type()),
		WeekStart:   aggregate.WeekStart(),
		Status:      aggregate.Status().String(),
		ApproverID:  optionalUUID(aggregate.Approver()),
		ApproveNote: aggregate.ApproveNote(),
		SubmittedAt: aggregate.SubmittedAt(),
		DecidedAt:   aggregate.DecidedAt(),
		Version:     aggregate.Version(),
	}
}

// itemFromDomain converts an itinerary item to its database representation.
func itemFromDomain(itineraryID kernel.UUID, item itinerary.Item) ItemDTO {
	return ItemDTO{
		ID:          item.ID().Bytes(),
		ItineraryID: itineraryID.Bytes(),
		Seq:         item.Seq(),
		CustomerID:  optionalUUID(item.Customer()),
		LeadID:      optionalUUID(item.Lead()),
		Purpose:     item.Purpose(),
		PlannedDate: item.PlannedDate(),
	}
}

// toDomain converts database DTOs to an itinerary aggregate.
func toDomain(dto ItineraryDTO, itemDTOs []ItemDTO) (*itinerary.Itinerary, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	ownerSBUID, err := optionalDomainUUID(dto.OwnerSBUID)
	if err != nil {
		return nil, err
	}

	approverID, err := optionalDomainUUID(dto.ApproverID)
	if err != nil {
		return nil, err
	}

	items := make([]itinerary.Item, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return itinerary.RestoreItinerary(
		id, ownerID,
		ownerSBUID,
		itinerary.Type(dto.Type),
		dto.WeekStart,
		itinerary.Status(dto.Status),
		approverID,
		dto.ApproveNote,
		dto.SubmittedAt, dto.DecidedAt,
		dto.Version,
		items,
	)
}

// itemToDomain converts an item DTO to its domain representation.
func itemToDomain(dto ItemDTO) (itinerary.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return itinerary.Item{}, err
	}

	customerID, err := optionalDomainUUID(dto.CustomerID)
	if err != nil {
		return itinerary.Item{}, err
	}

	leadID, err := optionalDomainUUID(dto.LeadID)
	if err != nil {
		return itinerary.Item{}, err
	}

	return itinerary.RestoreItem(id, dto.Seq, customerID, leadID, dto.Purpose, dto.PlannedDate)
}

func optionalUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalDomainUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
