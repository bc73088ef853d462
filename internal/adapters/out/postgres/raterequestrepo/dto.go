// Package raterequestrepo provides data transfer objects and mapping functions
// for rate request persistence. This package implements the repository pattern
// for the rate request aggregate, handling the conversion between domain
// entities and database representations.
package raterequestrepo

import (
	"time"

	"github.com/google/uuid"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/raterequest"
)

// RateRequestDTO represents the database structure for persisting rate
// request aggregates. The version column carries the optimistic concurrency
// token checked on every update.
type RateRequestDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	RefNo           string    `gorm:"uniqueIndex"`
	Mode            string    `gorm:"index"`
	Type            string
	PolID           uuid.UUID  `gorm:"type:uuid"`
	PodID           uuid.UUID  `gorm:"type:uuid"`
	EquipTypeID     uuid.UUID  `gorm:"type:uuid"`
	PreferredLineID *uuid.UUID `gorm:"type:uuid"`
	Weight          float64
	CargoReadyDate  time.Time
	VesselRequired  bool
	SpecialNotes    string
	SalespersonID   uuid.UUID  `gorm:"type:uuid;index"`
	CustomerID      *uuid.UUID `gorm:"type:uuid"`
	Status          string     `gorm:"index"`
	Version         int
	CreatedAt       time.Time `gorm:"index"`
}

// TableName specifies the database table name for rate request entities.
func (RateRequestDTO) TableName() string {
	return "rate_requests"
}

// ResponseDTO represents a pricing response line attached to a rate request.
// Response rows are immutable once written.
type ResponseDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	RateRequestID uuid.UUID `gorm:"type:uuid;index"`
	LineNo        int
	LineID        *uuid.UUID `gorm:"type:uuid"`
	EquipTypeID   *uuid.UUID `gorm:"type:uuid"`
	VesselName    string
	ETA           *time.Time
	ETD           *time.Time
	FclCutoff     *time.Time
	DocCutoff     *time.Time
	ValidTo       time.Time
	ChargesJSON   []byte `gorm:"type:jsonb"`
}

// TableName specifies the database table name for response entities.
func (ResponseDTO) TableName() string {
	return "rate_request_responses"
}

// LineQuoteDTO represents a carrier quote for a rate request. At most one
// row per rate request carries selected = true; the repository enforces this
// inside ReplaceSelectedQuote.
type LineQuoteDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	RateRequestID uuid.UUID `gorm:"type:uuid;index"`
	LineID        uuid.UUID `gorm:"type:uuid"`
	TermsJSON     []byte    `gorm:"type:jsonb"`
	ValidTo       time.Time
	Selected      bool
}

// TableName specifies the database table name for line quote entities.
func (LineQuoteDTO) TableName() string {
	return "rate_request_line_quotes"
}

// fromDomain converts a rate request aggregate to its database representation.
func fromDomain(aggregate *raterequest.RateRequest) RateRequestDTO {
	return RateRequestDTO{
		ID:              aggregate.ID().Bytes(),
		RefNo:           aggregate.RefNo().String(),
		Mode:            string(aggregate.Mode()),
		Type:            string(aggregate.Type()),
		PolID:           aggregate.POL().Bytes(),
		PodID:           aggregate.POD().Bytes(),
		EquipTypeID:     aggregate.EquipType().Bytes(),
		PreferredLineID: optionalUUID(aggregate.PreferredLine()),
		Weight:          aggregate.Weight(),
		CargoReadyDate:  aggregate.CargoReadyDate(),
		VesselRequired:  aggregate.VesselRequired(),
		SpecialNotes:    aggregate.SpecialNotes(),
		SalespersonID:   aggregate.Salesperson().Bytes(),
		CustomerID:      optionalUUID(aggregate.Customer()),
		Status:          aggregate.Status().String(),
		Version:         aggregate.Version(),
	}
}

// responseFromDomain converts a response to its database representation.
func responseFromDomain(rateRequestID kernel.UUID, r raterequest.Response) ResponseDTO {
	return ResponseDTO{
		ID:            r.ID().Bytes(),
		RateRequestID: rateRequestID.Bytes(),
		LineNo:        r.LineNo(),
		LineID:        optionalUUID(r.Line()),
		EquipTypeID:   optionalUUID(r.EquipType()),
		VesselName:    r.VesselName(),
		ETA:           r.ETA(),
		ETD:           r.ETD(),
		FclCutoff:     r.FclCutoff(),
		DocCutoff:     r.DocCutoff(),
		ValidTo:       r.ValidTo(),
		ChargesJSON:   r.ChargesJSON(),
	}
}

// quoteFromDomain converts a line quote to its database representation.
func quoteFromDomain(q *raterequest.LineQuote) LineQuoteDTO {
	return LineQuoteDTO{
		ID:            q.ID().Bytes(),
		RateRequestID: q.RateRequest().Bytes(),
		LineID:        q.Line().Bytes(),
		TermsJSON:     q.TermsJSON(),
		ValidTo:       q.ValidTo(),
		Selected:      q.Selected(),
	}
}

// toDomain converts database DTOs to a rate request aggregate.
func toDomain(dto RateRequestDTO, responseDTOs []ResponseDTO, quoteDTOs []LineQuoteDTO) (*raterequest.RateRequest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	refNo, err := kernel.RefNoFromString(dto.RefNo)
	if err != nil {
		return nil, err
	}

	polID, err := kernel.UUIDFromBytes(dto.PolID[:])
	if err != nil {
		return nil, err
	}

	podID, err := kernel.UUIDFromBytes(dto.PodID[:])
	if err != nil {
		return nil, err
	}

	equipTypeID, err := kernel.UUIDFromBytes(dto.EquipTypeID[:])
	if err != nil {
		return nil, err
	}

	salespersonID, err := kernel.UUIDFromBytes(dto.SalespersonID[:])
	if err != nil {
		return nil, err
	}

	preferredLineID, err := optionalDomainUUID(dto.PreferredLineID)
	if err != nil {
		return nil, err
	}

	customerID, err := optionalDomainUUID(dto.CustomerID)
	if err != nil {
		return nil, err
	}

	responses := make([]raterequest.Response, 0, len(responseDTOs))
	for _, rd := range responseDTOs {
		r, respErr := responseToDomain(rd)
		if respErr != nil {
			return nil, respErr
		}
		responses = append(responses, r)
	}

	quotes := make([]*raterequest.LineQuote, 0, len(quoteDTOs))
	for _, qd := range quoteDTOs {
		q, quoteErr := quoteToDomain(qd)
		if quoteErr != nil {
			return nil, quoteErr
		}
		quotes = append(quotes, q)
	}

	return raterequest.RestoreRateRequest(
		id,
		refNo,
		raterequest.Mode(dto.Mode),
		raterequest.Type(dto.Type),
		polID, podID, equipTypeID,
		preferredLineID,
		dto.Weight,
		dto.CargoReadyDate,
		dto.VesselRequired,
		dto.SpecialNotes,
		salespersonID,
		customerID,
		raterequest.Status(dto.Status),
		dto.Version,
		responses,
		quotes,
	)
}

// responseToDomain converts a response DTO to its domain representation.
func responseToDomain(dto ResponseDTO) (raterequest.Response, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return raterequest.Response{}, err
	}

	lineID, err := optionalDomainUUID(dto.LineID)
	if err != nil {
		return raterequest.Response{}, err
	}

	equipTypeID, err := optionalDomainUUID(dto.EquipTypeID)
	if err != nil {
		return raterequest.Response{}, err
	}

	return raterequest.RestoreResponse(
		id,
		dto.LineNo,
		lineID, equipTypeID,
		dto.VesselName,
		dto.ETA, dto.ETD, dto.FclCutoff, dto.DocCutoff,
		dto.ValidTo,
		dto.ChargesJSON,
	)
}

// quoteToDomain converts a line quote DTO to its domain representation.
func quoteToDomain(dto LineQuoteDTO) (*raterequest.LineQuote, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	rateRequestID, err := kernel.UUIDFromBytes(dto.RateRequestID[:])
	if err != nil {
		return nil, err
	}

	lineID, err := kernel.UUIDFromBytes(dto.LineID[:])
	if err != nil {
		return nil, err
	}

	return raterequest.RestoreLineQuote(id, rateRequestID, lineID, dto.TermsJSON, dto.ValidTo, dto.Selected)
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
