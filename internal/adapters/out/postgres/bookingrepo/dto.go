// Package bookingrepo provides data transfer objects and mapping functions
// for booking request persistence, including RO documents, jobs, and job
// completions attached to the aggregate.
package bookingrepo

import (
	"time"

	"github.com/google/uuid"

	"freightflow/internal/core/domain/model/booking"
	"freightflow/internal/core/domain/model/kernel"
)

// BookingRequestDTO represents the database structure for persisting booking
// request aggregates.
type BookingRequestDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID `gorm:"type:uuid;index"`
	RateSource   string
	RateRefID    uuid.UUID `gorm:"type:uuid"`
	RaisedByID   uuid.UUID `gorm:"type:uuid;index"`
	Status       string    `gorm:"index"`
	CancelReason string
	Version      int
}

// TableName specifies the database table name for booking request entities.
func (BookingRequestDTO) TableName() string {
	return "booking_requests"
}

// RoDocumentDTO represents a released RO document attached to a booking.
type RoDocumentDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookingRequestID uuid.UUID `gorm:"type:uuid;index"`
	Number           string
	FileURL          string
	CreatedAt        time.Time
}

// TableName specifies the database table name for RO document entities.
func (RoDocumentDTO) TableName() string {
	return "booking_ro_documents"
}

// JobDTO represents an operational job opened against a confirmed booking.
type JobDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookingRequestID uuid.UUID `gorm:"type:uuid;index"`
	ErpJobNo         string    `gorm:"uniqueIndex"`
	OpenedByID       uuid.UUID `gorm:"type:uuid"`
	OpenedAt         time.Time
}

// TableName specifies the database table name for job entities.
func (JobDTO) TableName() string {
	return "booking_jobs"
}

// JobCompletionDTO represents a completion record for a job.
type JobCompletionDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	JobID       uuid.UUID `gorm:"type:uuid;index"`
	CseUserID   uuid.UUID `gorm:"type:uuid"`
	DetailsJSON []byte    `gorm:"type:jsonb"`
	CompletedAt time.Time
}

// TableName specifies the database table name for job completion entities.
func (JobCompletionDTO) TableName() string {
	return "booking_job_completions"
}

// fromDomain converts a booking request aggregate to its database representation.
func fromDomain(aggregate *booking.BookingRequest) BookingRequestDTO {
	return BookingRequestDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerID:   aggregate.Customer().Bytes(),
		RateSource:   string(aggregate.RateSource()),
		RateRefID:    aggregate.RateRef().Bytes(),
		RaisedByID:   aggregate.RaisedBy().Bytes(),
		Status:       aggregate.Status().String(),
		CancelReason: aggregate.CancelReason(),
		Version:      aggregate.Version(),
	}
}

// roDocumentFromDomain converts an RO document to its database representation.
func roDocumentFromDomain(bookingRequestID kernel.UUID, doc booking.RoDocument) RoDocumentDTO {
	return RoDocumentDTO{
		ID:               doc.ID().Bytes(),
		BookingRequestID: bookingRequestID.Bytes(),
		Number:           doc.Number(),
		FileURL:          doc.FileURL(),
		CreatedAt:        doc.CreatedAt(),
	}
}

// jobFromDomain converts a job and its completions to database representations.
func jobFromDomain(bookingRequestID kernel.UUID, job *booking.Job) (JobDTO, []JobCompletionDTO) {
	dto := JobDTO{
		ID:               job.ID().Bytes(),
		BookingRequestID: bookingRequestID.Bytes(),
		ErpJobNo:         job.ErpJobNo(),
		OpenedByID:       job.OpenedBy().Bytes(),
		OpenedAt:         job.OpenedAt(),
	}

	completions := make([]JobCompletionDTO, 0, len(job.Completions()))
	for _, c := range job.Completions() {
		completions = append(completions, JobCompletionDTO{
			ID:          c.ID().Bytes(),
			JobID:       job.ID().Bytes(),
			CseUserID:   c.CseUser().Bytes(),
			DetailsJSON: c.DetailsJSON(),
			CompletedAt: c.CompletedAt(),
		})
	}

	return dto, completions
}

// toDomain converts database DTOs to a booking request aggregate.
func toDomain(
	dto BookingRequestDTO,
	roDocDTOs []RoDocumentDTO,
	jobDTOs []JobDTO,
	completionDTOs []JobCompletionDTO,
) (*booking.BookingRequest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	rateRefID, err := kernel.UUIDFromBytes(dto.RateRefID[:])
	if err != nil {
		return nil, err
	}

	raisedByID, err := kernel.UUIDFromBytes(dto.RaisedByID[:])
	if err != nil {
		return nil, err
	}

	roDocs := make([]booking.RoDocument, 0, len(roDocDTOs))
	for _, dd := range roDocDTOs {
		doc, docErr := roDocumentToDomain(dd)
		if docErr != nil {
			return nil, docErr
		}
		roDocs = append(roDocs, doc)
	}

	completionsByJob := make(map[uuid.UUID][]booking.JobCompletion, len(jobDTOs))
	for _, cd := range completionDTOs {
		completion, compErr := completionToDomain(cd)
		if compErr != nil {
			return nil, compErr
		}
		completionsByJob[cd.JobID] = append(completionsByJob[cd.JobID], completion)
	}

	jobs := make([]*booking.Job, 0, len(jobDTOs))
	for _, jd := range jobDTOs {
		job, jobErr := jobToDomain(jd, completionsByJob[jd.ID])
		if jobErr != nil {
			return nil, jobErr
		}
		jobs = append(jobs, job)
	}

	return booking.RestoreBookingRequest(
		id, customerID,
		booking.RateSource(dto.RateSource),
		rateRefID, raisedByID,
		booking.Status(dto.Status),
		dto.CancelReason,
		dto.Version,
		roDocs,
		jobs,
	)
}

// roDocumentToDomain converts an RO document DTO to its domain representation.
func roDocumentToDomain(dto RoDocumentDTO) (booking.RoDocument, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return booking.RoDocument{}, err
	}

	return booking.RestoreRoDocument(id, dto.Number, dto.FileURL, dto.CreatedAt)
}

// jobToDomain converts a job DTO and its completions to a domain job.
func jobToDomain(dto JobDTO, completions []booking.JobCompletion) (*booking.Job, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	openedByID, err := kernel.UUIDFromBytes(dto.OpenedByID[:])
	if err != nil {
		return nil, err
	}

	return booking.RestoreJob(id, dto.ErpJobNo, openedByID, dto.OpenedAt, completions)
}

// completionToDomain converts a job completion DTO to its domain representation.
func completionToDomain(dto JobCompletionDTO) (booking.JobCompletion, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return booking.JobCompletion{}, err
	}

	cseUserID, err := kernel.UUIDFromBytes(dto.CseUserID[:])
	if err != nil {
		return booking.JobCompletion{}, err
	}

	return booking.RestoreJobCompletion(id, cseUserID, dto.DetailsJSON, dto.CompletedAt)
}
