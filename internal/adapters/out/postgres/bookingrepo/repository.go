package bookingrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"freightflow/internal/core/domain/model/booking"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/errs"
)

// GormBookingRequestRepository implements BookingRequestRepository using GORM.
type GormBookingRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBookingRequestRepository creates a new GORM booking request repository.
func NewGormBookingRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormBookingRequestRepository {
	return &GormBookingRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new booking request to the database.
func (r *GormBookingRequestRepository) Add(ctx context.Context, aggregate *booking.BookingRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := r.saveChildren(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing booking request with a version check. A stale
// version resolves to a state conflict, a missing row to not found.
func (r *GormBookingRequestRepository) Update(ctx context.Context, aggregate *booking.BookingRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	expectedVersion := dto.Version
	dto.Version = expectedVersion + 1

	result := r.db.WithContext(ctx).
		Model(&BookingRequestDTO{}).
		Where("id = ? AND version = ?", dto.ID, expectedVersion).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.resolveConflict(ctx, aggregate.ID())
	}

	if err := r.saveChildren(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a booking request with its RO documents, jobs, and completions.
func (r *GormBookingRequestRepository) Get(ctx context.Context, id kernel.UUID) (*booking.BookingRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BookingRequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("bookingRequest", id.String())
		}
		return nil, err
	}

	var roDocDTOs []RoDocumentDTO
	if err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&roDocDTOs, "booking_request_id = ?", id.Bytes()).Error; err != nil {
		return nil, err
	}

	var jobDTOs []JobDTO
	if err := r.db.WithContext(ctx).
		Order("opened_at").
		Find(&jobDTOs, "booking_request_id = ?", id.Bytes()).Error; err != nil {
		return nil, err
	}

	var completionDTOs []JobCompletionDTO
	if len(jobDTOs) > 0 {
		jobIDs := make([]any, 0, len(jobDTOs))
		for _, jd := range jobDTOs {
			jobIDs = append(jobIDs, jd.ID)
		}
		if err := r.db.WithContext(ctx).
			Order("completed_at").
			Find(&completionDTOs, "job_id IN ?", jobIDs).Error; err != nil {
			return nil, err
		}
	}

	return toDomain(dto, roDocDTOs, jobDTOs, completionDTOs)
}

// saveChildren upserts RO documents, jobs, and completions. Child rows are
// append-only, so existing rows are left untouched.
func (r *GormBookingRequestRepository) saveChildren(ctx context.Context, aggregate *booking.BookingRequest) error {
	if docs := aggregate.RoDocuments(); len(docs) > 0 {
		dtos := make([]RoDocumentDTO, 0, len(docs))
		for _, doc := range docs {
			dtos = append(dtos, roDocumentFromDomain(aggregate.ID(), doc))
		}
		if err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&dtos).Error; err != nil {
			return err
		}
	}

	for _, job := range aggregate.Jobs() {
		jobDTO, completionDTOs := jobFromDomain(aggregate.ID(), job)
		if err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&jobDTO).Error; err != nil {
			return err
		}
		if len(completionDTOs) == 0 {
			continue
		}
		if err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&completionDTOs).Error; err != nil {
			return err
		}
	}

	return nil
}

func (r *GormBookingRequestRepository) resolveConflict(ctx context.Context, id kernel.UUID) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&BookingRequestDTO{}).
		Where("id = ?", id.Bytes()).
		Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return errs.NewObjectNotFoundError("bookingRequest", id.String())
	}
	return errs.NewStateConflictError("bookingRequest", id.String())
}
