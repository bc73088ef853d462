package itineraryrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"freightflow/internal/core/domain/model/itinerary"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/errs"
)

// GormItineraryRepository implements ItineraryRepository using GORM.
type GormItineraryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormItineraryRepository creates a new GORM itinerary repository.
func NewGormItineraryRepository(db *gorm.DB, tracker aggregateTracker) *GormItineraryRepository {
	return &GormItineraryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new itinerary to the database.
func (r *GormItineraryRepository) Add(ctx context.Context, aggregate *itinerary.Itinerary) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := r.saveItems(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing itinerary with a version check. A stale version
// resolves to a state conflict, a missing row to not found.
func (r *GormItineraryRepository) Update(ctx context.Context, aggregate *itinerary.Itinerary) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	expectedVersion := dto.Version
	dto.Version = expectedVersion + 1

	result := r.db.WithContext(ctx).
		Model(&ItineraryDTO{}).
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

	if err := r.saveItems(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an itinerary with its items ordered by sequence.
func (r *GormItineraryRepository) Get(ctx context.Context, id kernel.UUID) (*itinerary.Itinerary, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ItineraryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("itinerary", id.String())
		}
		return nil, err
	}

	var itemDTOs []ItemDTO
	if err := r.db.WithContext(ctx).
		Order("seq").
		Find(&itemDTOs, "itinerary_id = ?", id.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, itemDTOs)
}

// saveItems upserts item rows. Items can only be added while the itinerary
// is in draft, so existing rows never change.
func (r *GormItineraryRepository) saveItems(ctx context.Context, aggregate *itinerary.Itinerary) error {
	items := aggregate.Items()
	if len(items) == 0 {
		return nil
	}

	dtos := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, itemFromDomain(aggregate.ID(), item))
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dtos).Error
}

func (r *GormItineraryRepository) resolveConflict(ctx context.Context, id kernel.UUID) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&ItineraryDTO{}).
		Where("id = ?", id.Bytes()).
		Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return errs.NewObjectNotFoundError("itinerary", id.String())
	}
	return errs.NewStateConflictError("itinerary", id.String())
}
