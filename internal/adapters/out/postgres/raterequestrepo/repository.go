package raterequestrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/raterequest"
	"freightflow/internal/pkg/errs"
)

// GormRateRequestRepository implements RateRequestRepository using GORM.
type GormRateRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRateRequestRepository creates a new GORM rate request repository.
func NewGormRateRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormRateRequestRepository {
	return &GormRateRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new rate request to the database.
func (r *GormRateRequestRepository) Add(ctx context.Context, aggregate *raterequest.RateRequest) error {
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

// Update saves an existing rate request. The write is conditional on the
// version the aggregate was restored with; a concurrent writer that bumped
// the version first turns this call into a state conflict.
func (r *GormRateRequestRepository) Update(ctx context.Context, aggregate *raterequest.RateRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	expectedVersion := dto.Version
	dto.Version = expectedVersion + 1

	result := r.db.WithContext(ctx).
		Model(&RateRequestDTO{}).
		Where("id = ? AND version = ?", dto.ID, expectedVersion).
		Select("*").
		Omit("id", "created_at").
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

// Get retrieves a rate request with its responses and quotes.
func (r *GormRateRequestRepository) Get(ctx context.Context, id kernel.UUID) (*raterequest.RateRequest, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a rate request holding a row lock on the aggregate
// root until the surrounding transaction ends.
func (r *GormRateRequestRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*raterequest.RateRequest, error) {
	return r.get(ctx, id, true)
}

// ReplaceSelectedQuote clears the selected flag on every quote of the rate
// request and inserts quote as the single selected one. Callers run it under
// GetForUpdate so two selections for the same rate request serialize.
func (r *GormRateRequestRepository) ReplaceSelectedQuote(ctx context.Context, rateRequestID kernel.UUID, quote *raterequest.LineQuote) error {
	err := r.db.WithContext(ctx).
		Model(&LineQuoteDTO{}).
		Where("rate_request_id = ? AND selected", rateRequestID.Bytes()).
		Update("selected", false).Error
	if err != nil {
		return err
	}

	dto := quoteFromDomain(quote)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormRateRequestRepository) get(ctx context.Context, id kernel.UUID, forUpdate bool) (*raterequest.RateRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx)
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto RateRequestDTO
	if err := query.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rateRequest", id.String())
		}
		return nil, err
	}

	var responseDTOs []ResponseDTO
	if err := r.db.WithContext(ctx).
		Order("line_no").
		Find(&responseDTOs, "rate_request_id = ?", id.Bytes()).Error; err != nil {
		return nil, err
	}

	var quoteDTOs []LineQuoteDTO
	if err := r.db.WithContext(ctx).
		Order("valid_to").
		Find(&quoteDTOs, "rate_request_id = ?", id.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, responseDTOs, quoteDTOs)
}

// saveChildren upserts response rows. Responses are append-only, so existing
// rows are left untouched.
func (r *GormRateRequestRepository) saveChildren(ctx context.Context, aggregate *raterequest.RateRequest) error {
	responses := aggregate.Responses()
	if len(responses) == 0 {
		return nil
	}

	dtos := make([]ResponseDTO, 0, len(responses))
	for _, resp := range responses {
		dtos = append(dtos, responseFromDomain(aggregate.ID(), resp))
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dtos).Error
}

// resolveConflict distinguishes a lost optimistic-concurrency race from a
// missing row once a conditional update matched nothing.
func (r *GormRateRequestRepository) resolveConflict(ctx context.Context, id kernel.UUID) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&RateRequestDTO{}).
		Where("id = ?", id.Bytes()).
		Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return errs.NewObjectNotFoundError("rateRequest", id.String())
	}
	return errs.NewStateConflictError("rateRequest", id.String())
}
