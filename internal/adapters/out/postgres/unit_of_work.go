// Package postgres provides the GORM-based persistence adapters, including
// the unit of work that coordinates transactional state across repositories.
package postgres

import (
	"context"

	"gorm.io/gorm"

	"freightflow/internal/adapters/out/postgres/bookingrepo"
	"freightflow/internal/adapters/out/postgres/customerrepo"
	"freightflow/internal/adapters/out/postgres/itineraryrepo"
	"freightflow/internal/adapters/out/postgres/notificationrepo"
	"freightflow/internal/adapters/out/postgres/raterequestrepo"
	"freightflow/internal/adapters/out/postgres/userrepo"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/ports"
)

// GormUnitOfWorkFactory creates GORM-based unit of work instances.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a new factory with the given database connection.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a new unit of work instance.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make(map[kernel.UUID]any),
	}
}

// GormUnitOfWork implements the unit of work pattern using GORM transactions.
// Repositories obtained from it share the active transaction, so writes to
// several aggregates commit or roll back together.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates map[kernel.UUID]any
}

// Begin starts a new database transaction. Calling Begin when a transaction
// is already active is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit commits the current transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback rolls back the current transaction. After a successful Commit the
// transaction is gone, so a deferred Rollback becomes a no-op.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return nil
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// TrackAggregate registers an aggregate touched during the transaction.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates[id] = aggregate
}

// RateRequestRepository returns a rate request repository bound to the current transaction.
func (uow *GormUnitOfWork) RateRequestRepository() ports.RateRequestRepository {
	return raterequestrepo.NewGormRateRequestRepository(uow.conn(), uow)
}

// BookingRequestRepository returns a booking request repository bound to the current transaction.
func (uow *GormUnitOfWork) BookingRequestRepository() ports.BookingRequestRepository {
	return bookingrepo.NewGormBookingRequestRepository(uow.conn(), uow)
}

// ItineraryRepository returns an itinerary repository bound to the current transaction.
func (uow *GormUnitOfWork) ItineraryRepository() ports.ItineraryRepository {
	return itineraryrepo.NewGormItineraryRepository(uow.conn(), uow)
}

// CustomerRepository returns a customer repository bound to the current transaction.
func (uow *GormUnitOfWork) CustomerRepository() ports.CustomerRepository {
	return customerrepo.NewGormCustomerRepository(uow.conn(), uow)
}

// UserRepository returns a user repository bound to the current transaction.
func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn())
}

// NotificationRepository returns a notification repository bound to the current transaction.
func (uow *GormUnitOfWork) NotificationRepository() ports.NotificationRepository {
	return notificationrepo.NewGormNotificationRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
