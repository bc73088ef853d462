package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Client code must
// explicitly manage the transaction lifecycle; repositories obtained from
// the unit of work are bound to its active transaction.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction. Calling it after a
	// successful Commit is a no-op, so it is safe to defer.
	Rollback(ctx context.Context) error

	// RateRequestRepository returns a repository bound to the current transaction.
	RateRequestRepository() RateRequestRepository

	// BookingRequestRepository returns a repository bound to the current transaction.
	BookingRequestRepository() BookingRequestRepository

	// ItineraryRepository returns a repository bound to the current transaction.
	ItineraryRepository() ItineraryRepository

	// CustomerRepository returns a repository bound to the current transaction.
	CustomerRepository() CustomerRepository

	// UserRepository returns a repository bound to the current transaction.
	UserRepository() UserRepository

	// NotificationRepository returns a repository bound to the current transaction.
	NotificationRepository() NotificationRepository
}
