// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence. Handlers that trigger lifecycle
// transitions return the notification effects the caller hands to the
// notify publisher after commit.
package commands

import (
	"context"

	"freightflow/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Narrow compositions keep each handler declaring only the
// repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// RateRequestRepoFactory provides access to the rate request repository
	// within a transaction.
	RateRequestRepoFactory interface {
		RateRequestRepository() ports.RateRequestRepository
	}

	// BookingRequestRepoFactory provides access to the booking request
	// repository within a transaction.
	BookingRequestRepoFactory interface {
		BookingRequestRepository() ports.BookingRequestRepository
	}

	// ItineraryRepoFactory provides access to the itinerary repository
	// within a transaction.
	ItineraryRepoFactory interface {
		ItineraryRepository() ports.ItineraryRepository
	}

	// CustomerRepoFactory provides access to the customer repository
	// within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// UserRepoFactory provides access to the user repository within a
	// transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// NotificationRepoFactory provides access to the notification
	// repository within a transaction.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// RateRequestUoW manages transactions for rate request operations.
	RateRequestUoW interface {
		TxManager
		RateRequestRepoFactory
	}

	// RateRequestUoWFactory creates rate request unit of work instances.
	RateRequestUoWFactory interface {
		Create() RateRequestUoW
	}

	// BookingUoW manages transactions for booking request operations.
	BookingUoW interface {
		TxManager
		BookingRequestRepoFactory
	}

	// BookingUoWFactory creates booking unit of work instances.
	BookingUoWFactory interface {
		Create() BookingUoW
	}

	// ItineraryUoW manages transactions for itinerary operations.
	ItineraryUoW interface {
		TxManager
		ItineraryRepoFactory
	}

	// ItineraryUoWFactory creates itinerary unit of work instances.
	ItineraryUoWFactory interface {
		Create() ItineraryUoW
	}

	// CustomerUoW manages transactions for customer operations.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// DispatchUoW manages transactions for notification dispatch
	// operations.
	DispatchUoW interface {
		TxManager
		NotificationRepoFactory
	}

	// DispatchUoWFactory creates dispatch unit of work instances.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}
)
