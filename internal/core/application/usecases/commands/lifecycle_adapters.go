package commands

import (
	"context"

	"freightflow/internal/core/domain/model/booking"
	"freightflow/internal/core/domain/model/customer"
	"freightflow/internal/core/domain/model/itinerary"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/raterequest"
	"freightflow/internal/core/domain/model/workflow"
	"freightflow/internal/core/ports"
)

// RateRequestAdapter binds the rate request lifecycle to its repository.
type RateRequestAdapter struct{}

func (RateRequestAdapter) Load(ctx context.Context, uow ports.UnitOfWork, id kernel.UUID) (workflow.Transitionable, error) {
	return uow.RateRequestRepository().Get(ctx, id)
}

func (RateRequestAdapter) Save(ctx context.Context, uow ports.UnitOfWork, entity workflow.Transitionable) error {
	return uow.RateRequestRepository().Update(ctx, entity.(*raterequest.RateRequest))
}

// BookingRequestAdapter binds the booking lifecycle to its repository.
type BookingRequestAdapter struct{}

func (BookingRequestAdapter) Load(ctx context.Context, uow ports.UnitOfWork, id kernel.UUID) (workflow.Transitionable, error) {
	return uow.BookingRequestRepository().Get(ctx, id)
}

func (BookingRequestAdapter) Save(ctx context.Context, uow ports.UnitOfWork, entity workflow.Transitionable) error {
	return uow.BookingRequestRepository().Update(ctx, entity.(*booking.BookingRequest))
}

// ItineraryAdapter binds the itinerary lifecycle to its repository.
type ItineraryAdapter struct{}

func (ItineraryAdapter) Load(ctx context.Context, uow ports.UnitOfWork, id kernel.UUID) (workflow.Transitionable, error) {
	return uow.ItineraryRepository().Get(ctx, id)
}

func (ItineraryAdapter) Save(ctx context.Context, uow ports.UnitOfWork, entity workflow.Transitionable) error {
	return uow.ItineraryRepository().Update(ctx, entity.(*itinerary.Itinerary))
}

// CustomerAdapter binds the customer approval lifecycle to its repository.
type CustomerAdapter struct{}

func (CustomerAdapter) Load(ctx context.Context, uow ports.UnitOfWork, id kernel.UUID) (workflow.Transitionable, error) {
	return uow.CustomerRepository().Get(ctx, id)
}

func (CustomerAdapter) Save(ctx context.Context, uow ports.UnitOfWork, entity workflow.Transitionable) error {
	return uow.CustomerRepository().Update(ctx, entity.(*customer.Customer))
}

// DefaultLifecycleAdapters returns the adapter registry covering every
// workflow entity type.
func DefaultLifecycleAdapters() map[workflow.EntityType]LifecycleAdapter {
	return map[workflow.EntityType]LifecycleAdapter{
		workflow.EntityRateRequest:    RateRequestAdapter{},
		workflow.EntityBookingRequest: BookingRequestAdapter{},
		workflow.EntityItinerary:      ItineraryAdapter{},
		workflow.EntityCustomer:       CustomerAdapter{},
	}
}
