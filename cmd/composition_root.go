package cmd

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	httpin "freightflow/internal/adapters/in/http"
	notifyout "freightflow/internal/adapters/out/notify"
	"freightflow/internal/adapters/out/postgres"
	"freightflow/internal/adapters/out/postgres/bookingrepo"
	"freightflow/internal/adapters/out/postgres/customerrepo"
	"freightflow/internal/adapters/out/postgres/itineraryrepo"
	"freightflow/internal/adapters/out/postgres/notificationrepo"
	"freightflow/internal/adapters/out/postgres/raterequestrepo"
	"freightflow/internal/adapters/out/postgres/userrepo"
	"freightflow/internal/core/application/notify"
	"freightflow/internal/core/application/usecases/commands"
	"freightflow/internal/core/application/usecases/queries"
	"freightflow/internal/core/domain/model/booking"
	"freightflow/internal/core/ports"
	"freightflow/internal/jobs"
	"freightflow/internal/pkg/errs"
	"freightflow/pkg/logger"
	"freightflow/pkg/metrics"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	log        logger.Logger
	metrics    *metrics.Metrics
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		log:        logger.NewLogger(),
		metrics:    metrics.NewMetrics("freightflow"),
	}
}

func (c *CompositionRoot) Logger() logger.Logger {
	return c.log
}

// AutoMigrate creates the database schema for all persistence DTOs.
func (c *CompositionRoot) AutoMigrate() error {
	return c.gormDB.AutoMigrate(
		&raterequestrepo.RateRequestDTO{},
		&raterequestrepo.ResponseDTO{},
		&raterequestrepo.LineQuoteDTO{},
		&bookingrepo.BookingRequestDTO{},
		&bookingrepo.RoDocumentDTO{},
		&bookingrepo.JobDTO{},
		&bookingrepo.JobCompletionDTO{},
		&itineraryrepo.ItineraryDTO{},
		&itineraryrepo.ItemDTO{},
		&customerrepo.CustomerDTO{},
		&userrepo.UserDTO{},
		&userrepo.TradeLaneAssignmentDTO{},
		&notificationrepo.NotificationDTO{},
		&notificationrepo.QueueItemDTO{},
	)
}

func (c *CompositionRoot) CreateTransitionCommandHandler() commands.TransitionCommandHandler {
	return commands.NewTransitionCommandHandler(c.uowFactory, commands.DefaultLifecycleAdapters(), c.metrics)
}

func (c *CompositionRoot) CreateCreateRateRequestCommandHandler() commands.CreateRateRequestCommandHandler {
	var f commands.RateRequestUoWFactory = FuncRateRequestUoWFactory(func() commands.RateRequestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRateRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateAddLineQuoteCommandHandler() commands.AddLineQuoteCommandHandler {
	var f commands.RateRequestUoWFactory = FuncRateRequestUoWFactory(func() commands.RateRequestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddLineQuoteCommandHandler(f)
}

func (c *CompositionRoot) CreateRequestRateUpdateCommandHandler() commands.RequestRateUpdateCommandHandler {
	return commands.NewRequestRateUpdateCommandHandler()
}

func (c *CompositionRoot) CreateCreateBookingRequestCommandHandler() commands.CreateBookingRequestCommandHandler {
	return commands.NewCreateBookingRequestCommandHandler(c.bookingUoWFactory())
}

func (c *CompositionRoot) CreateAddRoDocumentCommandHandler() commands.AddRoDocumentCommandHandler {
	return commands.NewAddRoDocumentCommandHandler(c.bookingUoWFactory())
}

func (c *CompositionRoot) CreateOpenJobCommandHandler() commands.OpenJobCommandHandler {
	return commands.NewOpenJobCommandHandler(c.bookingUoWFactory())
}

func (c *CompositionRoot) CreateCompleteJobCommandHandler() commands.CompleteJobCommandHandler {
	return commands.NewCompleteJobCommandHandler(c.bookingUoWFactory())
}

func (c *CompositionRoot) CreateCreateItineraryCommandHandler() commands.CreateItineraryCommandHandler {
	return commands.NewCreateItineraryCommandHandler(c.itineraryUoWFactory())
}

func (c *CompositionRoot) CreateAddItineraryItemCommandHandler() commands.AddItineraryItemCommandHandler {
	return commands.NewAddItineraryItemCommandHandler(c.itineraryUoWFactory())
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	return commands.NewCreateCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCustomerCommandHandler() commands.UpdateCustomerCommandHandler {
	return commands.NewUpdateCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateMarkNotificationReadCommandHandler() commands.MarkNotificationReadCommandHandler {
	return commands.NewMarkNotificationReadCommandHandler(c.dispatchUoWFactory())
}

func (c *CompositionRoot) CreateMarkAllNotificationsReadCommandHandler() commands.MarkAllNotificationsReadCommandHandler {
	return commands.NewMarkAllNotificationsReadCommandHandler(c.dispatchUoWFactory())
}

func (c *CompositionRoot) CreateProcessNotificationQueueCommandHandler() commands.ProcessNotificationQueueCommandHandler {
	return commands.NewProcessNotificationQueueCommandHandler(
		c.dispatchUoWFactory(),
		notifyout.NewLogEmailSender(c.log),
		notifyout.NewLogSMSSender(c.log),
		c.log,
		c.metrics,
	)
}

func (c *CompositionRoot) CreateReclaimStaleCommandHandler() commands.ReclaimStaleCommandHandler {
	return commands.NewReclaimStaleCommandHandler(c.dispatchUoWFactory(), c.log)
}

func (c *CompositionRoot) CreateGetRateRequestsQueryHandler() queries.GetRateRequestsQueryHandler {
	return queries.NewGetRateRequestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProcessedPercentageQueryHandler() queries.GetProcessedPercentageQueryHandler {
	return queries.NewGetProcessedPercentageQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserNotificationsQueryHandler() queries.GetUserNotificationsQueryHandler {
	return queries.NewGetUserNotificationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreatePublisher() *notify.Publisher {
	var f notify.UoWFactory = FuncPublisherUoWFactory(func() notify.UoW {
		return c.uowFactory.Create()
	})
	return notify.NewPublisher(f, c.log, c.metrics)
}

// CreateQuoteValidityCheck builds the confirm-time validity check for
// quote-sourced bookings. Predefined rates live in the external tariff
// system and are not re-validated here.
func (c *CompositionRoot) CreateQuoteValidityCheck() httpin.QuoteValidityCheck {
	return func(ctx context.Context, b *booking.BookingRequest) error {
		if b.RateSource() != booking.RateSourceQuote {
			return nil
		}

		var quote raterequestrepo.LineQuoteDTO
		err := c.gormDB.WithContext(ctx).
			Where("rate_request_id = ? AND selected", b.RateRef().Bytes()).
			First(&quote).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewGuardViolationError("confirm", "referenced quote no longer exists")
			}
			return err
		}

		if quote.ValidTo.Before(time.Now()) {
			return errs.NewGuardViolationError("confirm", "referenced quote has expired")
		}
		return nil
	}
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateProcessNotificationQueueCommandHandler(),
		c.CreateReclaimStaleCommandHandler(),
		c.log,
	)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateTransitionCommandHandler(),
		c.CreateCreateRateRequestCommandHandler(),
		c.CreateAddLineQuoteCommandHandler(),
		c.CreateRequestRateUpdateCommandHandler(),
		c.CreateCreateBookingRequestCommandHandler(),
		c.CreateAddRoDocumentCommandHandler(),
		c.CreateOpenJobCommandHandler(),
		c.CreateCompleteJobCommandHandler(),
		c.CreateCreateItineraryCommandHandler(),
		c.CreateAddItineraryItemCommandHandler(),
		c.CreateCreateCustomerCommandHandler(),
		c.CreateUpdateCustomerCommandHandler(),
		c.CreateMarkNotificationReadCommandHandler(),
		c.CreateMarkAllNotificationsReadCommandHandler(),
		c.CreateGetRateRequestsQueryHandler(),
		c.CreateGetProcessedPercentageQueryHandler(),
		c.CreateGetUserNotificationsQueryHandler(),
		c.CreatePublisher(),
		c.CreateQuoteValidityCheck(),
	)
}

func (c *CompositionRoot) bookingUoWFactory() commands.BookingUoWFactory {
	return FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) itineraryUoWFactory() commands.ItineraryUoWFactory {
	return FuncItineraryUoWFactory(func() commands.ItineraryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) dispatchUoWFactory() commands.DispatchUoWFactory {
	return FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
}

var _ ports.UnitOfWorkFactory = (*postgres.GormUnitOfWorkFactory)(nil)

type FuncRateRequestUoWFactory func() commands.RateRequestUoW

func (f FuncRateRequestUoWFactory) Create() commands.RateRequestUoW {
	return f()
}

type FuncBookingUoWFactory func() commands.BookingUoW

func (f FuncBookingUoWFactory) Create() commands.BookingUoW {
	return f()
}

type FuncItineraryUoWFactory func() commands.ItineraryUoW

func (f FuncItineraryUoWFactory) Create() commands.ItineraryUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}

type FuncPublisherUoWFactory func() notify.UoW

func (f FuncPublisherUoWFactory) Create() notify.UoW {
	return f()
}
