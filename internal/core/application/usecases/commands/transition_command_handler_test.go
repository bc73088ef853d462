package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"freightflow/internal/core/application/usecases/commands"
	"freightflow/internal/core/domain/model/booking"
	"freightflow/internal/core/domain/model/customer"
	"freightflow/internal/core/domain/model/itinerary"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/raterequest"
	"freightflow/internal/core/domain/model/user"
	"freightflow/internal/core/domain/model/workflow"
	"freightflow/internal/core/ports"
	"freightflow/internal/pkg/errs"
	"freightflow/pkg/metrics"
)

// One registry-backed metrics instance for the package; creating several
// would collide in the default prometheus registerer.
var testMetrics = metrics.NewMetrics("freightflow_commands_test")

type MockRateRequestRepository struct{ mock.Mock }

func (m *MockRateRequestRepository) Add(ctx context.Context, r *raterequest.RateRequest) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockRateRequestRepository) Update(ctx context.Context, r *raterequest.RateRequest) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockRateRequestRepository) Get(ctx context.Context, id kernel.UUID) (*raterequest.RateRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*raterequest.RateRequest), args.Error(1)
}
func (m *MockRateRequestRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*raterequest.RateRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*raterequest.RateRequest), args.Error(1)
}
func (m *MockRateRequestRepository) ReplaceSelectedQuote(ctx context.Context, rateRequestID kernel.UUID, quote *raterequest.LineQuote) error {
	args := m.Called(ctx, rateRequestID, quote)
	return args.Error(0)
}

type MockUnitOfWork struct{ mock.Mock }

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUnitOfWork) RateRequestRepository() ports.RateRequestRepository {
	args := m.Called()
	return args.Get(0).(ports.RateRequestRepository)
}
func (m *MockUnitOfWork) BookingRequestRepository() ports.BookingRequestRepository { return nil }
func (m *MockUnitOfWork) ItineraryRepository() ports.ItineraryRepository           { return nil }
func (m *MockUnitOfWork) CustomerRepository() ports.CustomerRepository             { return nil }
func (m *MockUnitOfWork) UserRepository() ports.UserRepository                     { return nil }
func (m *MockUnitOfWork) NotificationRepository() ports.NotificationRepository     { return nil }

type MockUnitOfWorkFactory struct{ mock.Mock }

func (m *MockUnitOfWorkFactory) Create() ports.UnitOfWork {
	args := m.Called()
	return args.Get(0).(ports.UnitOfWork)
}

func pendingRateRequest(t *testing.T) *raterequest.RateRequest {
	t.Helper()
	r, err := raterequest.NewRateRequest(
		kernel.NewUUID(), raterequest.ModeSea, raterequest.TypeFCL,
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		nil, 500, time.Now().AddDate(0, 0, 7), false,
		kernel.NewUUID(), nil,
	)
	require.NoError(t, err)
	return r
}

func rejectCommand(t *testing.T, id kernel.UUID) commands.TransitionCommand {
	t.Helper()
	cmd, err := commands.NewTransitionCommand(
		workflow.EntityRateRequest, id, raterequest.TransitionReject,
		workflow.Actor{ID: kernel.NewUUID(), Role: user.RolePricing},
		raterequest.RejectPayload{Remark: "lane suspended"},
	)
	require.NoError(t, err)
	return cmd
}

func TestTransitionCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := pendingRateRequest(t)
	cmd := rejectCommand(t, aggregate.ID())

	repo := new(MockRateRequestRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RateRequestRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("RateRequestRepository").Return(repo).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUnitOfWorkFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionCommandHandler(factory, commands.DefaultLifecycleAdapters(), testMetrics)
	effects, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Len(t, effects, 1)
	require.Equal(t, raterequest.StatusRejected, aggregate.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestTransitionCommandHandler_Handle_GuardViolation(t *testing.T) {
	ctx := t.Context()
	aggregate := pendingRateRequest(t)

	cmd, err := commands.NewTransitionCommand(
		workflow.EntityRateRequest, aggregate.ID(), raterequest.TransitionComplete,
		workflow.Actor{ID: kernel.NewUUID(), Role: user.RolePricing}, nil,
	)
	require.NoError(t, err)

	repo := new(MockRateRequestRepository)
	uow := new(MockUnitOfWork)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RateRequestRepository").Return(repo).Once()
	repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUnitOfWorkFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionCommandHandler(factory, commands.DefaultLifecycleAdapters(), testMetrics)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrGuardViolation)
	require.Equal(t, raterequest.StatusPending, aggregate.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestTransitionCommandHandler_Handle_StateConflict(t *testing.T) {
	ctx := t.Context()
	aggregate := pendingRateRequest(t)
	cmd := rejectCommand(t, aggregate.ID())

	repo := new(MockRateRequestRepository)
	uow := new(MockUnitOfWork)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RateRequestRepository").Return(repo).Times(2)
	repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	repo.On("Update", mock.Anything, aggregate).
		Return(errs.NewStateConflictError("rateRequest", aggregate.ID().String())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUnitOfWorkFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionCommandHandler(factory, commands.DefaultLifecycleAdapters(), testMetrics)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrStateConflict)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestTransitionCommandHandler_Handle_UnknownEntityType(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewTransitionCommand(
		"SHIPMENT", kernel.NewUUID(), "confirm",
		workflow.Actor{ID: kernel.NewUUID(), Role: user.RoleCSE}, nil,
	)
	require.NoError(t, err)

	factory := new(MockUnitOfWorkFactory)
	h := commands.NewTransitionCommandHandler(factory, commands.DefaultLifecycleAdapters(), testMetrics)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	factory.AssertNotCalled(t, "Create")
}

func TestTransitionCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.TransitionCommand{} // not constructed properly
	factory := new(MockUnitOfWorkFactory)
	h := commands.NewTransitionCommandHandler(factory, commands.DefaultLifecycleAdapters(), testMetrics)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestDefaultLifecycleAdapters_CoverAllEntityTypes(t *testing.T) {
	adapters := commands.DefaultLifecycleAdapters()
	for _, entityType := range []workflow.EntityType{
		workflow.EntityRateRequest,
		workflow.EntityBookingRequest,
		workflow.EntityItinerary,
		workflow.EntityCustomer,
	} {
		require.Contains(t, adapters, entityType)
	}
}

// Keep the compiler honest about Transitionable coverage.
var (
	_ workflow.Transitionable = (*raterequest.RateRequest)(nil)
	_ workflow.Transitionable = (*booking.BookingRequest)(nil)
	_ workflow.Transitionable = (*itinerary.Itinerary)(nil)
	_ workflow.Transitionable = (*customer.Customer)(nil)
)
