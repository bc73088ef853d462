package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"freightflow/internal/core/application/usecases/commands"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/raterequest"
	"freightflow/internal/core/ports"
	"freightflow/internal/pkg/errs"
)

type MockRateRequestUoW struct{ mock.Mock }

func (m *MockRateRequestUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockRateRequestUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockRateRequestUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockRateRequestUoW) RateRequestRepository() ports.RateRequestRepository {
	args := m.Called()
	return args.Get(0).(ports.RateRequestRepository)
}

type MockRateRequestUoWFactory struct{ mock.Mock }

func (m *MockRateRequestUoWFactory) Create() commands.RateRequestUoW {
	args := m.Called()
	return args.Get(0).(commands.RateRequestUoW)
}

func TestAddLineQuoteCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := pendingRateRequest(t)
	cmd, err := commands.NewAddLineQuoteCommand(
		aggregate.ID(), kernel.NewUUID(), []byte(`{"freight":1200}`), time.Now().AddDate(0, 1, 0),
	)
	require.NoError(t, err)

	repo := new(MockRateRequestRepository)
	uow := new(MockRateRequestUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RateRequestRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("ReplaceSelectedQuote", mock.Anything, aggregate.ID(),
			mock.AnythingOfType("*raterequest.LineQuote")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRateRequestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddLineQuoteCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddLineQuoteCommandHandler_Handle_NewQuoteIsSelected(t *testing.T) {
	ctx := t.Context()
	aggregate := pendingRateRequest(t)
	cmd, err := commands.NewAddLineQuoteCommand(
		aggregate.ID(), kernel.NewUUID(), nil, time.Now().AddDate(0, 1, 0),
	)
	require.NoError(t, err)

	var captured *raterequest.LineQuote
	repo := new(MockRateRequestRepository)
	repo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	repo.On("ReplaceSelectedQuote", mock.Anything, aggregate.ID(), mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).(*raterequest.LineQuote)
		}).Return(nil).Once()

	uow := new(MockRateRequestUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RateRequestRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockRateRequestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddLineQuoteCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.NotNil(t, captured)
	require.True(t, captured.Selected())
}

func TestAddLineQuoteCommandHandler_Handle_RateRequestNotFound(t *testing.T) {
	ctx := t.Context()
	missingID := kernel.NewUUID()
	cmd, err := commands.NewAddLineQuoteCommand(
		missingID, kernel.NewUUID(), nil, time.Now().AddDate(0, 1, 0),
	)
	require.NoError(t, err)

	repo := new(MockRateRequestRepository)
	repo.On("GetForUpdate", mock.Anything, missingID).
		Return(nil, errs.NewObjectNotFoundError("rateRequest", missingID.String())).Once()

	uow := new(MockRateRequestUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RateRequestRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockRateRequestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddLineQuoteCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "ReplaceSelectedQuote", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewAddLineQuoteCommand_RequiresValidTo(t *testing.T) {
	_, err := commands.NewAddLineQuoteCommand(kernel.NewUUID(), kernel.NewUUID(), nil, time.Time{})
	require.ErrorIs(t, err, commands.ErrValidToIsRequired)
}
