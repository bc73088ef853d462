package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"freightflow/internal/core/application/usecases/commands"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/notification"
	"freightflow/internal/core/ports"
	"freightflow/pkg/logger"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{})        {}
func (nopLogger) Info(string, ...interface{})         {}
func (nopLogger) Warn(string, ...interface{})         {}
func (nopLogger) Error(string, ...interface{})        {}
func (nopLogger) Fatal(string, ...interface{})        {}
func (l nopLogger) With(...interface{}) logger.Logger { return l }

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) AddNotification(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
func (m *MockNotificationRepository) UpdateNotificationStatus(ctx context.Context, id kernel.UUID, status notification.DeliveryStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockNotificationRepository) GetByUser(_ context.Context, _ kernel.UUID, _ int) ([]*notification.Notification, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockNotificationRepository) MarkRead(ctx context.Context, id, userID kernel.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}
func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, userID kernel.UUID) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}
func (m *MockNotificationRepository) Enqueue(ctx context.Context, items []*notification.QueueItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}
func (m *MockNotificationRepository) ClaimBatch(ctx context.Context, limit int, claimedAt time.Time) ([]*notification.QueueItem, error) {
	args := m.Called(ctx, limit, claimedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notification.QueueItem), args.Error(1)
}
func (m *MockNotificationRepository) MarkDone(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockNotificationRepository) RequeueStale(ctx context.Context, cutoff time.Time) (int, error) {
	args := m.Called(ctx, cutoff)
	return args.Int(0), args.Error(1)
}

type MockDispatchUoW struct{ mock.Mock }

func (m *MockDispatchUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDispatchUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDispatchUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDispatchUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

type MockDispatchUoWFactory struct{ mock.Mock }

func (m *MockDispatchUoWFactory) Create() commands.DispatchUoW {
	args := m.Called()
	return args.Get(0).(commands.DispatchUoW)
}

type MockEmailSender struct{ mock.Mock }

func (m *MockEmailSender) SendEmail(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

type MockSMSSender struct{ mock.Mock }

func (m *MockSMSSender) SendSMS(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func queueItem(t *testing.T, channel notification.Channel) *notification.QueueItem {
	t.Helper()
	item, err := notification.NewQueueItem(kernel.NewUUID(), channel, "subject", "body", nil)
	require.NoError(t, err)
	return item
}

func dispatchFixture(repo *MockNotificationRepository) (*MockDispatchUoWFactory, *MockDispatchUoW) {
	uow := new(MockDispatchUoW)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	uow.On("NotificationRepository").Return(repo)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow)
	return factory, uow
}

func TestProcessNotificationQueueCommandHandler_Handle_SystemDelivery(t *testing.T) {
	ctx := t.Context()
	item := queueItem(t, notification.ChannelSystem)

	repo := new(MockNotificationRepository)
	repo.On("ClaimBatch", mock.Anything, 10, mock.AnythingOfType("time.Time")).
		Return([]*notification.QueueItem{item}, nil).Once()
	repo.On("AddNotification", mock.Anything, mock.AnythingOfType("*notification.Notification")).
		Return(nil).Once()
	repo.On("UpdateNotificationStatus", mock.Anything, mock.Anything, notification.DeliverySent).
		Return(nil).Once()
	repo.On("MarkDone", mock.Anything, item.ID()).Return(nil).Once()

	factory, _ := dispatchFixture(repo)
	email := new(MockEmailSender)
	sms := new(MockSMSSender)

	cmd, err := commands.NewProcessNotificationQueueCommand(10)
	require.NoError(t, err)

	h := commands.NewProcessNotificationQueueCommandHandler(factory, email, sms, nopLogger{}, testMetrics)
	processed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, 1, processed)
	repo.AssertExpectations(t)
	email.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything)
	sms.AssertNotCalled(t, "SendSMS", mock.Anything, mock.Anything)
}

func TestProcessNotificationQueueCommandHandler_Handle_EmailFailureIsRecorded(t *testing.T) {
	ctx := t.Context()
	item := queueItem(t, notification.ChannelEmail)

	repo := new(MockNotificationRepository)
	repo.On("ClaimBatch", mock.Anything, 5, mock.AnythingOfType("time.Time")).
		Return([]*notification.QueueItem{item}, nil).Once()
	repo.On("AddNotification", mock.Anything, mock.AnythingOfType("*notification.Notification")).
		Return(nil).Once()
	repo.On("UpdateNotificationStatus", mock.Anything, mock.Anything, notification.DeliveryFailed).
		Return(nil).Once()
	repo.On("MarkDone", mock.Anything, item.ID()).Return(nil).Once()

	factory, _ := dispatchFixture(repo)
	email := new(MockEmailSender)
	email.On("SendEmail", mock.Anything, mock.Anything).Return(errors.New("smtp unreachable")).Once()
	sms := new(MockSMSSender)

	cmd, err := commands.NewProcessNotificationQueueCommand(5)
	require.NoError(t, err)

	h := commands.NewProcessNotificationQueueCommandHandler(factory, email, sms, nopLogger{}, testMetrics)
	processed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, 1, processed)
	repo.AssertExpectations(t)
	email.AssertExpectations(t)
}

func TestProcessNotificationQueueCommandHandler_Handle_EmptyQueue(t *testing.T) {
	ctx := t.Context()

	repo := new(MockNotificationRepository)
	repo.On("ClaimBatch", mock.Anything, 10, mock.AnythingOfType("time.Time")).
		Return([]*notification.QueueItem{}, nil).Once()

	factory, _ := dispatchFixture(repo)

	cmd, err := commands.NewProcessNotificationQueueCommand(10)
	require.NoError(t, err)

	h := commands.NewProcessNotificationQueueCommandHandler(
		factory, new(MockEmailSender), new(MockSMSSender), nopLogger{}, testMetrics,
	)
	processed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Zero(t, processed)
	repo.AssertNotCalled(t, "AddNotification", mock.Anything, mock.Anything)
}

func TestNewProcessNotificationQueueCommand_InvalidBatchSize(t *testing.T) {
	_, err := commands.NewProcessNotificationQueueCommand(0)
	require.ErrorIs(t, err, commands.ErrBatchSizeIsInvalid)
}

func TestReclaimStaleCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	repo := new(MockNotificationRepository)
	repo.On("RequeueStale", mock.Anything, mock.AnythingOfType("time.Time")).Return(3, nil).Once()

	factory, _ := dispatchFixture(repo)

	cmd, err := commands.NewReclaimStaleCommand(5 * time.Minute)
	require.NoError(t, err)

	h := commands.NewReclaimStaleCommandHandler(factory, nopLogger{})
	reclaimed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, 3, reclaimed)
	repo.AssertExpectations(t)
}

func TestNewReclaimStaleCommand_InvalidAge(t *testing.T) {
	_, err := commands.NewReclaimStaleCommand(0)
	require.ErrorIs(t, err, commands.ErrOlderThanIsInvalid)
}
