package notificationrepo_test

import (
	"context"
	"testing"
	"time"

	"freightflow/internal/adapters/out/postgres/notificationrepo"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/notification"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NotificationRepositoryIntegrationTestSuite provides integration tests for
// the notification repository, focusing on the claim and reclaim semantics
// of the dispatch queue.
type NotificationRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *notificationrepo.GormNotificationRepository
}

func (suite *NotificationRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&notificationrepo.NotificationDTO{},
		&notificationrepo.QueueItemDTO{},
	))
}

func (suite *NotificationRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE notifications, notification_queue").Error)
	suite.repository = notificationrepo.NewGormNotificationRepository(suite.db)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestAddAndGetByUser_NewestFirst() {
	ctx := context.Background()
	userID := kernel.NewUUID()

	first, err := notification.NewNotification(userID, notification.ChannelSystem, "First", "first body", nil)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.AddNotification(ctx, first))

	second, err := notification.NewNotification(userID, notification.ChannelSystem, "Second", "second body", nil)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.AddNotification(ctx, second))

	notifications, err := suite.repository.GetByUser(ctx, userID, 10)
	suite.Require().NoError(err)
	suite.Require().Len(notifications, 2)
	suite.Equal("Second", notifications[0].Subject())
	suite.Equal("First", notifications[1].Subject())
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestUpdateNotificationStatus() {
	ctx := context.Background()

	n, err := notification.NewNotification(kernel.NewUUID(), notification.ChannelEmail, "Subject", "body", nil)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.AddNotification(ctx, n))

	suite.Require().NoError(
		suite.repository.UpdateNotificationStatus(ctx, n.ID(), notification.DeliverySent))

	notifications, err := suite.repository.GetByUser(ctx, n.User(), 1)
	suite.Require().NoError(err)
	suite.Require().Len(notifications, 1)
	suite.Equal(notification.DeliverySent, notifications[0].Status())
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestMarkRead_StampsOwnNotificationOnce() {
	ctx := context.Background()
	userID := kernel.NewUUID()

	n, err := notification.NewNotification(userID, notification.ChannelSystem, "Subject", "body", nil)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.AddNotification(ctx, n))

	suite.Require().NoError(suite.repository.MarkRead(ctx, n.ID(), userID))

	notifications, err := suite.repository.GetByUser(ctx, userID, 1)
	suite.Require().NoError(err)
	suite.Require().Len(notifications, 1)
	suite.Require().NotNil(notifications[0].ReadAt())
	firstRead := *notifications[0].ReadAt()

	// Re-reading keeps the first read timestamp.
	suite.Require().NoError(suite.repository.MarkRead(ctx, n.ID(), userID))

	notifications, err = suite.repository.GetByUser(ctx, userID, 1)
	suite.Require().NoError(err)
	suite.Require().NotNil(notifications[0].ReadAt())
	suite.True(notifications[0].ReadAt().Equal(firstRead))
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestMarkRead_ForeignNotificationIsNoop() {
	ctx := context.Background()
	ownerID := kernel.NewUUID()

	n, err := notification.NewNotification(ownerID, notification.ChannelSystem, "Subject", "body", nil)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.AddNotification(ctx, n))

	suite.Require().NoError(suite.repository.MarkRead(ctx, n.ID(), kernel.NewUUID()))

	notifications, err := suite.repository.GetByUser(ctx, ownerID, 1)
	suite.Require().NoError(err)
	suite.Require().Len(notifications, 1)
	suite.Nil(notifications[0].ReadAt())
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestMarkAllRead_CountsOnlyUnread() {
	ctx := context.Background()
	userID := kernel.NewUUID()

	for _, subject := range []string{"First", "Second"} {
		n, err := notification.NewNotification(userID, notification.ChannelSystem, subject, "body", nil)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.repository.AddNotification(ctx, n))
	}

	other, err := notification.NewNotification(kernel.NewUUID(), notification.ChannelSystem, "Other", "body", nil)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.AddNotification(ctx, other))

	updated, err := suite.repository.MarkAllRead(ctx, userID)
	suite.Require().NoError(err)
	suite.Equal(2, updated)

	// Everything is read now, so a second pass flips nothing.
	updated, err = suite.repository.MarkAllRead(ctx, userID)
	suite.Require().NoError(err)
	suite.Equal(0, updated)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestClaimBatch_FlipsToProcessing() {
	ctx := context.Background()

	suite.enqueueItems(3)

	claimedAt := time.Now().UTC()
	claimed, err := suite.repository.ClaimBatch(ctx, 2, claimedAt)
	suite.Require().NoError(err)
	suite.Require().Len(claimed, 2)

	for _, item := range claimed {
		suite.Equal(notification.QueueProcessing, item.Status())
		suite.Require().NotNil(item.ClaimedAt())
	}

	// Only the unclaimed item remains available.
	remaining, err := suite.repository.ClaimBatch(ctx, 10, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Len(remaining, 1)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestClaimBatch_EmptyQueue() {
	claimed, err := suite.repository.ClaimBatch(context.Background(), 10, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Empty(claimed)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestMarkDone_FinishesItem() {
	ctx := context.Background()

	suite.enqueueItems(1)

	claimed, err := suite.repository.ClaimBatch(ctx, 1, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().Len(claimed, 1)

	suite.Require().NoError(suite.repository.MarkDone(ctx, claimed[0].ID()))

	// A finished item is never reclaimed.
	reclaimed, err := suite.repository.RequeueStale(ctx, time.Now().Add(time.Hour))
	suite.Require().NoError(err)
	suite.Equal(0, reclaimed)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestRequeueStale_ReturnsAbandonedClaims() {
	ctx := context.Background()

	suite.enqueueItems(2)

	staleClaim := time.Now().Add(-10 * time.Minute)
	claimed, err := suite.repository.ClaimBatch(ctx, 2, staleClaim)
	suite.Require().NoError(err)
	suite.Require().Len(claimed, 2)

	reclaimed, err := suite.repository.RequeueStale(ctx, time.Now().Add(-notification.ReclaimAfter))
	suite.Require().NoError(err)
	suite.Equal(2, reclaimed)

	// Reclaimed items are claimable again.
	claimed, err = suite.repository.ClaimBatch(ctx, 10, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Len(claimed, 2)
}

func (suite *NotificationRepositoryIntegrationTestSuite) enqueueItems(count int) {
	items := make([]*notification.QueueItem, 0, count)
	for i := 0; i < count; i++ {
		item, err := notification.NewQueueItem(
			kernel.NewUUID(), notification.ChannelSystem, "Subject", "body", nil)
		suite.Require().NoError(err)
		items = append(items, item)
	}

	suite.Require().NoError(suite.repository.Enqueue(context.Background(), items))
}

func TestNotificationRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationRepositoryIntegrationTestSuite))
}
