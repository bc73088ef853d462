package raterequestrepo_test

import (
	"context"
	"testing"
	"time"

	"freightflow/internal/adapters/out/postgres/raterequestrepo"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/raterequest"
	"freightflow/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// RateRequestRepositoryIntegrationTestSuite provides integration tests for
// RateRequestRepository using PostgreSQL containers to verify persistence,
// optimistic concurrency, and quote selection behavior.
type RateRequestRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *raterequestrepo.GormRateRequestRepository
	tracker    *MockAggregateTracker
}

func (suite *RateRequestRepositoryIntegrationTestSuite) SetupSuite() {
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
		&raterequestrepo.RateRequestDTO{},
		&raterequestrepo.ResponseDTO{},
		&raterequestrepo.LineQuoteDTO{},
	))
}

func (suite *RateRequestRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE rate_requests, rate_request_responses, rate_request_line_quotes").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = raterequestrepo.NewGormRateRequestRepository(suite.db, suite.tracker)
}

func (suite *RateRequestRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RateRequestRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()

	aggregate := suite.createRateRequest()
	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()

	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	retrieved, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.Equal(aggregate.ID(), retrieved.ID())
	suite.Equal(aggregate.RefNo().String(), retrieved.RefNo().String())
	suite.Equal(raterequest.ModeSea, retrieved.Mode())
	suite.Equal(raterequest.TypeFCL, retrieved.Type())
	suite.Equal(raterequest.StatusPending, retrieved.Status())
	suite.Equal(0, retrieved.Version())
	suite.Empty(retrieved.Responses())
	suite.Empty(retrieved.Quotes())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *RateRequestRepositoryIntegrationTestSuite) TestGet_NonExistent_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *RateRequestRepositoryIntegrationTestSuite) TestUpdate_BumpsVersion() {
	ctx := context.Background()

	aggregate := suite.createRateRequest()
	suite.tracker.On("TrackAggregate", aggregate.ID(), mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	reloaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(1, reloaded.Version())
}

func (suite *RateRequestRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsStateConflict() {
	ctx := context.Background()

	aggregate := suite.createRateRequest()
	suite.tracker.On("TrackAggregate", aggregate.ID(), mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	// Two readers restore the same version of the aggregate.
	first, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	// The first writer wins; the second lost the race.
	suite.Require().NoError(suite.repository.Update(ctx, first))

	err = suite.repository.Update(ctx, second)
	suite.Require().Error(err)

	var conflictErr *errs.StateConflictError
	suite.Require().ErrorAs(err, &conflictErr)
}

func (suite *RateRequestRepositoryIntegrationTestSuite) TestUpdate_NonExistent_ReturnsNotFoundError() {
	ctx := context.Background()

	aggregate := suite.createRateRequest()

	err := suite.repository.Update(ctx, aggregate)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *RateRequestRepositoryIntegrationTestSuite) TestReplaceSelectedQuote_KeepsSingleSelection() {
	ctx := context.Background()

	aggregate := suite.createRateRequest()
	suite.tracker.On("TrackAggregate", aggregate.ID(), mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	firstQuote, err := raterequest.NewLineQuote(
		aggregate.ID(), kernel.NewUUID(), []byte(`{"freight":1200}`), time.Now().Add(720*time.Hour))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.ReplaceSelectedQuote(ctx, aggregate.ID(), firstQuote))

	secondQuote, err := raterequest.NewLineQuote(
		aggregate.ID(), kernel.NewUUID(), []byte(`{"freight":1150}`), time.Now().Add(1440*time.Hour))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.ReplaceSelectedQuote(ctx, aggregate.ID(), secondQuote))

	retrieved, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().Len(retrieved.Quotes(), 2)

	selected := 0
	for _, q := range retrieved.Quotes() {
		if q.Selected() {
			selected++
			suite.Equal(secondQuote.ID(), q.ID())
		}
	}
	suite.Equal(1, selected)
}

func (suite *RateRequestRepositoryIntegrationTestSuite) createRateRequest() *raterequest.RateRequest {
	aggregate, err := raterequest.NewRateRequest(
		kernel.NewUUID(),
		raterequest.ModeSea,
		raterequest.TypeFCL,
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		nil,
		18000,
		time.Now().Add(14*24*time.Hour),
		false,
		kernel.NewUUID(),
		nil,
	)
	suite.Require().NoError(err)
	return aggregate
}

func TestRateRequestRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RateRequestRepositoryIntegrationTestSuite))
}
