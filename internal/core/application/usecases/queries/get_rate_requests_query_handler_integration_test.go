package queries_test

import (
	"context"
	"testing"
	"time"

	"freightflow/internal/adapters/out/postgres/raterequestrepo"
	"freightflow/internal/core/application/usecases/queries"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/raterequest"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregate tracker
// used when seeding data through the repository.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// GetRateRequestsQueryHandlerIntegrationTestSuite verifies the worklist
// query against the real schema produced by migration, including ordering
// and filters.
type GetRateRequestsQueryHandlerIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *raterequestrepo.GormRateRequestRepository
	handler    queries.GetRateRequestsQueryHandler
}

func (suite *GetRateRequestsQueryHandlerIntegrationTestSuite) SetupSuite() {
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
	))
}

func (suite *GetRateRequestsQueryHandlerIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE rate_requests, rate_request_responses").Error)

	tracker := new(MockAggregateTracker)
	tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.repository = raterequestrepo.NewGormRateRequestRepository(suite.db, tracker)
	suite.handler = queries.NewGetRateRequestsQueryHandler(suite.db)
}

func (suite *GetRateRequestsQueryHandlerIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetRateRequestsQueryHandlerIntegrationTestSuite) TestEmptyWorklist_ReturnsNoRows() {
	query, err := queries.NewGetRateRequestsQuery("", nil)
	suite.Require().NoError(err)

	rows, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Empty(rows)
}

func (suite *GetRateRequestsQueryHandlerIntegrationTestSuite) TestWorklist_NewestFirst() {
	ctx := context.Background()

	older := suite.createRateRequest(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, older))

	// Insert timestamps carry the creation order.
	time.Sleep(10 * time.Millisecond)

	newer := suite.createRateRequest(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, newer))

	query, err := queries.NewGetRateRequestsQuery("", nil)
	suite.Require().NoError(err)

	rows, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)

	suite.Equal(newer.ID(), rows[0].ID)
	suite.Equal(older.ID(), rows[1].ID)
	suite.Equal(0, rows[0].ResponseCount)
}

func (suite *GetRateRequestsQueryHandlerIntegrationTestSuite) TestWorklist_FiltersBySalesperson() {
	ctx := context.Background()

	salespersonID := kernel.NewUUID()
	mine := suite.createRateRequest(salespersonID)
	suite.Require().NoError(suite.repository.Add(ctx, mine))

	other := suite.createRateRequest(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, other))

	query, err := queries.NewGetRateRequestsQuery("", &salespersonID)
	suite.Require().NoError(err)

	rows, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	suite.Equal(mine.ID(), rows[0].ID)
	suite.Equal(string(raterequest.StatusPending), rows[0].Status)
}

func (suite *GetRateRequestsQueryHandlerIntegrationTestSuite) createRateRequest(salespersonID kernel.UUID) *raterequest.RateRequest {
	aggregate, err := raterequest.NewRateRequest(
		kernel.NewUUID(),
		raterequest.ModeSea,
		raterequest.TypeFCL,
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		nil,
		21000,
		time.Now().Add(21*24*time.Hour),
		false,
		salespersonID,
		nil,
	)
	suite.Require().NoError(err)
	return aggregate
}

func TestGetRateRequestsQueryHandlerIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(GetRateRequestsQueryHandlerIntegrationTestSuite))
}
