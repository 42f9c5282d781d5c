package shipmentrepo_test

import (
	"context"
	"testing"
	"time"

	"mes/internal/adapters/out/postgres/shipmentrepo"
	"mes/internal/core/domain/model/docnumber"
	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/shipment"
	"mes/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// ShipmentRepositoryIntegrationTestSuite verifies shipment persistence
// against a real PostgreSQL instance.
type ShipmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *shipmentrepo.GormShipmentRepository
	tracker    *MockAggregateTracker
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&shipmentrepo.ShipmentDTO{}))
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE shipments").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = shipmentrepo.NewGormShipmentRepository(suite.db, suite.tracker)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()

	number, err := docnumber.New(docnumber.Shipment, "20260221", 12)
	suite.Require().NoError(err)
	workOrderID := kernel.NewUUID()
	shp, err := shipment.NewShipment(kernel.NewUUID(), number, workOrderID)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", shp.ID(), shp).Once()

	suite.Require().NoError(suite.repository.Add(ctx, shp))

	loaded, err := suite.repository.Get(ctx, shp.ID())
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(shp.ID()))
	suite.Equal("SHP-20260221-012", loaded.Number().String())
	suite.True(loaded.WorkOrderID().IsEqual(workOrderID))
	suite.WithinDuration(shp.CreatedAt(), loaded.CreatedAt(), time.Second)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_DuplicateNumber_Fails() {
	ctx := context.Background()

	number, err := docnumber.New(docnumber.Shipment, "20260221", 1)
	suite.Require().NoError(err)
	first, err := shipment.NewShipment(kernel.NewUUID(), number, kernel.NewUUID())
	suite.Require().NoError(err)
	second, err := shipment.NewShipment(kernel.NewUUID(), number, kernel.NewUUID())
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	suite.Require().Error(suite.repository.Add(ctx, second),
		"the unique index on number must reject duplicates")
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_UnknownID_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestShipmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ShipmentRepositoryIntegrationTestSuite))
}
