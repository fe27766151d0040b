package postgres_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	postgres_adapter "dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite runs the unit of work against a real PostgreSQL.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres_adapter.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30*time.Second)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(ctx, db, slog.Default()))

	clock := kernel.FixedClock(time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC))
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db, clock, slog.Default())
}

// SetupTest resets the state row to an empty document.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("UPDATE dispatch_state SET payload = '{}' WHERE id = 1").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) addCourier(uow ports.UnitOfWork, id kernel.ID, name string) {
	ctx := context.Background()
	repo := uow.StateRepository()

	state, err := repo.GetForUpdate(ctx)
	suite.Require().NoError(err)

	c, err := courier.NewCourier(id, name, "")
	suite.Require().NoError(err)
	suite.Require().NoError(state.AddCourier(c))
	suite.Require().NoError(repo.Save(ctx, state))
}

func (suite *UnitOfWorkIntegrationTestSuite) storedCourierIDs() []kernel.ID {
	state, err := suite.factory.Reader().Get(context.Background())
	suite.Require().NoError(err)

	ids := make([]kernel.ID, 0)
	for _, c := range state.Couriers() {
		ids = append(ids, c.ID())
	}
	return ids
}

func (suite *UnitOfWorkIntegrationTestSuite) TestMigrate_IsRepeatable() {
	suite.Require().NoError(postgres_adapter.Migrate(context.Background(), suite.db, slog.Default()))

	var count int64
	suite.Require().NoError(suite.db.Table("dispatch_state").Count(&count).Error)
	suite.Equal(int64(1), count, "the state row is created exactly once")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreatesSeparateInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.StateRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "nested Begin is ignored")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().Error(uow.Commit(ctx), "commit without a transaction fails")
	suite.Require().NoError(uow.Rollback(ctx), "rollback after commit does nothing")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsState() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.addCourier(uow, "c1", "Motoboy 01")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal([]kernel.ID{"c1"}, suite.storedCourierIDs())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsState() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.addCourier(uow, "c1", "Motoboy 01")
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Empty(suite.storedCourierIDs())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestGetForUpdate_SerializesWriters() {
	ctx := context.Background()

	first := suite.factory.Create()
	suite.Require().NoError(first.Begin(ctx))
	suite.addCourier(first, "c1", "Motoboy 01")

	done := make(chan error, 1)
	go func() {
		second := suite.factory.Create()
		if err := second.Begin(ctx); err != nil {
			done <- err
			return
		}
		defer func() { _ = second.Rollback(ctx) }()

		repo := second.StateRepository()
		state, err := repo.GetForUpdate(ctx)
		if err != nil {
			done <- err
			return
		}
		c, err := courier.NewCourier("c2", "Motoboy 02", "")
		if err != nil {
			done <- err
			return
		}
		if err := state.AddCourier(c); err != nil {
			done <- err
			return
		}
		if err := repo.Save(ctx, state); err != nil {
			done <- err
			return
		}
		done <- second.Commit(ctx)
	}()

	select {
	case err := <-done:
		suite.FailNow("second writer did not wait for the lock", "err: %v", err)
	case <-time.After(300 * time.Millisecond):
	}

	suite.Require().NoError(first.Commit(ctx))
	suite.Require().NoError(<-done)

	suite.Equal([]kernel.ID{"c1", "c2"}, suite.storedCourierIDs(), "no update is lost")
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
