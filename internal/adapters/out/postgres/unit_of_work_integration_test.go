package postgres_test

import (
	"context"
	"sync"
	"testing"

	postgres_adapter "marketplace/internal/adapters/out/postgres"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/ledger"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite runs the unit of work against a real
// PostgreSQL, where row locks and concurrent transactions behave as in
// production.
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
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := postgres_adapter.OpenPostgres(dsn)
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db, trackerID)
}

// SetupTest truncates every table and resets the order counter.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE ledger_orders, platforms, delivery_records, outbox_messages").Error
	suite.Require().NoError(err)
	suite.Require().NoError(suite.db.Exec("UPDATE sequences SET value = 0").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) createOrder(ctx context.Context) (kernel.OrderID, error) {
	uow := suite.factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	id, err := uow.OrderRepository().NextOrderID(ctx)
	if err != nil {
		return 0, err
	}
	order, err := ledger.NewOrder(id, buyer, seller, oneEther, oneEther)
	if err != nil {
		return 0, err
	}
	if err = uow.OrderRepository().Add(ctx, order); err != nil {
		return 0, err
	}
	return id, uow.Commit(ctx)
}

// TestConcurrentCreatorsGetDistinctIDs checks that the counter row hands out
// every id exactly once under contention.
func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentCreatorsGetDistinctIDs() {
	ctx := context.Background()
	const creators = 8

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids = make(map[kernel.OrderID]struct{})
	)
	for range creators {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := suite.createOrder(ctx)
			suite.NoError(err)

			mu.Lock()
			ids[id] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	suite.Len(ids, creators)
	for want := 1; want <= creators; want++ {
		suite.Contains(ids, kernel.OrderID(want))
	}
}

// TestRowLockSerializesWriters checks that a second writer waits for the
// first and then sees its committed state instead of overwriting it.
func (suite *UnitOfWorkIntegrationTestSuite) TestRowLockSerializesWriters() {
	ctx := context.Background()
	id, err := suite.createOrder(ctx)
	suite.Require().NoError(err)

	first := suite.factory.Create()
	suite.Require().NoError(first.Begin(ctx))
	order, err := first.OrderRepository().Get(ctx, id)
	suite.Require().NoError(err)

	secondDone := make(chan error, 1)
	go func() {
		second := suite.factory.Create()
		if err := second.Begin(ctx); err != nil {
			secondDone <- err
			return
		}
		defer func() { _ = second.Rollback(ctx) }()

		order, err := second.OrderRepository().Get(ctx, id)
		if err != nil {
			secondDone <- err
			return
		}
		secondDone <- order.RaiseDispute(buyer, "late")
	}()

	suite.Require().NoError(order.RaiseDispute(seller, "first"))
	suite.Require().NoError(first.OrderRepository().Update(ctx, order))
	suite.Require().NoError(first.Commit(ctx))

	err = <-secondDone
	suite.Require().ErrorIs(err, errs.ErrInvalidState)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestStaleUpdateIsRejected() {
	ctx := context.Background()
	id, err := suite.createOrder(ctx)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	stale, err := uow.OrderRepository().Get(ctx, id)
	suite.Require().NoError(err)
	suite.Require().NoError(stale.RaiseDispute(buyer, "broken"))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, stale))
	suite.Require().NoError(uow.Commit(ctx))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	err = uow.OrderRepository().Update(ctx, stale)
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWritesOutboxInSameTransaction() {
	ctx := context.Background()
	_, err := suite.createOrder(ctx)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	pending, err := uow.OutboxRepository().Pending(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	suite.Equal(ledger.OrderCreatedEventName, pending[0].Name)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("requires docker")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
