// Package postgres provides the GORM-based Unit of Work shared by every
// repository of the marketplace. A unit of work owns one database
// transaction, hands out repositories bound to it and, on Commit, writes the
// domain events of every aggregate those repositories touched to the outbox
// before the transaction is committed.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db, trackerAddress)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	order, err := uow.OrderRepository().Find(ctx, id)
//	// ... mutate the aggregate
//	if err := uow.OrderRepository().Update(ctx, order); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides isolated transactions
//   - Multiple goroutines should use separate UnitOfWork instances
//   - Repositories lock the rows they load on PostgreSQL and compare
//     versions on write, so a lost race surfaces as errs.ErrVersionIsInvalid
package postgres

import (
	"context"

	"marketplace/internal/adapters/out/postgres/deliveryrepo"
	"marketplace/internal/adapters/out/postgres/ledgerrepo"
	"marketplace/internal/adapters/out/postgres/outboxrepo"
	"marketplace/internal/adapters/out/postgres/platformrepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db       *gorm.DB
	trackers []kernel.Party
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. trackers lists the tracker addresses hosted by this deployment;
// a platform bound to any other address has no reachable tracker.
func NewGormUnitOfWorkFactory(db *gorm.DB, trackers ...kernel.Party) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, trackers: trackers}
}

// Create produces a new UnitOfWork instance ready for business transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.CreateGorm()
}

// CreateGorm is Create returning the concrete type, for composition code
// that adapts it to narrower unit of work interfaces.
func (f *GormUnitOfWorkFactory) CreateGorm() *GormUnitOfWork {
	return &GormUnitOfWork{
		db:       f.db,
		trackers: f.trackers,
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate changes
// for business operations.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackers          []kernel.Party
	trackedAggregates []kernel.Aggregate
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit writes the pending domain events to the outbox and commits.
// Events are cleared from their aggregates only once the commit succeeded.
//
// Returns error if no active transaction exists or if the commit operation fails.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	outbox := outboxrepo.NewGormOutboxRepository(uow.tx)
	for _, aggregate := range uow.trackedAggregates {
		if err := outbox.Append(ctx, aggregate.DomainEvents()...); err != nil {
			_ = uow.Rollback(ctx)
			return err
		}
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.trackedAggregates = nil
		return err
	}

	for _, aggregate := range uow.trackedAggregates {
		aggregate.ClearDomainEvents()
	}
	uow.trackedAggregates = nil
	return nil
}

// Rollback discards all changes made within the current transaction and
// forgets the tracked aggregates.
//
// Returns error if no active transaction exists or if the rollback operation fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	uow.trackedAggregates = nil
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository provides access to ledger orders within the unit of work.
// Repository operations will execute within the current transaction if one is active,
// otherwise they use the main database connection for immediate execution.
func (uow *GormUnitOfWork) OrderRepository() ports.LedgerOrderRepository {
	return ledgerrepo.NewGormOrderRepository(uow.conn(), uow)
}

// PlatformRepository provides access to the platform account within the unit of work.
func (uow *GormUnitOfWork) PlatformRepository() ports.PlatformRepository {
	return platformrepo.NewGormPlatformRepository(uow.conn(), uow)
}

// DeliveryRepository provides access to delivery records within the unit of work.
func (uow *GormUnitOfWork) DeliveryRepository() ports.DeliveryRecordRepository {
	return deliveryrepo.NewGormRecordRepository(uow.conn(), uow)
}

// TrackerRegistry resolves hosted trackers. Their status reads run inside the
// current transaction, so a release sees the same snapshot it writes against.
func (uow *GormUnitOfWork) TrackerRegistry() ports.TrackerRegistry {
	return deliveryrepo.NewRegistry(uow.conn(), uow.trackers...)
}

// OutboxRepository provides access to outbox messages within the unit of work.
func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

// TrackAggregate registers an aggregate whose events must reach the outbox.
// Repositories call it after every successful Add or Update.
func (uow *GormUnitOfWork) TrackAggregate(aggregate kernel.Aggregate) {
	for _, tracked := range uow.trackedAggregates {
		if tracked == aggregate {
			return
		}
	}
	uow.trackedAggregates = append(uow.trackedAggregates, aggregate)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
