package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes; the domain
// events of every tracked aggregate are written to the outbox on Commit.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit flushes the outbox and commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction and forgets tracked aggregates.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns a LedgerOrderRepository bound to the current transaction.
	OrderRepository() LedgerOrderRepository

	// PlatformRepository returns a PlatformRepository bound to the current transaction.
	PlatformRepository() PlatformRepository

	// DeliveryRepository returns a DeliveryRecordRepository bound to the current transaction.
	DeliveryRepository() DeliveryRecordRepository

	// TrackerRegistry resolves trackers whose status reads join the current transaction.
	TrackerRegistry() TrackerRegistry

	// OutboxRepository returns an OutboxRepository bound to the current transaction.
	OutboxRepository() OutboxRepository
}
