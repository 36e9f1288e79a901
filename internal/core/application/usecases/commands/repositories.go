// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to ledger orders within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.LedgerOrderRepository
	}

	// PlatformRepoFactory provides access to the platform account within a transaction.
	PlatformRepoFactory interface {
		PlatformRepository() ports.PlatformRepository
	}

	// DeliveryRepoFactory provides access to delivery records within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRecordRepository
	}

	// TrackerRegistryFactory resolves trackers inside the transaction.
	TrackerRegistryFactory interface {
		TrackerRegistry() ports.TrackerRegistry
	}

	// PlatformUoW manages transactions that touch only the platform account.
	PlatformUoW interface {
		TxManager
		PlatformRepoFactory
	}

	// PlatformUoWFactory creates new platform unit of work instances.
	PlatformUoWFactory interface {
		Create() PlatformUoW
	}

	// LedgerUoW manages transactions across orders, the platform account
	// and the bound tracker.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   platform, err := uow.PlatformRepository().Get(ctx)
	//   order, err := uow.OrderRepository().Find(ctx, id)
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	LedgerUoW interface {
		TxManager
		OrderRepoFactory
		PlatformRepoFactory
		TrackerRegistryFactory
	}

	// LedgerUoWFactory creates new ledger unit of work instances.
	LedgerUoWFactory interface {
		Create() LedgerUoW
	}

	// DeliveryUoW manages transactions for tracker-only operations.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// OutboxRepoFactory provides access to outbox messages within a transaction.
	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// OutboxUoW manages the transactions of the outbox dispatcher.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
