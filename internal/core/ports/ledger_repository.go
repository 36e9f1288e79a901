package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/ledger"
)

// LedgerOrderRepository persists ledger orders together with their escrow and
// dispute records, which share the order id.
type LedgerOrderRepository interface {
	// NextOrderID reserves the next sequential id. The reservation is part of
	// the surrounding transaction and is released if it rolls back.
	NextOrderID(ctx context.Context) (kernel.OrderID, error)

	// Add persists a new order. Its events go to the outbox on commit.
	Add(ctx context.Context, aggregate *ledger.Order) error

	// Update persists changes conditionally on the loaded version and fails
	// with errs.ErrVersionIsInvalid when another writer got there first.
	Update(ctx context.Context, aggregate *ledger.Order) error

	// Get returns errs.ErrObjectNotFound for an id that was never created.
	Get(ctx context.Context, id kernel.OrderID) (*ledger.Order, error)

	// Find is Get that reports an unknown id as nil, nil.
	Find(ctx context.Context, id kernel.OrderID) (*ledger.Order, error)
}

// PlatformRepository persists the single Platform account.
type PlatformRepository interface {
	Add(ctx context.Context, aggregate *ledger.Platform) error
	Update(ctx context.Context, aggregate *ledger.Platform) error

	// Get returns errs.ErrObjectNotFound until the platform is initialized.
	Get(ctx context.Context) (*ledger.Platform, error)
}
