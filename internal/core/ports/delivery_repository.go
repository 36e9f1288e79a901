package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/tracking"
)

// DeliveryRecordRepository persists the delivery tracker's records.
type DeliveryRecordRepository interface {
	// Add fails with errs.ErrDuplicateOrder when a record for the id exists.
	Add(ctx context.Context, aggregate *tracking.Record) error
	Update(ctx context.Context, aggregate *tracking.Record) error

	// Get returns errs.ErrObjectNotFound for an unknown id.
	Get(ctx context.Context, id kernel.OrderID) (*tracking.Record, error)
}

// DeliveryStatusReader is the read-only view of a tracker the ledger relies
// on before releasing funds to a seller. It never fails for an unknown id;
// such ids report tracking.None.
type DeliveryStatusReader interface {
	DeliveryStatus(ctx context.Context, id kernel.OrderID) (tracking.Status, error)
}

// TrackerRegistry resolves the tracker address bound to the platform.
// ok is false when no tracker is hosted under that address.
type TrackerRegistry interface {
	Resolve(tracker kernel.Party) (reader DeliveryStatusReader, ok bool)
}
