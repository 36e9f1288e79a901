package deliveryrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/tracking"
	"marketplace/internal/core/ports"

	"gorm.io/gorm"
)

var _ ports.DeliveryStatusReader = (*StatusReader)(nil)

// StatusReader answers status queries for one hosted tracker.
type StatusReader struct {
	db *gorm.DB
}

func NewStatusReader(db *gorm.DB) *StatusReader {
	return &StatusReader{db: db}
}

// DeliveryStatus reports tracking.None for ids that were never registered.
func (r *StatusReader) DeliveryStatus(ctx context.Context, id kernel.OrderID) (tracking.Status, error) {
	var dto RecordDTO
	err := r.db.WithContext(ctx).Select("status").First(&dto, "order_id = ?", id.Int64()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return tracking.None, nil
	}
	if err != nil {
		return tracking.None, err
	}
	return tracking.Status(dto.Status), nil
}

var _ ports.TrackerRegistry = (*Registry)(nil)

// Registry maps the tracker addresses this deployment hosts to readers
// bound to one database handle.
type Registry struct {
	db     *gorm.DB
	hosted map[kernel.Party]struct{}
}

func NewRegistry(db *gorm.DB, hosted ...kernel.Party) *Registry {
	set := make(map[kernel.Party]struct{}, len(hosted))
	for _, p := range hosted {
		if !p.IsZero() {
			set[p] = struct{}{}
		}
	}
	return &Registry{db: db, hosted: set}
}

func (r *Registry) Resolve(tracker kernel.Party) (ports.DeliveryStatusReader, bool) {
	if _, ok := r.hosted[tracker]; !ok {
		return nil, false
	}
	return NewStatusReader(r.db), true
}
