package deliveryrepo

import (
	"context"
	"errors"

	"marketplace/internal/adapters/out/postgres/dialect"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/tracking"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRecordRepository implements DeliveryRecordRepository using GORM.
type GormRecordRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(aggregate kernel.Aggregate)
}

func NewGormRecordRepository(db *gorm.DB, tracker aggregateTracker) *GormRecordRepository {
	return &GormRecordRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add registers a record. Each order id can be registered once.
func (r *GormRecordRepository) Add(ctx context.Context, aggregate *tracking.Record) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	var count int64
	if err := db.Model(&RecordDTO{}).Where("order_id = ?", dto.OrderID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errs.NewDuplicateOrderError("Order already exists")
	}

	if err := db.Create(&dto).Error; err != nil {
		if dialect.IsUniqueViolation(err) {
			return errs.NewDuplicateOrderError("Order already exists")
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

func (r *GormRecordRepository) Update(ctx context.Context, aggregate *tracking.Record) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&RecordDTO{}).
		Where("order_id = ? AND version = ?", dto.OrderID, dto.Version).
		Updates(map[string]any{
			"courier": dto.Courier,
			"status":  dto.Status,
			"version": dto.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&RecordDTO{}).Where("order_id = ?", dto.OrderID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("delivery", dto.OrderID)
		}
		return errs.NewVersionIsInvalidError("delivery")
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

func (r *GormRecordRepository) Get(ctx context.Context, id kernel.OrderID) (*tracking.Record, error) {
	var dto RecordDTO
	err := dialect.ForUpdate(r.db.WithContext(ctx)).First(&dto, "order_id = ?", id.Int64()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.Int64())
		}
		return nil, err
	}

	return toDomain(dto)
}
