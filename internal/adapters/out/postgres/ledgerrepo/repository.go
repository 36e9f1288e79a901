package ledgerrepo

import (
	"context"
	"errors"

	"marketplace/internal/adapters/out/postgres/dialect"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/ledger"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const orderSequence = "ledger_order_id"

var ErrSequenceNotSeeded = errors.New("order id sequence is missing, run migrations first")

// GormOrderRepository implements LedgerOrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(aggregate kernel.Aggregate)
}

// NewGormOrderRepository creates a new GORM ledger order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// NextOrderID advances the order counter. The counter row is written inside
// the current transaction, so concurrent creators queue on it and a rollback
// returns the id.
func (r *GormOrderRepository) NextOrderID(ctx context.Context) (kernel.OrderID, error) {
	db := r.db.WithContext(ctx)

	result := db.Model(&SequenceDTO{}).
		Where("name = ?", orderSequence).
		UpdateColumn("value", gorm.Expr("value + 1"))
	if result.Error != nil {
		return 0, result.Error
	}

	if result.RowsAffected == 0 {
		return 0, ErrSequenceNotSeeded
	}

	var seq SequenceDTO
	if err := db.First(&seq, "name = ?", orderSequence).Error; err != nil {
		return 0, err
	}

	return kernel.NewOrderID(seq.Value)
}

// SeedSequences creates the order counter at zero unless it already exists.
func SeedSequences(db *gorm.DB) error {
	return db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&SequenceDTO{Name: orderSequence, Value: 0}).Error
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *ledger.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if dialect.IsUniqueViolation(err) {
			return errs.NewDuplicateOrderError("Order already exists")
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

// Update writes the order if nobody changed it since it was loaded.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *ledger.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"status":            dto.Status,
			"escrow_status":     dto.EscrowStatus,
			"dispute_exists":    dto.DisputeExists,
			"dispute_opened_by": dto.DisputeOpenedBy,
			"dispute_reason":    dto.DisputeReason,
			"dispute_outcome":   dto.DisputeOutcome,
			"version":           dto.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&OrderDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", dto.ID)
		}
		return errs.NewVersionIsInvalidError("order")
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

// Get retrieves an order by id.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*ledger.Order, error) {
	order, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errs.NewObjectNotFoundError("order", id.Int64())
	}
	return order, nil
}

// Find retrieves an order by id, locking the row on PostgreSQL.
func (r *GormOrderRepository) Find(ctx context.Context, id kernel.OrderID) (*ledger.Order, error) {
	if id < 1 {
		return nil, nil
	}

	var dto OrderDTO
	err := dialect.ForUpdate(r.db.WithContext(ctx)).First(&dto, "id = ?", id.Int64()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}
