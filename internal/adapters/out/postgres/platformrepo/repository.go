package platformrepo

import (
	"context"
	"errors"

	"marketplace/internal/adapters/out/postgres/dialect"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/ledger"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPlatformRepository implements PlatformRepository using GORM.
type GormPlatformRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(aggregate kernel.Aggregate)
}

func NewGormPlatformRepository(db *gorm.DB, tracker aggregateTracker) *GormPlatformRepository {
	return &GormPlatformRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add stores the platform. A second Add fails because the row id is fixed.
func (r *GormPlatformRepository) Add(ctx context.Context, aggregate *ledger.Platform) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

// Update writes the platform conditionally on its loaded version.
func (r *GormPlatformRepository) Update(ctx context.Context, aggregate *ledger.Platform) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PlatformDTO{}).
		Where("id = ? AND version = ?", platformRowID, dto.Version).
		Updates(map[string]any{
			"arbitrator":       dto.Arbitrator,
			"fee_basis_points": dto.FeeBasisPoints,
			"balance":          dto.Balance,
			"tracker":          dto.Tracker,
			"version":          dto.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidError("platform")
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

// Get loads the platform, locking its row on PostgreSQL.
func (r *GormPlatformRepository) Get(ctx context.Context) (*ledger.Platform, error) {
	var dto PlatformDTO
	err := dialect.ForUpdate(r.db.WithContext(ctx)).First(&dto, "id = ?", platformRowID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("platform", platformRowID)
		}
		return nil, err
	}

	return toDomain(dto)
}
