// Package platformrepo stores the single platform account row.
package platformrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/ledger"
)

// platformRowID is the primary key of the only platform row.
const platformRowID = 1

type PlatformDTO struct {
	ID             int    `gorm:"primaryKey;autoIncrement:false"`
	Owner          string `gorm:"type:varchar(42);not null"`
	Arbitrator     string `gorm:"type:varchar(42);not null"`
	FeeBasisPoints int    `gorm:"not null"`
	Balance        string `gorm:"type:varchar(80);not null"`
	Tracker        string `gorm:"type:varchar(42);not null"`
	Version        int    `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (PlatformDTO) TableName() string {
	return "platforms"
}

func fromDomain(p *ledger.Platform) PlatformDTO {
	tracker, _ := p.Tracker()
	return PlatformDTO{
		ID:             platformRowID,
		Owner:          p.Owner().String(),
		Arbitrator:     p.Arbitrator().String(),
		FeeBasisPoints: p.Fee().Int(),
		Balance:        p.Balance().String(),
		Tracker:        tracker.String(),
		Version:        p.Version(),
	}
}

func toDomain(dto PlatformDTO) (*ledger.Platform, error) {
	owner, err := kernel.NewParty(dto.Owner)
	if err != nil {
		return nil, err
	}
	arbitrator, err := kernel.NewParty(dto.Arbitrator)
	if err != nil {
		return nil, err
	}
	tracker, err := kernel.NewParty(dto.Tracker)
	if err != nil {
		return nil, err
	}
	balance, err := kernel.AmountFromString(dto.Balance)
	if err != nil {
		return nil, err
	}

	return ledger.RestorePlatform(
		owner,
		arbitrator,
		kernel.BasisPoints(dto.FeeBasisPoints),
		balance,
		tracker,
		dto.Version,
	)
}
