// Package deliveryrepo persists delivery-tracking records and exposes the
// read-only status view the ledger consults through the tracker registry.
package deliveryrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/tracking"
)

type RecordDTO struct {
	OrderID   int64  `gorm:"primaryKey;autoIncrement:false"`
	Buyer     string `gorm:"type:varchar(42);not null"`
	Seller    string `gorm:"type:varchar(42);not null"`
	Courier   string `gorm:"type:varchar(42);not null"`
	Status    int    `gorm:"not null;index"`
	Version   int    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (RecordDTO) TableName() string {
	return "delivery_records"
}

func fromDomain(r *tracking.Record) RecordDTO {
	return RecordDTO{
		OrderID: r.OrderID().Int64(),
		Buyer:   r.Buyer().String(),
		Seller:  r.Seller().String(),
		Courier: r.Courier().String(),
		Status:  int(r.Status()),
		Version: r.Version(),
	}
}

func toDomain(dto RecordDTO) (*tracking.Record, error) {
	buyer, err := kernel.NewParty(dto.Buyer)
	if err != nil {
		return nil, err
	}
	seller, err := kernel.NewParty(dto.Seller)
	if err != nil {
		return nil, err
	}
	courier, err := kernel.NewParty(dto.Courier)
	if err != nil {
		return nil, err
	}

	return tracking.RestoreRecord(
		kernel.OrderID(dto.OrderID),
		buyer,
		seller,
		courier,
		tracking.Status(dto.Status),
		dto.Version,
	)
}
