// Package ledgerrepo maps ledger orders, with their escrow and dispute
// records, to a single table row per order id.
package ledgerrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/ledger"
)

// OrderDTO is one row of ledger_orders. Amounts are kept as base-10 text so
// that neither dialect rounds values above 2^63.
type OrderDTO struct {
	ID              int64  `gorm:"primaryKey;autoIncrement:false"`
	Buyer           string `gorm:"type:varchar(42);not null;index"`
	Seller          string `gorm:"type:varchar(42);not null;index"`
	Amount          string `gorm:"type:varchar(80);not null"`
	Status          int    `gorm:"not null;index"`
	EscrowStatus    int    `gorm:"not null;index"`
	DisputeExists   bool   `gorm:"not null"`
	DisputeOpenedBy string `gorm:"type:varchar(42)"`
	DisputeReason   string `gorm:"type:text"`
	DisputeOutcome  int    `gorm:"not null"`
	Version         int    `gorm:"not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (OrderDTO) TableName() string {
	return "ledger_orders"
}

// SequenceDTO is a named counter advanced inside the caller's transaction.
type SequenceDTO struct {
	Name  string `gorm:"type:varchar(64);primaryKey"`
	Value int64  `gorm:"not null"`
}

func (SequenceDTO) TableName() string {
	return "sequences"
}

func fromDomain(o *ledger.Order) OrderDTO {
	d := o.Dispute()

	dto := OrderDTO{
		ID:             o.ID().Int64(),
		Buyer:          o.Buyer().String(),
		Seller:         o.Seller().String(),
		Amount:         o.Amount().String(),
		Status:         int(o.Status()),
		EscrowStatus:   int(o.EscrowStatus()),
		DisputeExists:  d.Exists(),
		DisputeReason:  d.Reason(),
		DisputeOutcome: int(d.Outcome()),
		Version:        o.Version(),
	}
	if d.Exists() {
		dto.DisputeOpenedBy = d.OpenedBy().String()
	}
	return dto
}

func toDomain(dto OrderDTO) (*ledger.Order, error) {
	buyer, err := kernel.NewParty(dto.Buyer)
	if err != nil {
		return nil, err
	}
	seller, err := kernel.NewParty(dto.Seller)
	if err != nil {
		return nil, err
	}
	amount, err := kernel.AmountFromString(dto.Amount)
	if err != nil {
		return nil, err
	}

	openedBy := kernel.ZeroParty()
	if dto.DisputeOpenedBy != "" {
		if openedBy, err = kernel.NewParty(dto.DisputeOpenedBy); err != nil {
			return nil, err
		}
	}

	dispute := ledger.RestoreDispute(
		dto.DisputeExists,
		openedBy,
		dto.DisputeReason,
		ledger.Outcome(dto.DisputeOutcome),
	)

	return ledger.RestoreOrder(
		kernel.OrderID(dto.ID),
		buyer,
		seller,
		amount,
		ledger.OrderStatus(dto.Status),
		ledger.EscrowStatus(dto.EscrowStatus),
		dispute,
		dto.Version,
	)
}
