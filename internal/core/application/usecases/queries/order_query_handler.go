package queries

import (
	"context"
	"database/sql"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/ledger"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// OrderQueryHandler serves the ledger's per-order read accessors.
//
// Example:
//
//	handler := NewOrderQueryHandler(db)
//	escrow, err := handler.GetEscrow(ctx, NewOrderQuery(id))
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // no such order
//	}
type OrderQueryHandler struct {
	db *gorm.DB
}

func NewOrderQueryHandler(db *gorm.DB) OrderQueryHandler {
	return OrderQueryHandler{db: db}
}

type orderRow struct {
	id              int64
	buyer           string
	seller          string
	amount          string
	status          int
	escrowStatus    int
	disputeExists   bool
	disputeOpenedBy sql.NullString
	disputeReason   sql.NullString
	disputeOutcome  int
}

func (h OrderQueryHandler) GetOrder(ctx context.Context, query OrderQuery) (OrderView, error) {
	row, err := h.load(ctx, query)
	if err != nil {
		return OrderView{}, err
	}

	buyer, seller, amount, err := row.common()
	if err != nil {
		return OrderView{}, err
	}

	return OrderView{
		ID:     kernel.OrderID(row.id),
		Buyer:  buyer,
		Seller: seller,
		Amount: amount,
		Status: ledger.OrderStatus(row.status),
	}, nil
}

func (h OrderQueryHandler) GetEscrow(ctx context.Context, query OrderQuery) (EscrowView, error) {
	row, err := h.load(ctx, query)
	if err != nil {
		return EscrowView{}, err
	}

	buyer, seller, amount, err := row.common()
	if err != nil {
		return EscrowView{}, err
	}

	return EscrowView{
		OrderID: kernel.OrderID(row.id),
		Buyer:   buyer,
		Seller:  seller,
		Amount:  amount,
		Status:  ledger.EscrowStatus(row.escrowStatus),
	}, nil
}

func (h OrderQueryHandler) GetDispute(ctx context.Context, query OrderQuery) (DisputeView, error) {
	row, err := h.load(ctx, query)
	if err != nil {
		return DisputeView{}, err
	}

	view := DisputeView{
		OrderID:  kernel.OrderID(row.id),
		Exists:   row.disputeExists,
		OpenedBy: kernel.ZeroParty(),
		Reason:   row.disputeReason.String,
		Outcome:  ledger.Outcome(row.disputeOutcome),
	}
	if row.disputeOpenedBy.Valid && row.disputeOpenedBy.String != "" {
		if view.OpenedBy, err = kernel.NewParty(row.disputeOpenedBy.String); err != nil {
			return DisputeView{}, err
		}
	}

	return view, nil
}

// CanRaiseDispute is false, not an error, for an unknown order.
func (h OrderQueryHandler) CanRaiseDispute(ctx context.Context, query CanRaiseDisputeQuery) (bool, error) {
	if err := query.Validate(); err != nil {
		return false, err
	}

	var buyer, seller string
	var status int
	err := h.db.WithContext(ctx).Raw(`
		SELECT buyer, seller, status
		FROM ledger_orders
		WHERE id = ?
	`, query.orderID.Int64()).Row().Scan(&buyer, &seller, &status)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if !ledger.OrderStatus(status).IsDisputable() || query.party.IsZero() {
		return false, nil
	}
	party := query.party.String()
	return party == buyer || party == seller, nil
}

func (h OrderQueryHandler) load(ctx context.Context, query OrderQuery) (orderRow, error) {
	if err := query.Validate(); err != nil {
		return orderRow{}, err
	}

	var row orderRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			buyer,
			seller,
			amount,
			status,
			escrow_status,
			dispute_exists,
			dispute_opened_by,
			dispute_reason,
			dispute_outcome
		FROM ledger_orders
		WHERE id = ?
	`, query.OrderID().Int64()).Row().Scan(
		&row.id,
		&row.buyer,
		&row.seller,
		&row.amount,
		&row.status,
		&row.escrowStatus,
		&row.disputeExists,
		&row.disputeOpenedBy,
		&row.disputeReason,
		&row.disputeOutcome,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return orderRow{}, errs.NewObjectNotFoundError("order", query.OrderID().Int64())
	}
	if err != nil {
		return orderRow{}, err
	}

	return row, nil
}

func (r orderRow) common() (kernel.Party, kernel.Party, kernel.Amount, error) {
	buyer, err := kernel.NewParty(r.buyer)
	if err != nil {
		return kernel.Party{}, kernel.Party{}, kernel.Amount{}, err
	}
	seller, err := kernel.NewParty(r.seller)
	if err != nil {
		return kernel.Party{}, kernel.Party{}, kernel.Amount{}, err
	}
	amount, err := kernel.AmountFromString(r.amount)
	if err != nil {
		return kernel.Party{}, kernel.Party{}, kernel.Amount{}, err
	}
	return buyer, seller, amount, nil
}
