package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/ledger"
	"marketplace/internal/pkg/guard"
)

var (
	ErrOrderQueryIsNotConstructed = errors.New(
		"order query must be created via its constructor",
	)
)

// OrderQuery addresses one ledger order. It backs the order, escrow and
// dispute lookups alike.
type OrderQuery struct {
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

func NewOrderQuery(orderID kernel.OrderID) OrderQuery {
	return OrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}
}

func (q OrderQuery) Validate() error {
	return q.guard.Validate(ErrOrderQueryIsNotConstructed)
}

func (q OrderQuery) OrderID() kernel.OrderID { return q.orderID }

// CanRaiseDisputeQuery asks whether party may dispute an order right now.
type CanRaiseDisputeQuery struct {
	orderID kernel.OrderID
	party   kernel.Party

	guard guard.ConstructorGuard
}

func NewCanRaiseDisputeQuery(orderID kernel.OrderID, party kernel.Party) (CanRaiseDisputeQuery, error) {
	if err := party.Validate(); err != nil {
		return CanRaiseDisputeQuery{}, err
	}
	return CanRaiseDisputeQuery{orderID: orderID, party: party, guard: guard.NewConstructorGuard()}, nil
}

func (q CanRaiseDisputeQuery) Validate() error {
	return q.guard.Validate(ErrOrderQueryIsNotConstructed)
}

// OrderView is the order record as the ledger exposes it.
type OrderView struct {
	ID     kernel.OrderID
	Buyer  kernel.Party
	Seller kernel.Party
	Amount kernel.Amount
	Status ledger.OrderStatus
}

// EscrowView mirrors the order's parties and amount with the custody state.
type EscrowView struct {
	OrderID kernel.OrderID
	Buyer   kernel.Party
	Seller  kernel.Party
	Amount  kernel.Amount
	Status  ledger.EscrowStatus
}

// DisputeView has Exists=false for an order nobody has disputed.
type DisputeView struct {
	OrderID  kernel.OrderID
	Exists   bool
	OpenedBy kernel.Party
	Reason   string
	Outcome  ledger.Outcome
}
