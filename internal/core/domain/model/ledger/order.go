package ledger

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned for an Order not built by NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Dispute is the optional dispute record of an order. Once opened it stays
// attached to the order for good; disputes are not reusable.
type Dispute struct {
	exists   bool
	openedBy kernel.Party
	reason   string
	outcome  Outcome
}

// RestoreDispute rebuilds a dispute from persistence.
func RestoreDispute(exists bool, openedBy kernel.Party, reason string, outcome Outcome) Dispute {
	return Dispute{
		exists:   exists,
		openedBy: openedBy,
		reason:   reason,
		outcome:  outcome,
	}
}

func (d Dispute) Exists() bool { return d.exists }

// OpenedBy is the buyer or seller who raised it, or the zero Party.
func (d Dispute) OpenedBy() kernel.Party {
	if d.openedBy.Validate() != nil {
		return kernel.ZeroParty()
	}
	return d.openedBy
}

func (d Dispute) Reason() string   { return d.reason }
func (d Dispute) Outcome() Outcome { return d.outcome }

// Order is the ledger aggregate for one order id: the order itself, the
// escrow locking its funds and its dispute. The three records share the id,
// are created together and change in the same transaction.
//
// Order follows these invariants:
//   - buyer, seller and amount never change after creation
//   - the escrow leaves Locked at most once, to Released or Refunded
//   - a dispute is opened only from Paid and resolved only from Disputed
//   - Closed is terminal
type Order struct {
	kernel.EventRecorder

	id     kernel.OrderID
	buyer  kernel.Party
	seller kernel.Party
	amount kernel.Amount
	status OrderStatus

	escrowStatus EscrowStatus
	dispute      Dispute

	// version is the persisted revision used for optimistic locking.
	version int

	isConstructed bool
}

// NewOrder opens an order for buyer and locks value in escrow. value is what
// the buyer actually transferred with the call and must equal amount.
//
// Example:
//
//	o, err := ledger.NewOrder(id, buyer, seller, amount, deposit)
//	if errors.Is(err, errs.ErrAmountMismatch) {
//	    // deposit did not match the declared amount
//	}
func NewOrder(id kernel.OrderID, buyer, seller kernel.Party, amount, value kernel.Amount) (*Order, error) {
	if id < 1 {
		return nil, errs.NewInvalidArgumentError("Invalid order id")
	}
	if buyer.IsZero() {
		return nil, errs.NewInvalidArgumentError("Invalid buyer")
	}
	if seller.IsZero() {
		return nil, errs.NewInvalidArgumentError("Invalid seller")
	}
	if amount.IsZero() {
		return nil, errs.NewInvalidArgumentError("Amount must be positive")
	}
	if !value.IsEqual(amount) {
		return nil, errs.NewAmountMismatchError("Incorrect ETH amount")
	}

	o := &Order{
		id:            id,
		buyer:         buyer,
		seller:        seller,
		amount:        amount,
		status:        Paid,
		escrowStatus:  Locked,
		isConstructed: true,
	}

	o.Record(OrderCreated{
		OrderID: id.Int64(),
		Buyer:   buyer.String(),
		Seller:  seller.String(),
		Amount:  amount.String(),
	})
	return o, nil
}

// RestoreOrder rebuilds an Order from persistence without raising events.
func RestoreOrder(
	id kernel.OrderID,
	buyer, seller kernel.Party,
	amount kernel.Amount,
	status OrderStatus,
	escrowStatus EscrowStatus,
	dispute Dispute,
	version int,
) (*Order, error) {
	if err := errors.Join(
		status.Validate(),
		escrowStatus.Validate(),
		buyer.Validate(),
		seller.Validate(),
	); err != nil {
		return nil, err
	}
	if id < 1 {
		return nil, errs.NewValueIsInvalidError("order id must be positive")
	}

	return &Order{
		id:            id,
		buyer:         buyer,
		seller:        seller,
		amount:        amount,
		status:        status,
		escrowStatus:  escrowStatus,
		dispute:       dispute,
		version:       version,
		isConstructed: true,
	}, nil
}

// Validate ensures the order was built by a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.OrderID         { return o.id }
func (o *Order) Buyer() kernel.Party        { return o.buyer }
func (o *Order) Seller() kernel.Party       { return o.seller }
func (o *Order) Amount() kernel.Amount      { return o.amount }
func (o *Order) Status() OrderStatus        { return o.status }
func (o *Order) EscrowStatus() EscrowStatus { return o.escrowStatus }
func (o *Order) Dispute() Dispute           { return o.dispute }
func (o *Order) Version() int               { return o.version }

// CanRaiseDispute reports whether party could open a dispute right now.
func (o *Order) CanRaiseDispute(party kernel.Party) bool {
	return o.status.IsDisputable() && o.roles().Holds(party, kernel.Buyer, kernel.Seller)
}

// RaiseDispute opens the dispute and moves the order from Paid to Disputed.
// The status check comes first, so a second dispute, or one on a closed
// order, is refused as a state error whoever asks.
func (o *Order) RaiseDispute(caller kernel.Party, reason string) error {
	if !o.status.IsDisputable() {
		return errs.NewInvalidStateError("Order not in a disputable state")
	}
	if !o.roles().Holds(caller, kernel.Buyer, kernel.Seller) {
		return errs.NewUnauthorizedError("Not buyer or seller")
	}

	o.dispute = Dispute{
		exists:   true,
		openedBy: caller,
		reason:   reason,
		outcome:  OutcomeNone,
	}
	o.status = Disputed

	o.Record(DisputeRaised{
		OrderID:  o.id.Int64(),
		OpenedBy: caller.String(),
		Reason:   reason,
	})
	return nil
}

// CheckResolvable fails unless the order has an open dispute.
func (o *Order) CheckResolvable() error {
	if o.status != Disputed || o.escrowStatus != Locked {
		return errs.NewInvalidStateError("Order not in dispute")
	}
	return nil
}

// ResolveDispute applies the arbitrator's outcome. Authorization and the
// delivery precondition for Release are checked by the caller; this method
// owns the state transition. The full escrowed amount goes to the buyer on
// Refund and to the seller on Release, with no platform fee either way.
func (o *Order) ResolveDispute(outcome Outcome) error {
	if err := outcome.Validate(); err != nil {
		return err
	}
	if err := o.CheckResolvable(); err != nil {
		return err
	}

	beneficiary, reason := o.buyer, PayoutRefund
	o.escrowStatus = Refunded
	if outcome == Release {
		beneficiary, reason = o.seller, PayoutRelease
		o.escrowStatus = Released
	}

	o.dispute.outcome = outcome
	o.status = Closed

	o.Record(DisputeResolved{
		OrderID: o.id.Int64(),
		Outcome: outcome.String(),
	})
	o.recordPayout(beneficiary, o.amount, reason)
	return nil
}

// CheckCompletable fails unless caller is the buyer of a Paid order.
func (o *Order) CheckCompletable(caller kernel.Party) error {
	if o.status != Paid || o.escrowStatus != Locked {
		return errs.NewInvalidStateError("Order not in a completable state")
	}
	if !o.roles().Holds(caller, kernel.Buyer) {
		return errs.NewUnauthorizedError("Only buyer can complete")
	}
	return nil
}

// Complete releases the escrow to the seller minus fee. The delivery
// precondition is checked by the caller.
func (o *Order) Complete(caller kernel.Party, fee kernel.Amount) error {
	if err := o.CheckCompletable(caller); err != nil {
		return err
	}

	payout, err := o.amount.Sub(fee)
	if err != nil {
		return err
	}

	o.escrowStatus = Released
	o.status = Closed

	o.Record(OrderCompleted{
		OrderID:      o.id.Int64(),
		SellerPayout: payout.String(),
		Fee:          fee.String(),
	})
	o.recordPayout(o.seller, payout, PayoutRelease)
	return nil
}

func (o *Order) recordPayout(beneficiary kernel.Party, amount kernel.Amount, reason PayoutReason) {
	if amount.IsZero() {
		return
	}
	o.Record(PayoutRequested{
		PayoutID:    kernel.NewUUID().String(),
		OrderID:     o.id.Int64(),
		Beneficiary: beneficiary.String(),
		Amount:      amount.String(),
		Reason:      reason,
	})
}

func (o *Order) roles() kernel.RoleAssignment {
	return kernel.RoleAssignment{
		kernel.Buyer:  o.buyer,
		kernel.Seller: o.seller,
	}
}
