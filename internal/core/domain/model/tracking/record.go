package tracking

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrRecordIsNotConstructed is returned for a Record not built by NewRecord or RestoreRecord.
	ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord constructor")
)

// Record is the delivery-tracking aggregate for one order id. It is linked to
// the ledger only by that id; nothing here references ledger state.
//
// Record follows these invariants:
//   - order id is positive, buyer and seller are non-zero
//   - courier is the zero Party until the seller assigns one
//   - status only moves forward along Created -> Shipped -> Delivered
type Record struct {
	kernel.EventRecorder

	orderID kernel.OrderID
	buyer   kernel.Party
	seller  kernel.Party
	courier kernel.Party
	status  Status

	// version is the persisted revision used for optimistic locking.
	version int

	isConstructed bool
}

// NewRecord registers a fresh record in Created status with no courier.
// Registration is open to any caller; the order id is the binding between
// the tracker and the ledger, not the caller's identity.
func NewRecord(orderID kernel.OrderID, buyer, seller kernel.Party) (*Record, error) {
	r := &Record{
		courier:       kernel.ZeroParty(),
		status:        Created,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setOrderID(orderID),
		r.setParty(&r.buyer, buyer, "Invalid buyer"),
		r.setParty(&r.seller, seller, "Invalid seller"),
	); err != nil {
		return nil, err
	}

	r.Record(DeliveryRegistered{
		OrderID: orderID.Int64(),
		Buyer:   buyer.String(),
		Seller:  seller.String(),
	})
	return r, nil
}

// RestoreRecord rebuilds a Record from persistence without raising events.
func RestoreRecord(
	orderID kernel.OrderID,
	buyer, seller, courier kernel.Party,
	status Status,
	version int,
) (*Record, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	r := &Record{
		courier:       courier,
		status:        status,
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setOrderID(orderID),
		r.setParty(&r.buyer, buyer, "Invalid buyer"),
		r.setParty(&r.seller, seller, "Invalid seller"),
		courier.Validate(),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the record was built by a constructor.
func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

func (r *Record) OrderID() kernel.OrderID { return r.orderID }
func (r *Record) Buyer() kernel.Party     { return r.buyer }
func (r *Record) Seller() kernel.Party    { return r.seller }

// Courier returns the assigned courier, or the zero Party.
func (r *Record) Courier() kernel.Party { return r.courier }
func (r *Record) Status() Status        { return r.status }
func (r *Record) Version() int          { return r.version }

// IsDelivered reports whether delivery has been confirmed.
func (r *Record) IsDelivered() bool {
	return r.status == Delivered
}

// AssignCourier records the courier. Only the seller may call it and
// repeated calls replace the previous courier; status is unaffected.
func (r *Record) AssignCourier(caller, courier kernel.Party) error {
	if !r.roles().Holds(caller, kernel.Seller) {
		return errs.NewUnauthorizedError("Not seller")
	}
	if courier.IsZero() {
		return errs.NewInvalidArgumentError("Invalid courier")
	}

	r.courier = courier
	r.Record(CourierAssigned{
		OrderID: r.orderID.Int64(),
		Courier: courier.String(),
	})
	return nil
}

// ConfirmShipped is allowed for the seller or the assigned courier.
func (r *Record) ConfirmShipped(caller kernel.Party) error {
	if !r.roles().Holds(caller, kernel.Seller, kernel.Courier) {
		return errs.NewUnauthorizedError("Not seller/courier")
	}

	next, err := r.status.Ship()
	if err != nil {
		return err
	}

	r.status = next
	r.Record(ShipmentConfirmed{
		OrderID:     r.orderID.Int64(),
		ConfirmedBy: caller.String(),
	})
	return nil
}

// ConfirmDelivery may be attested by any of buyer, seller or courier.
func (r *Record) ConfirmDelivery(caller kernel.Party) error {
	if !r.roles().Holds(caller, kernel.Buyer, kernel.Seller, kernel.Courier) {
		return errs.NewUnauthorizedError("Not buyer/seller/courier")
	}

	next, err := r.status.Deliver()
	if err != nil {
		return err
	}

	r.status = next
	r.Record(DeliveryConfirmed{
		OrderID:     r.orderID.Int64(),
		ConfirmedBy: caller.String(),
	})
	return nil
}

func (r *Record) roles() kernel.RoleAssignment {
	return kernel.RoleAssignment{
		kernel.Buyer:   r.buyer,
		kernel.Seller:  r.seller,
		kernel.Courier: r.courier,
	}
}

func (r *Record) setOrderID(orderID kernel.OrderID) error {
	if orderID < 1 {
		return errs.NewInvalidArgumentError("Invalid order id")
	}
	r.orderID = orderID
	return nil
}

func (r *Record) setParty(field *kernel.Party, p kernel.Party, reason string) error {
	if p.IsZero() {
		return errs.NewInvalidArgumentError(reason)
	}
	*field = p
	return nil
}
