package queries

import (
	"context"
	"database/sql"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/tracking"
	"marketplace/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrDeliveryQueryIsNotConstructed = errors.New(
	"DeliveryQuery must be created via NewDeliveryQuery constructor",
)

// DeliveryQuery looks up the tracker's record for an order id.
type DeliveryQuery struct {
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

func NewDeliveryQuery(orderID kernel.OrderID) DeliveryQuery {
	return DeliveryQuery{orderID: orderID, guard: guard.NewConstructorGuard()}
}

func (q DeliveryQuery) Validate() error {
	return q.guard.Validate(ErrDeliveryQueryIsNotConstructed)
}

// DeliveryView is the zero record with Found=false and status None for ids
// the tracker has never seen.
type DeliveryView struct {
	Found   bool
	OrderID kernel.OrderID
	Buyer   kernel.Party
	Seller  kernel.Party
	Courier kernel.Party
	Status  tracking.Status
}

type DeliveryQueryHandler struct {
	db *gorm.DB
}

func NewDeliveryQueryHandler(db *gorm.DB) DeliveryQueryHandler {
	return DeliveryQueryHandler{db: db}
}

// GetDelivery never fails for an absent id.
func (h DeliveryQueryHandler) GetDelivery(ctx context.Context, query DeliveryQuery) (DeliveryView, error) {
	if err := query.Validate(); err != nil {
		return DeliveryView{}, err
	}

	absent := DeliveryView{
		OrderID: query.orderID,
		Buyer:   kernel.ZeroParty(),
		Seller:  kernel.ZeroParty(),
		Courier: kernel.ZeroParty(),
		Status:  tracking.None,
	}

	var buyer, seller, courier string
	var status int
	err := h.db.WithContext(ctx).Raw(`
		SELECT buyer, seller, courier, status
		FROM delivery_records
		WHERE order_id = ?
	`, query.orderID.Int64()).Row().Scan(&buyer, &seller, &courier, &status)
	if errors.Is(err, sql.ErrNoRows) {
		return absent, nil
	}
	if err != nil {
		return DeliveryView{}, err
	}

	view := DeliveryView{Found: true, OrderID: query.orderID, Status: tracking.Status(status)}
	if view.Buyer, err = kernel.NewParty(buyer); err != nil {
		return DeliveryView{}, err
	}
	if view.Seller, err = kernel.NewParty(seller); err != nil {
		return DeliveryView{}, err
	}
	if view.Courier, err = kernel.NewParty(courier); err != nil {
		return DeliveryView{}, err
	}
	return view, nil
}

// GetDeliveryStatus reports None for an absent id.
func (h DeliveryQueryHandler) GetDeliveryStatus(ctx context.Context, query DeliveryQuery) (tracking.Status, error) {
	view, err := h.GetDelivery(ctx, query)
	if err != nil {
		return tracking.None, err
	}
	return view.Status, nil
}
