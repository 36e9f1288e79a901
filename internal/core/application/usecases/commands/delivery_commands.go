package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrDeliveryCommandIsNotConstructed = errors.New(
		"delivery command must be created via its constructor",
	)
)

// CreateDeliveryCommand registers an order with the tracker. Anyone may
// register; buyer and seller are taken as given.
type CreateDeliveryCommand struct {
	orderID kernel.OrderID
	buyer   kernel.Party
	seller  kernel.Party

	guard guard.ConstructorGuard
}

func NewCreateDeliveryCommand(orderID kernel.OrderID, buyer, seller kernel.Party) (CreateDeliveryCommand, error) {
	if err := errors.Join(buyer.Validate(), seller.Validate()); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return CreateDeliveryCommand{
		orderID: orderID,
		buyer:   buyer,
		seller:  seller,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrDeliveryCommandIsNotConstructed)
}

func (c CreateDeliveryCommand) OrderID() kernel.OrderID { return c.orderID }
func (c CreateDeliveryCommand) Buyer() kernel.Party     { return c.buyer }
func (c CreateDeliveryCommand) Seller() kernel.Party    { return c.seller }

// SetCourierCommand is the seller naming the courier for an order.
type SetCourierCommand struct {
	orderID kernel.OrderID
	caller  kernel.Party
	courier kernel.Party

	guard guard.ConstructorGuard
}

func NewSetCourierCommand(orderID kernel.OrderID, caller, courier kernel.Party) (SetCourierCommand, error) {
	if err := errors.Join(caller.Validate(), courier.Validate()); err != nil {
		return SetCourierCommand{}, err
	}

	return SetCourierCommand{
		orderID: orderID,
		caller:  caller,
		courier: courier,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c SetCourierCommand) Validate() error {
	return c.guard.Validate(ErrDeliveryCommandIsNotConstructed)
}

func (c SetCourierCommand) OrderID() kernel.OrderID { return c.orderID }
func (c SetCourierCommand) Caller() kernel.Party    { return c.caller }
func (c SetCourierCommand) Courier() kernel.Party   { return c.courier }

// DeliveryStepKind selects the tracker transition a DeliveryStepCommand requests.
type DeliveryStepKind int

const (
	ConfirmShipped DeliveryStepKind = iota + 1
	ConfirmDelivery
)

// DeliveryStepCommand advances an order along Created -> Shipped -> Delivered.
type DeliveryStepCommand struct {
	orderID kernel.OrderID
	caller  kernel.Party
	step    DeliveryStepKind

	guard guard.ConstructorGuard
}

// NewConfirmShippedCommand is sent by the seller or the assigned courier.
func NewConfirmShippedCommand(orderID kernel.OrderID, caller kernel.Party) (DeliveryStepCommand, error) {
	return newDeliveryStepCommand(orderID, caller, ConfirmShipped)
}

// NewConfirmDeliveryCommand is sent by the buyer, the seller or the courier.
func NewConfirmDeliveryCommand(orderID kernel.OrderID, caller kernel.Party) (DeliveryStepCommand, error) {
	return newDeliveryStepCommand(orderID, caller, ConfirmDelivery)
}

func newDeliveryStepCommand(orderID kernel.OrderID, caller kernel.Party, step DeliveryStepKind) (DeliveryStepCommand, error) {
	if err := caller.Validate(); err != nil {
		return DeliveryStepCommand{}, err
	}

	return DeliveryStepCommand{
		orderID: orderID,
		caller:  caller,
		step:    step,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c DeliveryStepCommand) Validate() error {
	return c.guard.Validate(ErrDeliveryCommandIsNotConstructed)
}

func (c DeliveryStepCommand) OrderID() kernel.OrderID { return c.orderID }
func (c DeliveryStepCommand) Caller() kernel.Party    { return c.caller }
func (c DeliveryStepCommand) Step() DeliveryStepKind  { return c.step }
