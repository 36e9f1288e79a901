package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand is the buyer accepting delivery and releasing escrow.
type CompleteOrderCommand struct {
	orderID kernel.OrderID
	caller  kernel.Party

	guard guard.ConstructorGuard
}

func NewCompleteOrderCommand(orderID kernel.OrderID, caller kernel.Party) (CompleteOrderCommand, error) {
	if err := caller.Validate(); err != nil {
		return CompleteOrderCommand{}, err
	}

	return CompleteOrderCommand{
		orderID: orderID,
		caller:  caller,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

func (c CompleteOrderCommand) OrderID() kernel.OrderID { return c.orderID }
func (c CompleteOrderCommand) Caller() kernel.Party    { return c.caller }
