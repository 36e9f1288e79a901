package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrRaiseDisputeCommandIsNotConstructed = errors.New(
	"RaiseDisputeCommand must be created via NewRaiseDisputeCommand constructor",
)

// RaiseDisputeCommand is the buyer or seller contesting a paid order.
// The reason is free text and may be empty.
type RaiseDisputeCommand struct {
	orderID kernel.OrderID
	caller  kernel.Party
	reason  string

	guard guard.ConstructorGuard
}

func NewRaiseDisputeCommand(orderID kernel.OrderID, caller kernel.Party, reason string) (RaiseDisputeCommand, error) {
	if err := caller.Validate(); err != nil {
		return RaiseDisputeCommand{}, err
	}

	return RaiseDisputeCommand{
		orderID: orderID,
		caller:  caller,
		reason:  reason,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RaiseDisputeCommand) Validate() error {
	return c.guard.Validate(ErrRaiseDisputeCommandIsNotConstructed)
}

func (c RaiseDisputeCommand) OrderID() kernel.OrderID { return c.orderID }
func (c RaiseDisputeCommand) Caller() kernel.Party    { return c.caller }
func (c RaiseDisputeCommand) Reason() string          { return c.reason }
