package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/ledger"
	"marketplace/internal/pkg/guard"
)

var ErrResolveDisputeCommandIsNotConstructed = errors.New(
	"ResolveDisputeCommand must be created via NewResolveDisputeCommand constructor",
)

// ResolveDisputeCommand is the arbitrator's ruling on a disputed order.
// The outcome is carried as given; an invalid code is rejected by the
// handler only after the caller has been checked.
type ResolveDisputeCommand struct {
	orderID kernel.OrderID
	caller  kernel.Party
	outcome ledger.Outcome

	guard guard.ConstructorGuard
}

func NewResolveDisputeCommand(
	orderID kernel.OrderID,
	caller kernel.Party,
	outcome ledger.Outcome,
) (ResolveDisputeCommand, error) {
	if err := caller.Validate(); err != nil {
		return ResolveDisputeCommand{}, err
	}

	return ResolveDisputeCommand{
		orderID: orderID,
		caller:  caller,
		outcome: outcome,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// NewApproveRefundCommand resolves the dispute in the buyer's favour.
func NewApproveRefundCommand(orderID kernel.OrderID, caller kernel.Party) (ResolveDisputeCommand, error) {
	return NewResolveDisputeCommand(orderID, caller, ledger.Refund)
}

// NewRejectRefundCommand resolves the dispute in the seller's favour.
func NewRejectRefundCommand(orderID kernel.OrderID, caller kernel.Party) (ResolveDisputeCommand, error) {
	return NewResolveDisputeCommand(orderID, caller, ledger.Release)
}

func (c ResolveDisputeCommand) Validate() error {
	return c.guard.Validate(ErrResolveDisputeCommandIsNotConstructed)
}

func (c ResolveDisputeCommand) OrderID() kernel.OrderID { return c.orderID }
func (c ResolveDisputeCommand) Caller() kernel.Party    { return c.caller }
func (c ResolveDisputeCommand) Outcome() ledger.Outcome { return c.outcome }
