package services

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/ledger"
	"marketplace/internal/pkg/errs"
)

// Settlement closes an order on the buyer's say-so and splits the escrow
// between the seller and the platform.
//
// Business rules:
//   - only a Paid order can be completed, and only by its buyer
//   - the tracker must report the order Delivered
//   - fee = floor(amount * feeBasisPoints / 10000), seller gets the rest
//   - the fee is credited to the platform balance in the same step
//
// Example usage:
//
//	settlement := services.NewSettlement()
//	fee, err := settlement.Complete(ctx, platform, order, caller, verifier)
//	if errors.Is(err, errs.ErrPreconditionFailed) {
//	    // goods not delivered yet
//	}
type Settlement struct{}

func NewSettlement() Settlement {
	return Settlement{}
}

// Complete validates in order state, caller, delivery, then moves the funds.
// A nil order stands for an id that was never created. Returns the fee
// charged.
func (s Settlement) Complete(
	ctx context.Context,
	platform *ledger.Platform,
	order *ledger.Order,
	caller kernel.Party,
	verifier DeliveryVerifier,
) (kernel.Amount, error) {
	if err := platform.Validate(); err != nil {
		return kernel.Amount{}, err
	}
	if order == nil {
		return kernel.Amount{}, errs.NewInvalidStateError("Order not in a completable state")
	}
	if err := order.Validate(); err != nil {
		return kernel.Amount{}, err
	}

	if err := order.CheckCompletable(caller); err != nil {
		return kernel.Amount{}, err
	}
	if err := requireDelivered(ctx, verifier, order.ID()); err != nil {
		return kernel.Amount{}, err
	}

	fee := platform.FeeFor(order.Amount())
	if err := order.Complete(caller, fee); err != nil {
		return kernel.Amount{}, err
	}
	platform.CollectFee(fee)

	return fee, nil
}
