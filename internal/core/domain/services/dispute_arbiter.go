package services

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/ledger"
	"marketplace/internal/pkg/errs"
)

// DisputeArbiter applies the arbitrator's decision to a disputed order.
//
// Checks run in a fixed order: arbitrator identity, outcome, dispute state,
// then for Release the tracker binding and delivery status. Refunds never
// consult the tracker. Neither outcome charges a platform fee.
type DisputeArbiter struct{}

func NewDisputeArbiter() DisputeArbiter {
	return DisputeArbiter{}
}

// Resolve settles the dispute on order. A nil order stands for an id that
// was never created.
func (a DisputeArbiter) Resolve(
	ctx context.Context,
	platform *ledger.Platform,
	order *ledger.Order,
	caller kernel.Party,
	outcome ledger.Outcome,
	verifier DeliveryVerifier,
) error {
	if err := platform.Validate(); err != nil {
		return err
	}
	if err := platform.CheckArbitrator(caller); err != nil {
		return err
	}
	if err := outcome.Validate(); err != nil {
		return err
	}

	if order == nil {
		return errs.NewInvalidStateError("Order not in dispute")
	}
	if err := order.Validate(); err != nil {
		return err
	}
	if err := order.CheckResolvable(); err != nil {
		return err
	}

	if outcome == ledger.Release {
		if err := requireDelivered(ctx, verifier, order.ID()); err != nil {
			return err
		}
	}

	return order.ResolveDispute(outcome)
}
