package services

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// DeliveryVerifier answers whether the tracker considers an order delivered.
// An id the tracker has never seen is simply not delivered.
type DeliveryVerifier interface {
	IsDelivered(ctx context.Context, id kernel.OrderID) (bool, error)
}

// requireDelivered is the precondition for any value flowing to the seller.
func requireDelivered(ctx context.Context, verifier DeliveryVerifier, id kernel.OrderID) error {
	if verifier == nil {
		return errs.NewNotConfiguredError("Order tracking not set")
	}

	delivered, err := verifier.IsDelivered(ctx, id)
	if err != nil {
		return err
	}
	if !delivered {
		return errs.NewPreconditionFailedError("Order not delivered")
	}
	return nil
}
