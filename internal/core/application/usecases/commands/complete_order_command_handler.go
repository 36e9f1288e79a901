package commands

import (
	"context"

	"marketplace/internal/core/domain/services"
)

// CompleteOrderCommandHandler releases a delivered order's escrow to the
// seller and credits the platform fee. Order and platform are updated in the
// same transaction.
type CompleteOrderCommandHandler struct {
	uowFactory LedgerUoWFactory
	settlement services.Settlement
}

func NewCompleteOrderCommandHandler(uowFactory LedgerUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		settlement: services.NewSettlement(),
	}
}

func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	platformRepo := uow.PlatformRepository()
	platform, err := platformRepo.Get(ctx)
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	order, err := orderRepo.Find(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	verifier := verifierFor(uow.TrackerRegistry(), platform)
	if _, err = h.settlement.Complete(ctx, platform, order, cmd.Caller(), verifier); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, order); err != nil {
		return err
	}

	if err = platformRepo.Update(ctx, platform); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
