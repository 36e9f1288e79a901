package commands

import (
	"context"

	"marketplace/internal/pkg/errs"
)

// RaiseDisputeCommandHandler moves a Paid order to Disputed.
type RaiseDisputeCommandHandler struct {
	uowFactory LedgerUoWFactory
}

func NewRaiseDisputeCommandHandler(uowFactory LedgerUoWFactory) RaiseDisputeCommandHandler {
	return RaiseDisputeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle reports an unknown order id as not disputable, the same way it
// reports a closed or already disputed one.
func (h *RaiseDisputeCommandHandler) Handle(ctx context.Context, cmd RaiseDisputeCommand) error {
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

	orderRepo := uow.OrderRepository()

	order, err := orderRepo.Find(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if order == nil {
		return errs.NewInvalidStateError("Order not in a disputable state")
	}

	if err = order.RaiseDispute(cmd.Caller(), cmd.Reason()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
