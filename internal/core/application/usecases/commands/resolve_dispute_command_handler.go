package commands

import (
	"context"

	"marketplace/internal/core/domain/services"
)

// ResolveDisputeCommandHandler closes a dispute through the DisputeArbiter,
// consulting the bound tracker before any release to the seller.
//
// Example:
//
//	handler := NewResolveDisputeCommandHandler(uowFactory)
//	cmd, _ := NewRejectRefundCommand(id, arbitrator)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrNotConfigured):
//	    log.Println("bind a tracker first")
//	case errors.Is(err, errs.ErrPreconditionFailed):
//	    log.Println("goods not delivered")
//	}
type ResolveDisputeCommandHandler struct {
	uowFactory LedgerUoWFactory
	arbiter    services.DisputeArbiter
}

func NewResolveDisputeCommandHandler(uowFactory LedgerUoWFactory) ResolveDisputeCommandHandler {
	return ResolveDisputeCommandHandler{
		uowFactory: uowFactory,
		arbiter:    services.NewDisputeArbiter(),
	}
}

func (h *ResolveDisputeCommandHandler) Handle(ctx context.Context, cmd ResolveDisputeCommand) error {
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

	platform, err := uow.PlatformRepository().Get(ctx)
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	order, err := orderRepo.Find(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	verifier := verifierFor(uow.TrackerRegistry(), platform)
	if err = h.arbiter.Resolve(ctx, platform, order, cmd.Caller(), cmd.Outcome(), verifier); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
