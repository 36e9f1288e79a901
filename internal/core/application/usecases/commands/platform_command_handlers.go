package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/ledger"
	"marketplace/internal/pkg/errs"
)

// PlatformCommandHandler runs the owner and arbitrator administration
// commands against the platform account. Each call is one transaction.
//
// Example:
//
//	handler := NewPlatformCommandHandler(uowFactory)
//	cmd, _ := NewSetPlatformFeeCommand(owner, 300)
//	if err := handler.SetPlatformFee(ctx, cmd); errors.Is(err, errs.ErrUnauthorized) {
//	    // caller is not the owner
//	}
type PlatformCommandHandler struct {
	uowFactory PlatformUoWFactory
}

func NewPlatformCommandHandler(uowFactory PlatformUoWFactory) PlatformCommandHandler {
	return PlatformCommandHandler{
		uowFactory: uowFactory,
	}
}

// Initialize creates the platform account unless it already exists.
func (h *PlatformCommandHandler) Initialize(ctx context.Context, cmd InitializePlatformCommand) error {
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

	repo := uow.PlatformRepository()

	_, err := repo.Get(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	platform, err := ledger.NewPlatform(cmd.Owner(), cmd.Fee())
	if err != nil {
		return err
	}

	if err = repo.Add(ctx, platform); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *PlatformCommandHandler) SetOrderTracking(ctx context.Context, cmd SetOrderTrackingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.update(ctx, func(p *ledger.Platform) error {
		return p.SetOrderTracking(cmd.Caller(), cmd.Tracker())
	})
}

func (h *PlatformCommandHandler) ChangeArbitrator(ctx context.Context, cmd ChangeArbitratorCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.update(ctx, func(p *ledger.Platform) error {
		return p.ChangeArbitrator(cmd.Caller(), cmd.Arbitrator())
	})
}

func (h *PlatformCommandHandler) SetPlatformFee(ctx context.Context, cmd SetPlatformFeeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.update(ctx, func(p *ledger.Platform) error {
		return p.SetFee(cmd.Caller(), cmd.BasisPoints())
	})
}

// WithdrawPlatformFees returns the amount paid out, zero when there was
// nothing to withdraw.
func (h *PlatformCommandHandler) WithdrawPlatformFees(
	ctx context.Context,
	cmd WithdrawPlatformFeesCommand,
) (kernel.Amount, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.Amount{}, err
	}

	var withdrawn kernel.Amount
	err := h.update(ctx, func(p *ledger.Platform) error {
		amount, err := p.WithdrawFees(cmd.Caller())
		withdrawn = amount
		return err
	})
	if err != nil {
		return kernel.Amount{}, err
	}

	return withdrawn, nil
}

func (h *PlatformCommandHandler) update(ctx context.Context, mutate func(*ledger.Platform) error) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PlatformRepository()

	platform, err := repo.Get(ctx)
	if err != nil {
		return err
	}

	if err = mutate(platform); err != nil {
		return err
	}

	if err = repo.Update(ctx, platform); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
