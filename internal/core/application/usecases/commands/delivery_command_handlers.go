package commands

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/tracking"
)

// DeliveryCommandHandler runs the tracker's commands. It never touches
// ledger state; the ledger only ever reads the tracker.
type DeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewDeliveryCommandHandler(uowFactory DeliveryUoWFactory) DeliveryCommandHandler {
	return DeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// CreateDelivery fails with errs.ErrDuplicateOrder if the id is registered.
func (h *DeliveryCommandHandler) CreateDelivery(ctx context.Context, cmd CreateDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	record, err := tracking.NewRecord(cmd.OrderID(), cmd.Buyer(), cmd.Seller())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DeliveryRepository().Add(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *DeliveryCommandHandler) SetCourier(ctx context.Context, cmd SetCourierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.update(ctx, cmd.OrderID(), func(r *tracking.Record) error {
		return r.AssignCourier(cmd.Caller(), cmd.Courier())
	})
}

func (h *DeliveryCommandHandler) Advance(ctx context.Context, cmd DeliveryStepCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.update(ctx, cmd.OrderID(), func(r *tracking.Record) error {
		if cmd.Step() == ConfirmShipped {
			return r.ConfirmShipped(cmd.Caller())
		}
		return r.ConfirmDelivery(cmd.Caller())
	})
}

func (h *DeliveryCommandHandler) update(
	ctx context.Context,
	id kernel.OrderID,
	mutate func(*tracking.Record) error,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DeliveryRepository()

	record, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err = mutate(record); err != nil {
		return err
	}

	if err = repo.Update(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
