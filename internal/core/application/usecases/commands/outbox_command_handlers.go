package commands

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
)

// OutboxCommandHandler moves committed domain events from the outbox to the
// broker. Delivery is at least once: a message is marked dispatched only
// after the publisher accepted it, so a crash in between republishes it.
type OutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.MessagePublisher
}

func NewOutboxCommandHandler(uowFactory OutboxUoWFactory, publisher ports.MessagePublisher) OutboxCommandHandler {
	return OutboxCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Dispatch publishes one batch and returns how many messages were sent.
func (h OutboxCommandHandler) Dispatch(ctx context.Context, cmd DispatchOutboxCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outbox := uow.OutboxRepository()
	pending, err := outbox.Pending(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}
	if len(pending) == 0 {
		return 0, nil
	}

	if err = h.publisher.Publish(ctx, pending...); err != nil {
		return 0, err
	}

	ids := make([]kernel.UUID, 0, len(pending))
	for _, m := range pending {
		ids = append(ids, m.ID)
	}
	if err = outbox.MarkDispatched(ctx, ids); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return len(pending), nil
}

// Purge deletes dispatched messages older than the command's cutoff.
func (h OutboxCommandHandler) Purge(ctx context.Context, cmd PurgeOutboxCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.OutboxRepository().PurgeDispatched(ctx, cmd.Before())
	if err != nil {
		return 0, err
	}

	return removed, uow.Commit(ctx)
}
