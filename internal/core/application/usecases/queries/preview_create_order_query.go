package queries

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/ledger"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/guard"
)

var ErrPreviewCreateOrderQueryIsNotConstructed = errors.New(
	"PreviewCreateOrderQuery must be created via NewPreviewCreateOrderQuery constructor",
)

// PreviewCreateOrderQuery dry-runs order creation: it reports the id the
// order would get, or the error creation would fail with, and changes
// nothing.
type PreviewCreateOrderQuery struct {
	buyer  kernel.Party
	seller kernel.Party
	amount kernel.Amount
	value  kernel.Amount

	guard guard.ConstructorGuard
}

func NewPreviewCreateOrderQuery(buyer, seller kernel.Party, amount, value kernel.Amount) (PreviewCreateOrderQuery, error) {
	if err := errors.Join(buyer.Validate(), seller.Validate()); err != nil {
		return PreviewCreateOrderQuery{}, err
	}
	return PreviewCreateOrderQuery{
		buyer:  buyer,
		seller: seller,
		amount: amount,
		value:  value,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q PreviewCreateOrderQuery) Validate() error {
	return q.guard.Validate(ErrPreviewCreateOrderQueryIsNotConstructed)
}

type (
	// PreviewUoW is the slice of a unit of work the preview needs. It is
	// begun and always rolled back.
	PreviewUoW interface {
		Begin(ctx context.Context) error
		Rollback(ctx context.Context) error
		OrderRepository() ports.LedgerOrderRepository
	}

	PreviewUoWFactory interface {
		Create() PreviewUoW
	}
)

type PreviewCreateOrderQueryHandler struct {
	uowFactory PreviewUoWFactory
}

func NewPreviewCreateOrderQueryHandler(uowFactory PreviewUoWFactory) PreviewCreateOrderQueryHandler {
	return PreviewCreateOrderQueryHandler{uowFactory: uowFactory}
}

func (h PreviewCreateOrderQueryHandler) Handle(ctx context.Context, query PreviewCreateOrderQuery) (kernel.OrderID, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	id, err := uow.OrderRepository().NextOrderID(ctx)
	if err != nil {
		return 0, err
	}

	if _, err = ledger.NewOrder(id, query.buyer, query.seller, query.amount, query.value); err != nil {
		return 0, err
	}

	return id, nil
}
