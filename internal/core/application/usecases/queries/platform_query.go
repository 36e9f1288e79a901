package queries

import (
	"context"
	"database/sql"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/ledger"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetPlatformQueryIsNotConstructed = errors.New(
	"GetPlatformQuery must be created via NewGetPlatformQuery constructor",
)

type GetPlatformQuery struct {
	guard guard.ConstructorGuard
}

func NewGetPlatformQuery() GetPlatformQuery {
	return GetPlatformQuery{guard: guard.NewConstructorGuard()}
}

func (q GetPlatformQuery) Validate() error {
	return q.guard.Validate(ErrGetPlatformQueryIsNotConstructed)
}

// PlatformView reports the platform account. Custody is everything the
// ledger holds: the sum of Locked escrows plus the fee balance.
type PlatformView struct {
	Owner          kernel.Party
	Arbitrator     kernel.Party
	FeeBasisPoints kernel.BasisPoints
	Balance        kernel.Amount
	Custody        kernel.Amount
	Tracker        kernel.Party
	TrackerBound   bool
}

type GetPlatformQueryHandler struct {
	db *gorm.DB
}

func NewGetPlatformQueryHandler(db *gorm.DB) GetPlatformQueryHandler {
	return GetPlatformQueryHandler{db: db}
}

func (h GetPlatformQueryHandler) Handle(ctx context.Context, query GetPlatformQuery) (PlatformView, error) {
	if err := query.Validate(); err != nil {
		return PlatformView{}, err
	}

	db := h.db.WithContext(ctx)

	var owner, arbitrator, balance, tracker string
	var fee int
	err := db.Raw(`
		SELECT owner, arbitrator, fee_basis_points, balance, tracker
		FROM platforms
		ORDER BY id
		LIMIT 1
	`).Row().Scan(&owner, &arbitrator, &fee, &balance, &tracker)
	if errors.Is(err, sql.ErrNoRows) {
		return PlatformView{}, errs.NewObjectNotFoundError("platform", 1)
	}
	if err != nil {
		return PlatformView{}, err
	}

	var view PlatformView
	if view.Owner, err = kernel.NewParty(owner); err != nil {
		return PlatformView{}, err
	}
	if view.Arbitrator, err = kernel.NewParty(arbitrator); err != nil {
		return PlatformView{}, err
	}
	if view.Tracker, err = kernel.NewParty(tracker); err != nil {
		return PlatformView{}, err
	}
	if view.Balance, err = kernel.AmountFromString(balance); err != nil {
		return PlatformView{}, err
	}
	view.FeeBasisPoints = kernel.BasisPoints(fee)
	view.TrackerBound = !view.Tracker.IsZero()

	locked, err := h.lockedTotal(ctx)
	if err != nil {
		return PlatformView{}, err
	}
	view.Custody = locked.Add(view.Balance)

	return view, nil
}

// lockedTotal sums in Go; amounts are stored as decimal text so that no
// dialect rounds them.
func (h GetPlatformQueryHandler) lockedTotal(ctx context.Context) (kernel.Amount, error) {
	var amounts []string
	if err := h.db.WithContext(ctx).
		Table("ledger_orders").
		Where("escrow_status = ?", int(ledger.Locked)).
		Pluck("amount", &amounts).Error; err != nil {
		return kernel.Amount{}, err
	}

	total := kernel.Amount{}
	for _, s := range amounts {
		a, err := kernel.AmountFromString(s)
		if err != nil {
			return kernel.Amount{}, err
		}
		total = total.Add(a)
	}
	return total, nil
}
