package ledger

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// MaxPlatformFee caps the platform fee at 5%.
const MaxPlatformFee kernel.BasisPoints = 500

// DefaultPlatformFee is applied when the platform is first created.
const DefaultPlatformFee kernel.BasisPoints = 250

var (
	// ErrPlatformIsNotConstructed is returned for a Platform not built by NewPlatform or RestorePlatform.
	ErrPlatformIsNotConstructed = errors.New("Platform must be created via NewPlatform constructor")
)

// Platform is the process-wide account of the marketplace operator.
//
// The owner is fixed at creation and controls the fee rate, fee withdrawal
// and the tracker binding. The arbitrator starts as the owner and may hand
// the role to someone else; from then on only the new arbitrator resolves
// disputes. The accumulated balance holds collected fees only; escrowed
// funds are never part of it.
type Platform struct {
	kernel.EventRecorder

	owner      kernel.Party
	arbitrator kernel.Party
	fee        kernel.BasisPoints
	balance    kernel.Amount
	tracker    kernel.Party

	version int

	isConstructed bool
}

// NewPlatform creates the platform account with the owner as arbitrator.
func NewPlatform(owner kernel.Party, fee kernel.BasisPoints) (*Platform, error) {
	if owner.IsZero() {
		return nil, errs.NewInvalidArgumentError("Invalid owner")
	}
	if fee < 0 || fee > MaxPlatformFee {
		return nil, errs.NewInvalidArgumentError("Fee too high")
	}

	return &Platform{
		owner:         owner,
		arbitrator:    owner,
		fee:           fee,
		tracker:       kernel.ZeroParty(),
		isConstructed: true,
	}, nil
}

// RestorePlatform rebuilds the platform from persistence.
func RestorePlatform(
	owner, arbitrator kernel.Party,
	fee kernel.BasisPoints,
	balance kernel.Amount,
	tracker kernel.Party,
	version int,
) (*Platform, error) {
	if err := errors.Join(owner.Validate(), arbitrator.Validate(), tracker.Validate()); err != nil {
		return nil, err
	}
	if fee < 0 || fee > MaxPlatformFee {
		return nil, errs.NewValueIsOutOfRangeError("platform fee", fee.Int(), 0, MaxPlatformFee.Int())
	}

	return &Platform{
		owner:         owner,
		arbitrator:    arbitrator,
		fee:           fee,
		balance:       balance,
		tracker:       tracker,
		version:       version,
		isConstructed: true,
	}, nil
}

// Validate ensures the platform was built by a constructor.
func (p *Platform) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPlatformIsNotConstructed
	}
	return nil
}

func (p *Platform) Owner() kernel.Party      { return p.owner }
func (p *Platform) Arbitrator() kernel.Party { return p.arbitrator }
func (p *Platform) Fee() kernel.BasisPoints  { return p.fee }
func (p *Platform) Balance() kernel.Amount   { return p.balance }
func (p *Platform) Version() int             { return p.version }

// Tracker returns the bound delivery tracker and whether one is bound.
func (p *Platform) Tracker() (kernel.Party, bool) {
	return p.tracker, !p.tracker.IsZero()
}

// CheckArbitrator fails unless caller is the current arbitrator.
func (p *Platform) CheckArbitrator(caller kernel.Party) error {
	if !p.roles().Holds(caller, kernel.Arbitrator) {
		return errs.NewUnauthorizedError("Only arbitrator can resolve")
	}
	return nil
}

// FeeFor returns the platform's cut of amount at the current rate.
func (p *Platform) FeeFor(amount kernel.Amount) kernel.Amount {
	return p.fee.Of(amount)
}

// CollectFee credits a fee charged on a completed order.
func (p *Platform) CollectFee(fee kernel.Amount) {
	p.balance = p.balance.Add(fee)
}

// SetOrderTracking binds the delivery tracker consulted before releases.
// Rebinding is allowed.
func (p *Platform) SetOrderTracking(caller, tracker kernel.Party) error {
	if err := p.checkOwner(caller); err != nil {
		return err
	}
	if tracker.IsZero() {
		return errs.NewInvalidArgumentError("Invalid tracking address")
	}

	p.tracker = tracker
	p.Record(OrderTrackingSet{Tracker: tracker.String()})
	return nil
}

// ChangeArbitrator hands the arbitrator role over, effective immediately.
func (p *Platform) ChangeArbitrator(caller, next kernel.Party) error {
	if !p.roles().Holds(caller, kernel.Arbitrator) {
		return errs.NewUnauthorizedError("Only arbitrator can change arbitrator")
	}
	if next.IsZero() {
		return errs.NewInvalidArgumentError("Invalid arbitrator")
	}

	previous := p.arbitrator
	p.arbitrator = next
	p.Record(ArbitratorChanged{
		Previous: previous.String(),
		Current:  next.String(),
	})
	return nil
}

// SetFee changes the fee rate for future completions.
func (p *Platform) SetFee(caller kernel.Party, basisPoints int) error {
	if err := p.checkOwner(caller); err != nil {
		return err
	}
	if basisPoints > MaxPlatformFee.Int() {
		return errs.NewInvalidArgumentError("Fee too high")
	}
	if basisPoints < 0 {
		return errs.NewInvalidArgumentError("Invalid fee")
	}

	previous := p.fee
	p.fee = kernel.BasisPoints(basisPoints)
	p.Record(PlatformFeeUpdated{
		Previous: previous.Int(),
		Current:  basisPoints,
	})
	return nil
}

// WithdrawFees pays the whole accumulated balance to the owner and returns
// the amount withdrawn. Escrowed funds are untouched.
func (p *Platform) WithdrawFees(caller kernel.Party) (kernel.Amount, error) {
	if err := p.checkOwner(caller); err != nil {
		return kernel.Amount{}, err
	}

	amount := p.balance
	p.balance = kernel.Amount{}

	if amount.IsZero() {
		return amount, nil
	}

	p.Record(PlatformFeesWithdrawn{
		Owner:  p.owner.String(),
		Amount: amount.String(),
	})
	p.Record(PayoutRequested{
		PayoutID:    kernel.NewUUID().String(),
		Beneficiary: p.owner.String(),
		Amount:      amount.String(),
		Reason:      PayoutFeeWithdrawal,
	})
	return amount, nil
}

func (p *Platform) checkOwner(caller kernel.Party) error {
	if !p.roles().Holds(caller, kernel.Owner) {
		return errs.NewUnauthorizedError("Not platform owner")
	}
	return nil
}

func (p *Platform) roles() kernel.RoleAssignment {
	return kernel.RoleAssignment{
		kernel.Owner:      p.owner,
		kernel.Arbitrator: p.arbitrator,
	}
}
