package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrPlatformCommandIsNotConstructed = errors.New(
		"platform command must be created via its constructor",
	)
)

// InitializePlatformCommand creates the platform account at startup. It is a
// no-op when the account already exists.
type InitializePlatformCommand struct {
	owner kernel.Party
	fee   kernel.BasisPoints

	guard guard.ConstructorGuard
}

func NewInitializePlatformCommand(owner kernel.Party, fee kernel.BasisPoints) (InitializePlatformCommand, error) {
	if err := owner.Validate(); err != nil {
		return InitializePlatformCommand{}, err
	}

	return InitializePlatformCommand{owner: owner, fee: fee, guard: guard.NewConstructorGuard()}, nil
}

func (c InitializePlatformCommand) Validate() error {
	return c.guard.Validate(ErrPlatformCommandIsNotConstructed)
}

func (c InitializePlatformCommand) Owner() kernel.Party     { return c.owner }
func (c InitializePlatformCommand) Fee() kernel.BasisPoints { return c.fee }

// SetOrderTrackingCommand binds the tracker consulted before releases.
type SetOrderTrackingCommand struct {
	caller  kernel.Party
	tracker kernel.Party

	guard guard.ConstructorGuard
}

func NewSetOrderTrackingCommand(caller, tracker kernel.Party) (SetOrderTrackingCommand, error) {
	if err := errors.Join(caller.Validate(), tracker.Validate()); err != nil {
		return SetOrderTrackingCommand{}, err
	}

	return SetOrderTrackingCommand{caller: caller, tracker: tracker, guard: guard.NewConstructorGuard()}, nil
}

func (c SetOrderTrackingCommand) Validate() error {
	return c.guard.Validate(ErrPlatformCommandIsNotConstructed)
}

func (c SetOrderTrackingCommand) Caller() kernel.Party  { return c.caller }
func (c SetOrderTrackingCommand) Tracker() kernel.Party { return c.tracker }

// ChangeArbitratorCommand hands the arbitrator role to another party.
type ChangeArbitratorCommand struct {
	caller     kernel.Party
	arbitrator kernel.Party

	guard guard.ConstructorGuard
}

func NewChangeArbitratorCommand(caller, arbitrator kernel.Party) (ChangeArbitratorCommand, error) {
	if err := errors.Join(caller.Validate(), arbitrator.Validate()); err != nil {
		return ChangeArbitratorCommand{}, err
	}

	return ChangeArbitratorCommand{caller: caller, arbitrator: arbitrator, guard: guard.NewConstructorGuard()}, nil
}

func (c ChangeArbitratorCommand) Validate() error {
	return c.guard.Validate(ErrPlatformCommandIsNotConstructed)
}

func (c ChangeArbitratorCommand) Caller() kernel.Party     { return c.caller }
func (c ChangeArbitratorCommand) Arbitrator() kernel.Party { return c.arbitrator }

// SetPlatformFeeCommand changes the fee rate applied to future completions.
// Range checks happen in the handler, after the owner check.
type SetPlatformFeeCommand struct {
	caller      kernel.Party
	basisPoints int

	guard guard.ConstructorGuard
}

func NewSetPlatformFeeCommand(caller kernel.Party, basisPoints int) (SetPlatformFeeCommand, error) {
	if err := caller.Validate(); err != nil {
		return SetPlatformFeeCommand{}, err
	}

	return SetPlatformFeeCommand{caller: caller, basisPoints: basisPoints, guard: guard.NewConstructorGuard()}, nil
}

func (c SetPlatformFeeCommand) Validate() error {
	return c.guard.Validate(ErrPlatformCommandIsNotConstructed)
}

func (c SetPlatformFeeCommand) Caller() kernel.Party { return c.caller }
func (c SetPlatformFeeCommand) BasisPoints() int     { return c.basisPoints }

// WithdrawPlatformFeesCommand pays the accumulated fees to the owner.
type WithdrawPlatformFeesCommand struct {
	caller kernel.Party

	guard guard.ConstructorGuard
}

func NewWithdrawPlatformFeesCommand(caller kernel.Party) (WithdrawPlatformFeesCommand, error) {
	if err := caller.Validate(); err != nil {
		return WithdrawPlatformFeesCommand{}, err
	}

	return WithdrawPlatformFeesCommand{caller: caller, guard: guard.NewConstructorGuard()}, nil
}

func (c WithdrawPlatformFeesCommand) Validate() error {
	return c.guard.Validate(ErrPlatformCommandIsNotConstructed)
}

func (c WithdrawPlatformFeesCommand) Caller() kernel.Party { return c.caller }
