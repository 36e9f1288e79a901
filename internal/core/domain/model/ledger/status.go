package ledger

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// OrderStatus is the lifecycle state of an order.
//
//	None ──> Paid ──┬──> Disputed ──> Closed
//	                └───────────────> Closed
type OrderStatus int

const (
	OrderNone OrderStatus = iota
	Paid
	Disputed
	Closed
)

func (s OrderStatus) String() string {
	switch s {
	case Paid:
		return "Paid"
	case Disputed:
		return "Disputed"
	case Closed:
		return "Closed"
	case OrderNone:
		return "None"
	}
	return "None"
}

// Validate accepts the statuses a stored order may have.
func (s OrderStatus) Validate() error {
	if s != Paid && s != Disputed && s != Closed {
		return errs.NewValueIsInvalidErrorWithCause("order status is invalid", fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// IsDisputable reports whether a dispute may be opened from s.
func (s OrderStatus) IsDisputable() bool {
	return s == Paid
}

// EscrowStatus is the custody state of the funds locked for an order.
//
//	None ──> Locked ──┬──> Released
//	                  └──> Refunded
type EscrowStatus int

const (
	EscrowNone EscrowStatus = iota
	Locked
	Released
	Refunded
)

func (s EscrowStatus) String() string {
	switch s {
	case Locked:
		return "Locked"
	case Released:
		return "Released"
	case Refunded:
		return "Refunded"
	case EscrowNone:
		return "None"
	}
	return "None"
}

func (s EscrowStatus) Validate() error {
	if s != Locked && s != Released && s != Refunded {
		return errs.NewValueIsInvalidErrorWithCause("escrow status is invalid", fmt.Errorf("%d is not a valid escrow status", s))
	}
	return nil
}

// Outcome is the arbitrator's decision on a dispute.
type Outcome int

const (
	OutcomeNone Outcome = iota
	Refund
	Release
)

// NewOutcome accepts Refund (1) and Release (2).
func NewOutcome(v int) (Outcome, error) {
	o := Outcome(v)
	if err := o.Validate(); err != nil {
		return OutcomeNone, err
	}
	return o, nil
}

// ParseOutcome accepts "Refund" or "Release".
func ParseOutcome(s string) (Outcome, error) {
	switch s {
	case "Refund":
		return Refund, nil
	case "Release":
		return Release, nil
	}
	return OutcomeNone, errs.NewInvalidArgumentError("Invalid outcome")
}

// Validate rejects None and unknown codes.
func (o Outcome) Validate() error {
	if o != Refund && o != Release {
		return errs.NewInvalidArgumentError("Invalid outcome")
	}
	return nil
}

func (o Outcome) String() string {
	switch o {
	case Refund:
		return "Refund"
	case Release:
		return "Release"
	case OutcomeNone:
		return "None"
	}
	return "None"
}
