package errs

import (
	"errors"
	"fmt"
)

// Rule violation kinds. Every rejected ledger or tracker operation wraps
// exactly one of these, so callers can branch with errors.Is.
var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidState       = errors.New("invalid state")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrAmountMismatch     = errors.New("amount mismatch")
	ErrPreconditionFailed = errors.New("precondition failed")
	ErrNotConfigured      = errors.New("not configured")
	ErrDuplicateOrder     = errors.New("duplicate order")
)

// RuleViolationError is returned when an operation is refused by a business
// rule. Reason holds the human-readable condition that failed.
type RuleViolationError struct {
	Kind   error
	Reason string
}

func NewUnauthorizedError(reason string) *RuleViolationError {
	return &RuleViolationError{Kind: ErrUnauthorized, Reason: reason}
}

func NewInvalidStateError(reason string) *RuleViolationError {
	return &RuleViolationError{Kind: ErrInvalidState, Reason: reason}
}

func NewInvalidArgumentError(reason string) *RuleViolationError {
	return &RuleViolationError{Kind: ErrInvalidArgument, Reason: reason}
}

func NewAmountMismatchError(reason string) *RuleViolationError {
	return &RuleViolationError{Kind: ErrAmountMismatch, Reason: reason}
}

func NewPreconditionFailedError(reason string) *RuleViolationError {
	return &RuleViolationError{Kind: ErrPreconditionFailed, Reason: reason}
}

func NewNotConfiguredError(reason string) *RuleViolationError {
	return &RuleViolationError{Kind: ErrNotConfigured, Reason: reason}
}

func NewDuplicateOrderError(reason string) *RuleViolationError {
	return &RuleViolationError{Kind: ErrDuplicateOrder, Reason: reason}
}

func (e *RuleViolationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

func (e *RuleViolationError) Unwrap() error {
	return e.Kind
}

// Reason extracts the human-readable condition from err. For errors that are
// not rule violations it falls back to err.Error().
func Reason(err error) string {
	if err == nil {
		return ""
	}
	var rv *RuleViolationError
	if errors.As(err, &rv) {
		return rv.Reason
	}
	return err.Error()
}
