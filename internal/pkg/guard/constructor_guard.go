// Package guard holds small helpers that protect value objects from being
// used in their zero state.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a
// nil error for an object that was not built by its constructor.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as built through its constructor. Embed it in
// commands and queries and call Validate before acting on them: a zero-value
// struct literal has an unset guard and is rejected.
//
// Example:
//
//	type RaiseDisputeCommand struct {
//	    orderID ledger.OrderID
//	    guard   guard.ConstructorGuard
//	}
//
//	func (c RaiseDisputeCommand) Validate() error {
//	    return c.guard.Validate(ErrRaiseDisputeCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is
// nil) unless the guard was produced by NewConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
