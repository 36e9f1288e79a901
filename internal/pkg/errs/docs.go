// Package errs provides standardized error types for the marketplace engine.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes two families of errors:
//   - Value errors (ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError,
//     ObjectNotFoundError, VersionIsInvalidError) for malformed input, missing
//     records and optimistic concurrency conflicts
//   - RuleViolationError for operations refused by the ledger or the delivery
//     tracker. Its Kind is one of ErrUnauthorized, ErrInvalidState,
//     ErrInvalidArgument, ErrAmountMismatch, ErrPreconditionFailed,
//     ErrNotConfigured or ErrDuplicateOrder, and its Reason is the exact
//     condition shown to the caller (for example "Not buyer or seller").
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
package errs
