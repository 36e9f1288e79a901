// Package kernel provides the shared domain primitives of the marketplace.
//
// The package includes:
//   - Party: an address identity (buyer, seller, courier, arbitrator, owner, tracker)
//   - Role and RoleAssignment: the per-record role table used by authorization checks
//   - Amount: a non-negative whole amount of the smallest monetary unit
//   - BasisPoints: fee rates and the floor(amount * bp / 10000) split
//   - UUID: identifiers for outbox messages
//
// These primitives are immutable value objects and safe for concurrent use.
package kernel
