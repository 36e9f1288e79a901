// Package services provides domain services that coordinate the ledger
// aggregates with the delivery precondition. It implements the workflows that
// span the Platform account and a single Order and so belong to neither.
//
// The package includes:
//   - Settlement: buyer-initiated completion with the platform fee split
//   - DisputeArbiter: arbitrator resolution of an open dispute
//
// Both consult delivery status through a DeliveryVerifier, which is nil when
// no tracker is bound to the platform.
package services
