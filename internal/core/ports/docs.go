// Package ports defines the contracts between the settlement core and its
// infrastructure: repositories, the unit of work, the outbox and the
// read-only tracker view consulted before funds reach a seller.
package ports
