// Package ledger models escrowed marketplace orders and the platform account
// that collects fees on them.
//
// The package includes:
//   - Order: the aggregate root for one order id. It carries the order record,
//     the escrow that locks the buyer's funds, and the (optional) dispute,
//     which always change together
//   - OrderStatus, EscrowStatus and Outcome: the closed enums of each record
//   - Platform: the singleton holding owner, arbitrator, fee rate, accumulated
//     fees and the delivery tracker binding
//
// Key business rules:
//   - An order is created Paid with its escrow Locked; the deposit must equal the amount
//   - A dispute can be opened only while the order is Paid, and only once
//   - An escrow reaches exactly one of Released or Refunded, exactly once, from Locked
//   - Fees are charged only when the buyer completes the order cooperatively
//   - The fee rate never exceeds MaxPlatformFee basis points
//
// Records are never deleted; a closed order stays queryable.
package ledger
