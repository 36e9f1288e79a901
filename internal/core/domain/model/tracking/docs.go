// Package tracking models physical fulfilment of marketplace orders. It is
// independent of money movement: the ledger only ever asks it whether an
// order id has been delivered.
//
// The package includes:
//   - Record: the aggregate root holding buyer, seller, courier and status for one order id
//   - Status: the linear state machine None -> Created -> Shipped -> Delivered
//
// Key business rules:
//   - Only the seller may assign (or re-assign) a courier
//   - Shipment may be confirmed by the seller or the assigned courier, from Created only
//   - Delivery may be confirmed by the buyer, the seller or the courier, from Shipped only
//   - There is no skipping and no reversal
package tracking
