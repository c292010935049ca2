// Package order provides the Order aggregate of the restaurant and the state
// machine that governs its lifecycle.
//
// The package includes:
//   - Order: the aggregate root holding customer, kind, payment method, total and line items
//   - LineItem: an immutable priced product line carrying a plate number
//   - Status: the lifecycle state machine RECEIVED → PREPARING → READY → DELIVERED, with CANCELED
//   - Kind and PaymentMethod: small enumerations validated on input
//   - InvalidStateError and IllegalTransitionError: the failures of the state machine
//
// Key business rules:
//   - Delivered and Canceled are terminal: no status change and no item change afterwards
//   - The total is adjusted on every item change and never recomputed implicitly
//   - Unit prices are captured when the item is added
//   - Plates are normalized on insertion and compacted to 1..k
package order
