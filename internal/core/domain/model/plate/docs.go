// Package plate assigns and renumbers the plate tags carried by order line items.
//
// A plate splits one order into serving rounds for the kitchen: every line item
// carries a positive plate number, and after compaction the plates of an order are
// exactly 1..k with no gaps. The package offers three pure operations:
//   - Normalize picks the plate for an incoming item
//   - Compact renumbers an item list so its plates are dense
//   - Group folds items into per-plate totals for kitchen tickets
//
// None of the operations fail. A non-positive plate number means "no preference"
// on input and is read as plate 1 when grouping.
package plate
