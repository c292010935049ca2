// Package kernel holds the identifier shared by every aggregate of the restaurant domain.
//
// Orders, products, product variants and users are all keyed by a UUID value object.
// Its zero value is invalid so an aggregate that forgot to assign an identity fails
// validation instead of being persisted with the nil UUID.
package kernel
