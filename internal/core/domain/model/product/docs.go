// Package product models the menu: products with a base price and optional
// priced variants (sizes, fillings). A product quotes the unit price a new
// order line is charged.
package product
