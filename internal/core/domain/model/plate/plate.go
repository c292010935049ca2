package plate

import (
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

// DefaultNumber is the plate used for items that carry no usable plate number.
const DefaultNumber = 1

// Numbered is anything tagged with a plate number.
type Numbered interface {
	PlateNumber() int
}

// Renumberable can produce a copy of itself carrying a different plate number.
// Implementations must leave every other field untouched.
type Renumberable[T any] interface {
	Numbered
	WithPlateNumber(n int) T
}

// Line is a priced, counted item that can be grouped on a ticket.
type Line interface {
	Numbered
	Quantity() int
	UnitPrice() decimal.Decimal
}

// Plate is one serving round of an order.
type Plate[T Line] struct {
	Number        int
	Items         []T
	TotalQuantity int
	TotalPrice    decimal.Decimal
}

// Normalize returns the plate number an incoming item should carry.
//
// A positive requested value is returned as is, even when no existing item uses
// that plate yet: callers may open new plates on the fly and rely on Compact to
// close the gaps. Otherwise the item goes on a fresh plate one past the highest
// plate in existing, where non-positive plates count as 1. An empty existing
// list yields 1.
//
// Example:
//
//	plate.Normalize(3, items)   // 3
//	plate.Normalize(0, nil)     // 1
//	plate.Normalize(0, [1, 2])  // 3
func Normalize[T Numbered](requested int, existing []T) int {
	if requested > 0 {
		return requested
	}

	highest := 0
	for _, item := range existing {
		highest = max(highest, effective(item.PlateNumber()))
	}
	return highest + 1
}

// Compact renumbers plates so that the distinct plate numbers of items become 1..k,
// keeping their relative order. The smallest plate becomes 1, the next smallest 2,
// and so on regardless of the gaps between the original values.
//
// The result is a new slice of the same length and order; only plate numbers change.
// An empty input is returned unchanged. Compact is idempotent.
func Compact[T Renumberable[T]](items []T) []T {
	if len(items) == 0 {
		return items
	}

	distinct := make(map[int]struct{}, len(items))
	for _, item := range items {
		distinct[item.PlateNumber()] = struct{}{}
	}

	rank := make(map[int]int, len(distinct))
	for i, n := range slices.Sorted(maps.Keys(distinct)) {
		rank[n] = i + 1
	}

	out := make([]T, len(items))
	for i, item := range items {
		n, ok := rank[item.PlateNumber()]
		if !ok {
			n = DefaultNumber
		}
		out[i] = item.WithPlateNumber(n)
	}
	return out
}

// Group folds items into plates ordered by ascending plate number.
// Items without a positive plate number land on plate 1. Within a plate, items
// keep their input order.
//
// Example:
//
//	plates := plate.Group(order.Items())
//	for _, p := range plates {
//	    fmt.Printf("plate %d: %d items, %s\n", p.Number, p.TotalQuantity, p.TotalPrice)
//	}
func Group[T Line](items []T) []Plate[T] {
	byNumber := make(map[int]*Plate[T])
	for _, item := range items {
		n := effective(item.PlateNumber())
		p, ok := byNumber[n]
		if !ok {
			p = &Plate[T]{Number: n, TotalPrice: decimal.Zero}
			byNumber[n] = p
		}
		p.Items = append(p.Items, item)
		p.TotalQuantity += item.Quantity()
		p.TotalPrice = p.TotalPrice.Add(item.UnitPrice().Mul(decimal.NewFromInt(int64(item.Quantity()))))
	}

	plates := make([]Plate[T], 0, len(byNumber))
	for _, n := range slices.Sorted(maps.Keys(byNumber)) {
		plates = append(plates, *byNumber[n])
	}
	return plates
}

func effective(n int) int {
	if n <= 0 {
		return DefaultNumber
	}
	return n
}
