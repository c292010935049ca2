package order

import (
	"errors"
	"fmt"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// MaxQuantity caps a single line item.
const MaxQuantity = 999

// ErrLineItemIsNotConstructed is returned when a LineItem was not built by NewLineItem or RestoreLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// ItemSource is the priced menu entry a line item is cut from. Names are
// snapshotted so later menu edits do not rewrite past orders.
type ItemSource struct {
	ProductID   kernel.UUID
	ProductName string
	VariantID   *kernel.UUID
	VariantName string
	UnitPrice   decimal.Decimal
}

// LineItem is one product, optionally a variant of it, ordered in some quantity.
// It is an immutable value: WithPlateNumber returns a modified copy.
type LineItem struct {
	id          kernel.UUID
	productID   kernel.UUID
	productName string
	variantID   *kernel.UUID
	variantName string
	quantity    int
	unitPrice   decimal.Decimal
	note        string
	plateNumber int
	guard       guard.ConstructorGuard
}

// NewLineItem creates a line item priced from source.
// A non-positive plateNumber means "no preference"; Order.AddItem resolves it.
func NewLineItem(id kernel.UUID, source ItemSource, quantity int, note string, plateNumber int) (LineItem, error) {
	item := LineItem{
		productName: strings.TrimSpace(source.ProductName),
		variantName: strings.TrimSpace(source.VariantName),
		note:        strings.TrimSpace(note),
		plateNumber: plateNumber,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setProduct(source.ProductID, source.VariantID),
		item.setQuantity(quantity),
		item.setUnitPrice(source.UnitPrice),
	); err != nil {
		return LineItem{}, err
	}
	if item.productName == "" {
		return LineItem{}, errs.NewValueIsRequiredError("productName")
	}

	return item, nil
}

// RestoreLineItem rebuilds a persisted line item. Stored plate numbers below 1
// are read as plate 1.
func RestoreLineItem(id kernel.UUID, source ItemSource, quantity int, note string, plateNumber int) (LineItem, error) {
	if plateNumber <= 0 {
		plateNumber = 1
	}
	return NewLineItem(id, source, quantity, note, plateNumber)
}

func (i LineItem) Validate() error {
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

func (i LineItem) ID() kernel.UUID {
	return i.id
}

func (i LineItem) ProductID() kernel.UUID {
	return i.productID
}

func (i LineItem) ProductName() string {
	return i.productName
}

// VariantID returns nil when the product was ordered without a variant.
func (i LineItem) VariantID() *kernel.UUID {
	if i.variantID == nil {
		return nil
	}
	id := *i.variantID
	return &id
}

func (i LineItem) VariantName() string {
	return i.variantName
}

func (i LineItem) Quantity() int {
	return i.quantity
}

// UnitPrice is the price captured when the item was ordered.
func (i LineItem) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

func (i LineItem) Note() string {
	return i.note
}

func (i LineItem) PlateNumber() int {
	return i.plateNumber
}

// Subtotal is quantity × unit price.
func (i LineItem) Subtotal() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

// WithPlateNumber returns a copy of the item on plate n.
func (i LineItem) WithPlateNumber(n int) LineItem {
	i.plateNumber = n
	return i
}

func (i *LineItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *LineItem) setProduct(productID kernel.UUID, variantID *kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("productId", err)
	}
	i.productID = productID

	if variantID != nil {
		if err := variantID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("variantId", err)
		}
		id := *variantID
		i.variantID = &id
	}
	return nil
}

func (i *LineItem) setQuantity(quantity int) error {
	if quantity < 1 || quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxQuantity)
	}
	i.quantity = quantity
	return nil
}

func (i *LineItem) setUnitPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%s is negative", price))
	}
	i.unitPrice = price
	return nil
}
