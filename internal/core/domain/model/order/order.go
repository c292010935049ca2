package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/plate"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of the ordering workflow. It owns its line items
// and keeps three invariants:
//   - every line item sits on a positive plate, and CompactPlates makes the plates 1..k
//   - the total equals Σ quantity × unit price, maintained on every item change
//   - status changes and item changes go through the Status state machine
type Order struct {
	id            kernel.UUID
	customerName  string
	kind          Kind
	status        Status
	paymentMethod *PaymentMethod
	total         decimal.Decimal
	items         []LineItem
	createdAt     time.Time
	updatedAt     time.Time

	isConstructed bool
}

// State is the persisted shape of an order, used to rebuild the aggregate.
type State struct {
	ID            kernel.UUID
	CustomerName  string
	Kind          Kind
	Status        Status
	PaymentMethod *PaymentMethod
	Total         decimal.Decimal
	Items         []LineItem
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewOrder opens an empty order in Received status with a zero total.
// Items are added afterwards with AddItem.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), "Mesa 4", order.DineIn, nil)
//	if err != nil {
//	    return err
//	}
//	if err := o.AddItem(item); err != nil {
//	    return err
//	}
//	o.CompactPlates()
func NewOrder(id kernel.UUID, customerName string, kind Kind, paymentMethod *PaymentMethod) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:        Received,
		total:         decimal.Zero,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerName(customerName),
		o.setKind(kind),
		o.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order read from storage without replaying its history.
// A status outside the state machine yields an *InvalidStateError.
func RestoreOrder(s State) (*Order, error) {
	o := &Order{
		status:        s.Status,
		total:         s.Total,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
		isConstructed: true,
	}

	if err := s.Status.Validate(); err != nil {
		return nil, err
	}
	if err := errors.Join(
		o.setID(s.ID),
		o.setCustomerName(s.CustomerName),
		o.setKind(s.Kind),
		o.setPaymentMethod(s.PaymentMethod),
	); err != nil {
		return nil, err
	}
	for _, item := range s.Items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	o.items = slices.Clone(s.Items)

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerName() string {
	return o.customerName
}

func (o *Order) Kind() Kind {
	return o.kind
}

func (o *Order) Status() Status {
	return o.status
}

// PaymentMethod returns nil until a payment method was recorded.
func (o *Order) PaymentMethod() *PaymentMethod {
	if o.paymentMethod == nil {
		return nil
	}
	m := *o.paymentMethod
	return &m
}

// Total is the incrementally maintained sum of all line item subtotals.
func (o *Order) Total() decimal.Decimal {
	return o.total
}

// Items returns a copy of the line items in insertion order.
func (o *Order) Items() []LineItem {
	return slices.Clone(o.items)
}

// Item looks a line item up by id.
func (o *Order) Item(id kernel.UUID) (LineItem, bool) {
	i := o.indexOf(id)
	if i < 0 {
		return LineItem{}, false
	}
	return o.items[i], true
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ComputedTotal sums the line items from scratch. It differs from Total only
// when stored data was altered outside the aggregate.
func (o *Order) ComputedTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range o.items {
		sum = sum.Add(item.Subtotal())
	}
	return sum
}

// AddItem appends an item and adds its subtotal to the total.
//
// The item's plate is resolved with plate.Normalize against the items already on
// the order: an explicit plate is kept, no preference opens the next plate.
// AddItem does not compact; call CompactPlates once the batch of additions is done.
func (o *Order) AddItem(item LineItem) error {
	if err := o.status.ValidateMutateLineItems(); err != nil {
		return err
	}
	if err := item.Validate(); err != nil {
		return err
	}
	if o.indexOf(item.ID()) >= 0 {
		return errs.NewObjectConflictError("itemId", item.ID().String())
	}

	placed := item.WithPlateNumber(plate.Normalize(item.PlateNumber(), o.items))
	o.items = append(o.items, placed)
	o.total = o.total.Add(placed.Subtotal())
	o.touch()
	return nil
}

// RemoveItem drops a line item, subtracts its subtotal and compacts the plates
// so that removing the last item of a plate leaves no gap.
func (o *Order) RemoveItem(itemID kernel.UUID) error {
	if err := o.status.ValidateMutateLineItems(); err != nil {
		return err
	}
	i := o.indexOf(itemID)
	if i < 0 {
		return errs.NewObjectNotFoundError("itemId", itemID.String())
	}

	removed := o.items[i]
	o.items = slices.Delete(o.items, i, i+1)
	o.total = o.total.Sub(removed.Subtotal())
	o.CompactPlates()
	o.touch()
	return nil
}

// CompactPlates renumbers the plates of the order to 1..k.
func (o *Order) CompactPlates() {
	o.items = plate.Compact(o.items)
}

// Plates groups the line items by plate for a kitchen ticket.
func (o *Order) Plates() []plate.Plate[LineItem] {
	return plate.Group(o.items)
}

// ChangeStatus moves the order to target if the state machine allows it.
// Requesting the current status is a no-op.
func (o *Order) ChangeStatus(target Status) error {
	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}
	if next == o.status {
		return nil
	}
	o.status = next
	o.touch()
	return nil
}

// ApplyAction performs ActionAdvance, ActionRevert or ActionCancel.
func (o *Order) ApplyAction(action string) error {
	next, err := o.status.Apply(action)
	if err != nil {
		return err
	}
	o.status = next
	o.touch()
	return nil
}

// SetPaymentMethod records or clears the payment method. It is allowed in any
// status since payment is often settled after delivery.
func (o *Order) SetPaymentMethod(m *PaymentMethod) error {
	if err := o.setPaymentMethod(m); err != nil {
		return err
	}
	o.touch()
	return nil
}

func (o *Order) indexOf(itemID kernel.UUID) int {
	return slices.IndexFunc(o.items, func(item LineItem) bool {
		return item.ID().IsEqual(itemID)
	})
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	if len(name) > 120 {
		return errs.NewValueIsInvalidErrorWithCause("customerName", fmt.Errorf("%d characters exceed the limit of 120", len(name)))
	}
	o.customerName = name
	return nil
}

func (o *Order) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	o.kind = kind
	return nil
}

func (o *Order) setPaymentMethod(m *PaymentMethod) error {
	if m == nil {
		o.paymentMethod = nil
		return nil
	}
	if err := m.Validate(); err != nil {
		return err
	}
	v := *m
	o.paymentMethod = &v
	return nil
}
