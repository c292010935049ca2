package order

import (
	"fmt"
	"slices"

	"restaurant/internal/pkg/errs"
)

// Kind tells the kitchen how the order leaves the restaurant.
type Kind string

const (
	DineIn   Kind = "DINE_IN"
	Takeout  Kind = "TAKEOUT"
	Delivery Kind = "DELIVERY"
)

// DefaultKind is used when an order is placed without a kind.
const DefaultKind = DineIn

func validKinds() []Kind {
	return []Kind{DineIn, Takeout, Delivery}
}

// ParseKind converts a request value. An empty value yields DefaultKind.
func ParseKind(s string) (Kind, error) {
	if s == "" {
		return DefaultKind, nil
	}
	k := Kind(s)
	if err := k.Validate(); err != nil {
		return "", err
	}
	return k, nil
}

func (k Kind) Validate() error {
	if !slices.Contains(validKinds(), k) {
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a valid order kind", string(k)))
	}
	return nil
}

func (k Kind) String() string {
	return string(k)
}

// PaymentMethod is how the customer settled the bill. It is usually recorded
// after the order was placed.
type PaymentMethod string

const (
	Cash     PaymentMethod = "CASH"
	Card     PaymentMethod = "CARD"
	Transfer PaymentMethod = "TRANSFER"
)

// PaymentMethods lists the accepted payment methods.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{Cash, Card, Transfer}
}

// ParsePaymentMethod converts a request value.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(s)
	if err := m.Validate(); err != nil {
		return "", err
	}
	return m, nil
}

func (m PaymentMethod) Validate() error {
	if !slices.Contains(PaymentMethods(), m) {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod", fmt.Errorf("%q is not a valid payment method", string(m)))
	}
	return nil
}

func (m PaymentMethod) String() string {
	return string(m)
}
