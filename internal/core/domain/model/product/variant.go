package product

import (
	"errors"
	"fmt"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrVariantIsNotConstructed is returned when a Variant was not built by NewVariant.
var ErrVariantIsNotConstructed = errors.New("Variant must be created via NewVariant constructor")

// VariantDetails carries the editable fields of a variant.
type VariantDetails struct {
	Name     string
	Price    decimal.Decimal
	Cost     decimal.Decimal
	SKU      string
	ImageURL string
	Active   bool
}

// Variant is a priced option of a product. Inactive variants stay attached to
// past orders but can no longer be ordered.
type Variant struct {
	id      kernel.UUID
	details VariantDetails
	guard   guard.ConstructorGuard
}

// NewVariant validates details and creates a variant.
func NewVariant(id kernel.UUID, details VariantDetails) (Variant, error) {
	if err := id.Validate(); err != nil {
		return Variant{}, err
	}
	if err := validateVariantDetails(&details); err != nil {
		return Variant{}, err
	}
	return Variant{id: id, details: details, guard: guard.NewConstructorGuard()}, nil
}

func (v Variant) Validate() error {
	return v.guard.Validate(ErrVariantIsNotConstructed)
}

func (v Variant) ID() kernel.UUID         { return v.id }
func (v Variant) Name() string            { return v.details.Name }
func (v Variant) Price() decimal.Decimal  { return v.details.Price }
func (v Variant) Cost() decimal.Decimal   { return v.details.Cost }
func (v Variant) SKU() string             { return v.details.SKU }
func (v Variant) ImageURL() string        { return v.details.ImageURL }
func (v Variant) IsActive() bool          { return v.details.Active }
func (v Variant) Details() VariantDetails { return v.details }

func validateVariantDetails(d *VariantDetails) error {
	d.Name = strings.TrimSpace(d.Name)
	d.SKU = strings.TrimSpace(d.SKU)
	d.ImageURL = strings.TrimSpace(d.ImageURL)

	var errList []error
	if d.Name == "" {
		errList = append(errList, errs.NewValueIsRequiredError("variant.name"))
	}
	if d.Price.IsNegative() {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("variant.price", fmt.Errorf("%s is negative", d.Price)))
	}
	if d.Cost.IsNegative() {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("variant.cost", fmt.Errorf("%s is negative", d.Cost)))
	}
	return errors.Join(errList...)
}
