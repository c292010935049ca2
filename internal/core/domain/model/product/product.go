package product

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrProductIsNotConstructed is returned when a Product was not built by NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

	// ErrProductInUse is the cause attached when a product referenced by orders is deleted.
	ErrProductInUse = errors.New("product is referenced by existing orders")
)

// Details carries the editable fields of a product.
type Details struct {
	Name     string
	Price    decimal.Decimal
	Cost     decimal.Decimal
	ImageURL string
}

// VariantChange describes one variant in an update request. A nil ID asks for
// a new variant.
type VariantChange struct {
	ID      *kernel.UUID
	Details VariantDetails
}

// Quote is the priced menu entry an order line is cut from.
type Quote struct {
	ProductID   kernel.UUID
	ProductName string
	VariantID   *kernel.UUID
	VariantName string
	UnitPrice   decimal.Decimal
}

// Product is a menu entry.
type Product struct {
	id       kernel.UUID
	details  Details
	variants []Variant

	isConstructed bool
}

// NewProduct creates a product with its initial variants.
func NewProduct(id kernel.UUID, details Details, variants []VariantDetails) (*Product, error) {
	p := &Product{isConstructed: true}

	if err := errors.Join(p.setID(id), p.setDetails(details)); err != nil {
		return nil, err
	}
	for _, d := range variants {
		v, err := NewVariant(kernel.NewUUID(), d)
		if err != nil {
			return nil, err
		}
		p.variants = append(p.variants, v)
	}
	return p, nil
}

// RestoreProduct rebuilds a stored product.
func RestoreProduct(id kernel.UUID, details Details, variants []Variant) (*Product, error) {
	p := &Product{isConstructed: true}
	if err := errors.Join(p.setID(id), p.setDetails(details)); err != nil {
		return nil, err
	}
	for _, v := range variants {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	p.variants = slices.Clone(variants)
	return p, nil
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.UUID        { return p.id }
func (p *Product) Name() string           { return p.details.Name }
func (p *Product) Price() decimal.Decimal { return p.details.Price }
func (p *Product) Cost() decimal.Decimal  { return p.details.Cost }
func (p *Product) ImageURL() string       { return p.details.ImageURL }
func (p *Product) Variants() []Variant    { return slices.Clone(p.variants) }

// ActiveVariants returns the variants that can still be ordered.
func (p *Product) ActiveVariants() []Variant {
	return slices.DeleteFunc(p.Variants(), func(v Variant) bool { return !v.IsActive() })
}

// Variant looks a variant up by id.
func (p *Product) Variant(id kernel.UUID) (Variant, bool) {
	i := slices.IndexFunc(p.variants, func(v Variant) bool { return v.ID().IsEqual(id) })
	if i < 0 {
		return Variant{}, false
	}
	return p.variants[i], true
}

// Update replaces the product details and synchronizes its variants: listed
// variants with an ID are updated, listed variants without one are created and
// variants not listed are removed.
func (p *Product) Update(details Details, changes []VariantChange) error {
	next := make([]Variant, 0, len(changes))
	for _, c := range changes {
		id := kernel.NewUUID()
		if c.ID != nil {
			if _, ok := p.Variant(*c.ID); !ok {
				return errs.NewObjectNotFoundError("variantId", c.ID.String())
			}
			id = *c.ID
		}
		v, err := NewVariant(id, c.Details)
		if err != nil {
			return err
		}
		next = append(next, v)
	}

	if err := p.setDetails(details); err != nil {
		return err
	}
	p.variants = next
	return nil
}

// Quote prices one unit of the product, or of the given variant of it.
// The variant must belong to the product and be active.
func (p *Product) Quote(variantID *kernel.UUID) (Quote, error) {
	q := Quote{
		ProductID:   p.id,
		ProductName: p.details.Name,
		UnitPrice:   p.details.Price,
	}
	if variantID == nil {
		return q, nil
	}

	v, ok := p.Variant(*variantID)
	if !ok {
		return Quote{}, errs.NewValueIsInvalidErrorWithCause("variantId",
			fmt.Errorf("variant %s does not belong to product %s", variantID, p.id))
	}
	if !v.IsActive() {
		return Quote{}, errs.NewValueIsInvalidErrorWithCause("variantId",
			fmt.Errorf("variant %s is inactive", variantID))
	}

	id := v.ID()
	q.VariantID = &id
	q.VariantName = v.Name()
	q.UnitPrice = v.Price()
	return q, nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setDetails(d Details) error {
	d.Name = strings.TrimSpace(d.Name)
	d.ImageURL = strings.TrimSpace(d.ImageURL)

	var errList []error
	if d.Name == "" {
		errList = append(errList, errs.NewValueIsRequiredError("name"))
	}
	if !d.Price.IsPositive() {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is not greater than 0", d.Price)))
	}
	if d.Cost.IsNegative() {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("cost", fmt.Errorf("%s is negative", d.Cost)))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}
	p.details = d
	return nil
}
