package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductView is a menu entry.
type ProductView struct {
	ID       kernel.UUID
	Name     string
	Price    decimal.Decimal
	Cost     decimal.Decimal
	ImageURL string
	Variants []VariantView
}

// VariantView is an orderable variant of a ProductView.
type VariantView struct {
	ID       kernel.UUID
	Name     string
	Price    decimal.Decimal
	Cost     decimal.Decimal
	SKU      string
	ImageURL string
}

type GetProductsQueryHandler struct {
	db *gorm.DB
}

func NewGetProductsQueryHandler(db *gorm.DB) GetProductsQueryHandler {
	return GetProductsQueryHandler{db: db}
}

// Handle returns products with their active variants. A LEFT JOIN keeps
// products without variants; their variant columns come back NULL.
func (h GetProductsQueryHandler) Handle(ctx context.Context, query GetProductsQuery) ([]ProductView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.name,
			p.price,
			p.cost,
			p.image_url,
			v.id,
			v.name,
			v.price,
			v.cost,
			v.sku,
			v.image_url
		FROM products p
		LEFT JOIN product_variants v ON v.product_id = p.id AND v.active
		ORDER BY p.name, p.id, v.position
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]ProductView, 0)
	for rows.Next() {
		var (
			productID uuid.UUID
			p         ProductView
			variantID uuid.NullUUID
			vName     *string
			vPrice    decimal.NullDecimal
			vCost     decimal.NullDecimal
			vSKU      *string
			vImage    *string
		)

		if err = rows.Scan(
			&productID,
			&p.Name,
			&p.Price,
			&p.Cost,
			&p.ImageURL,
			&variantID,
			&vName,
			&vPrice,
			&vCost,
			&vSKU,
			&vImage,
		); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromGoogle(productID)
		if idErr != nil {
			return nil, idErr
		}
		if n := len(products); n == 0 || !products[n-1].ID.IsEqual(id) {
			p.ID = id
			p.Variants = make([]VariantView, 0)
			products = append(products, p)
		}

		if !variantID.Valid {
			continue
		}
		vID, idErr := kernel.UUIDFromGoogle(variantID.UUID)
		if idErr != nil {
			return nil, idErr
		}
		last := &products[len(products)-1]
		last.Variants = append(last.Variants, VariantView{
			ID:       vID,
			Name:     deref(vName),
			Price:    vPrice.Decimal,
			Cost:     vCost.Decimal,
			SKU:      deref(vSKU),
			ImageURL: deref(vImage),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
