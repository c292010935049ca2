// Package productrepo persists menu products and their variants.
package productrepo

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting products.
type ProductDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name      string          `gorm:"type:varchar(255);not null;index"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Cost      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ImageURL  string          `gorm:"type:text;not null;default:''"`
	CreatedAt time.Time
	Variants  []VariantDTO `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (ProductDTO) TableName() string {
	return "products"
}

// VariantDTO represents a product variant row.
type VariantDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position  int             `gorm:"type:int;not null"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Cost      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	SKU       string          `gorm:"type:varchar(64);not null;default:''"`
	ImageURL  string          `gorm:"type:text;not null;default:''"`
	Active    bool            `gorm:"not null"`
}

func (VariantDTO) TableName() string {
	return "product_variants"
}

func fromDomain(p *product.Product) ProductDTO {
	productID := p.ID().Google()
	variants := p.Variants()

	dtoVariants := make([]VariantDTO, 0, len(variants))
	for i, v := range variants {
		dtoVariants = append(dtoVariants, VariantDTO{
			ID:        v.ID().Google(),
			ProductID: productID,
			Position:  i,
			Name:      v.Name(),
			Price:     v.Price(),
			Cost:      v.Cost(),
			SKU:       v.SKU(),
			ImageURL:  v.ImageURL(),
			Active:    v.IsActive(),
		})
	}

	return ProductDTO{
		ID:       productID,
		Name:     p.Name(),
		Price:    p.Price(),
		Cost:     p.Cost(),
		ImageURL: p.ImageURL(),
		Variants: dtoVariants,
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	variants := make([]product.Variant, 0, len(dto.Variants))
	for _, vDTO := range dto.Variants {
		vID, vErr := kernel.UUIDFromGoogle(vDTO.ID)
		if vErr != nil {
			return nil, vErr
		}
		v, vErr := product.NewVariant(vID, product.VariantDetails{
			Name:     vDTO.Name,
			Price:    vDTO.Price,
			Cost:     vDTO.Cost,
			SKU:      vDTO.SKU,
			ImageURL: vDTO.ImageURL,
			Active:   vDTO.Active,
		})
		if vErr != nil {
			return nil, vErr
		}
		variants = append(variants, v)
	}

	return product.RestoreProduct(id, product.Details{
		Name:     dto.Name,
		Price:    dto.Price,
		Cost:     dto.Cost,
		ImageURL: dto.ImageURL,
	}, variants)
}
