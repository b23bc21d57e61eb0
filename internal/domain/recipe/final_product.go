package recipe

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/blendworks/backend/internal/domain/shared"
)

// FinalProduct is a sellable product built from a recipe. Markup, margin and
// profit are never stored; they are derived from the recipe cost and the
// selling price whenever the product is read.
type FinalProduct struct {
	shared.BaseAggregateRoot
	Name             string          `gorm:"type:varchar(200);not null;uniqueIndex:idx_final_product_name"`
	RecipeID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	UnitSellingPrice decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	BagSizeGrams     decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Category         string          `gorm:"type:varchar(100)"`
	IsActive         bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (FinalProduct) TableName() string {
	return "final_products"
}

// NewFinalProduct creates a new final product linked to a recipe
func NewFinalProduct(name string, recipeID uuid.UUID, sellingPrice decimal.Decimal) (*FinalProduct, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if recipeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_RECIPE", "Recipe ID cannot be empty")
	}
	if sellingPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Selling price cannot be negative")
	}

	return &FinalProduct{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		RecipeID:          recipeID,
		UnitSellingPrice:  sellingPrice,
		IsActive:          true,
	}, nil
}

// SetSellingPrice updates the unit selling price
func (p *FinalProduct) SetSellingPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Selling price cannot be negative")
	}
	p.UnitSellingPrice = price
	p.touch()
	return nil
}

// SetBagSize records the packed weight per bag
func (p *FinalProduct) SetBagSize(grams decimal.Decimal) error {
	if grams.IsNegative() {
		return shared.NewDomainError("INVALID_BAG_SIZE", "Bag size cannot be negative")
	}
	p.BagSizeGrams = grams
	p.touch()
	return nil
}

// SwitchRecipe points the product at a different recipe
func (p *FinalProduct) SwitchRecipe(recipeID uuid.UUID) error {
	if recipeID == uuid.Nil {
		return shared.NewDomainError("INVALID_RECIPE", "Recipe ID cannot be empty")
	}
	p.RecipeID = recipeID
	p.touch()
	return nil
}

// Deactivate retires the product
func (p *FinalProduct) Deactivate() {
	p.IsActive = false
	p.touch()
}

func (p *FinalProduct) touch() {
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}
