package catalog

import (
	"strings"
	"time"

	"github.com/blendworks/backend/internal/domain/shared"
)

// CustomSKU reserves a hand-assigned SKU so generated codes never collide
// with it. Rows are also written for every generated SKU, making the table
// the single uniqueness registry.
type CustomSKU struct {
	shared.BaseAggregateRoot
	SKU         string `gorm:"type:varchar(50);not null;uniqueIndex:idx_custom_sku"`
	ProductName string `gorm:"type:varchar(200);not null"`
	Description string `gorm:"type:text"`
	IsGenerated bool   `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (CustomSKU) TableName() string {
	return "custom_skus"
}

// NewCustomSKU registers a hand-assigned SKU
func NewCustomSKU(sku, productName string) (*CustomSKU, error) {
	return newSKU(sku, productName, false)
}

// NewGeneratedSKU registers a system-generated SKU
func NewGeneratedSKU(sku, productName string) (*CustomSKU, error) {
	return newSKU(sku, productName, true)
}

func newSKU(sku, productName string, generated bool) (*CustomSKU, error) {
	sku = strings.ToUpper(strings.TrimSpace(sku))
	productName = strings.TrimSpace(productName)
	if sku == "" {
		return nil, shared.NewDomainError("INVALID_SKU", "SKU cannot be empty")
	}
	if len(sku) > 50 {
		return nil, shared.NewDomainError("INVALID_SKU", "SKU cannot exceed 50 characters")
	}
	if productName == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}

	return &CustomSKU{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		SKU:               sku,
		ProductName:       productName,
		IsGenerated:       generated,
	}, nil
}

// Reassign points the SKU at a different product name
func (s *CustomSKU) Reassign(productName string) error {
	productName = strings.TrimSpace(productName)
	if productName == "" {
		return shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	s.ProductName = productName
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}
