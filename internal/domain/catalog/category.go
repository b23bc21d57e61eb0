package catalog

import (
	"strings"
	"time"

	"github.com/blendworks/backend/internal/domain/shared"
)

// CategoryStatus represents the status of a product category
type CategoryStatus string

const (
	CategoryStatusActive   CategoryStatus = "active"
	CategoryStatusInactive CategoryStatus = "inactive"
)

// ProductCategory groups products and raw materials for listing and SKU
// prefix generation. The category list is flat.
type ProductCategory struct {
	shared.BaseAggregateRoot
	Name        string         `gorm:"type:varchar(100);not null;uniqueIndex:idx_product_category_name"`
	Description string         `gorm:"type:text"`
	SortOrder   int            `gorm:"not null;default:0"`
	Status      CategoryStatus `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (ProductCategory) TableName() string {
	return "product_categories"
}

// NewProductCategory creates a new active category
func NewProductCategory(name string) (*ProductCategory, error) {
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}

	return &ProductCategory{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		Status:            CategoryStatusActive,
	}, nil
}

// Update updates the category's basic information
func (c *ProductCategory) Update(name, description string) error {
	if err := validateCategoryName(name); err != nil {
		return err
	}

	c.Name = strings.TrimSpace(name)
	c.Description = description
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}

// SetSortOrder sets the display order of the category
func (c *ProductCategory) SetSortOrder(order int) {
	c.SortOrder = order
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// Activate activates the category
func (c *ProductCategory) Activate() error {
	if c.Status == CategoryStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Category is already active")
	}
	c.Status = CategoryStatusActive
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}

// Deactivate deactivates the category
func (c *ProductCategory) Deactivate() error {
	if c.Status == CategoryStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Category is already inactive")
	}
	c.Status = CategoryStatusInactive
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}

// IsActive returns true if the category is active
func (c *ProductCategory) IsActive() bool {
	return c.Status == CategoryStatusActive
}

func validateCategoryName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot exceed 100 characters")
	}
	return nil
}
