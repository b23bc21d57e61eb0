package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/blendworks/backend/internal/domain/catalog"
)

// CreateCategoryRequest creates a product category
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
}

// UpdateCategoryRequest updates a product category
type UpdateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	SortOrder   *int   `json:"sort_order"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateRawMaterialRequest registers a raw material
type CreateRawMaterialRequest struct {
	Name        string          `json:"name" binding:"required"`
	Unit        string          `json:"unit"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	SupplierID  *uuid.UUID      `json:"supplier_id"`
	IsAllergen  bool            `json:"is_allergen"`
	CountryCode string          `json:"country_code"`
}

// UpdateRawMaterialRequest updates a raw material
type UpdateRawMaterialRequest struct {
	Name       *string          `json:"name"`
	UnitCost   *decimal.Decimal `json:"unit_cost"`
	SupplierID *uuid.UUID       `json:"supplier_id"`
	IsAllergen *bool            `json:"is_allergen"`
}

// RawMaterialResponse represents a raw material in API responses
type RawMaterialResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Unit        string          `json:"unit"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	SupplierID  *uuid.UUID      `json:"supplier_id,omitempty"`
	IsAllergen  bool            `json:"is_allergen"`
	CountryCode string          `json:"country_code,omitempty"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Version     int             `json:"version"`
}

// RegisterSKURequest registers a manually chosen SKU
type RegisterSKURequest struct {
	SKU         string `json:"sku" binding:"required"`
	ProductName string `json:"product_name" binding:"required"`
}

// SKUResponse represents a registered SKU in API responses
type SKUResponse struct {
	ID          uuid.UUID `json:"id"`
	SKU         string    `json:"sku"`
	ProductName string    `json:"product_name"`
	IsGenerated bool      `json:"is_generated"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListFilter represents filter options for catalog lists
type ListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ToCategoryResponse converts a domain category to its API representation
func ToCategoryResponse(c *catalog.ProductCategory) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Status:      string(c.Status),
		SortOrder:   c.SortOrder,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToCategoryResponses converts a slice of domain categories
func ToCategoryResponses(categories []catalog.ProductCategory) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = ToCategoryResponse(&categories[i])
	}
	return responses
}

// ToRawMaterialResponse converts a domain raw material
func ToRawMaterialResponse(m *catalog.RawMaterial) RawMaterialResponse {
	return RawMaterialResponse{
		ID:          m.ID,
		Name:        m.Name,
		Unit:        m.Unit,
		UnitCost:    m.UnitCost,
		SupplierID:  m.SupplierID,
		IsAllergen:  m.IsAllergen,
		CountryCode: m.CountryCode,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		Version:     m.Version,
	}
}

// ToRawMaterialResponses converts a slice of domain raw materials
func ToRawMaterialResponses(materials []catalog.RawMaterial) []RawMaterialResponse {
	responses := make([]RawMaterialResponse, len(materials))
	for i := range materials {
		responses[i] = ToRawMaterialResponse(&materials[i])
	}
	return responses
}

// ToSKUResponse converts a domain SKU registration
func ToSKUResponse(s *catalog.CustomSKU) SKUResponse {
	return SKUResponse{
		ID:          s.ID,
		SKU:         s.SKU,
		ProductName: s.ProductName,
		IsGenerated: s.IsGenerated,
		CreatedAt:   s.CreatedAt,
	}
}
