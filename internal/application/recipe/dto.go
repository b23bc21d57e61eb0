package recipe

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/blendworks/backend/internal/domain/recipe"
)

// RecipeItemRequest is one line in a recipe create or update request
type RecipeItemRequest struct {
	RawMaterialID uuid.UUID       `json:"raw_material_id" binding:"required"`
	Quantity      decimal.Decimal `json:"quantity" binding:"required"`
	Unit          string          `json:"unit"`
}

// CreateRecipeRequest creates a recipe with its lines
type CreateRecipeRequest struct {
	Name  string              `json:"name" binding:"required"`
	Notes string              `json:"notes"`
	Items []RecipeItemRequest `json:"items" binding:"required"`
}

// UpdateRecipeRequest replaces a recipe's name and lines
type UpdateRecipeRequest struct {
	Name  string              `json:"name" binding:"required"`
	Notes string              `json:"notes"`
	Items []RecipeItemRequest `json:"items" binding:"required"`
}

// CreateFinalProductRequest registers a sellable product built from a recipe
type CreateFinalProductRequest struct {
	Name         string          `json:"name" binding:"required"`
	RecipeID     uuid.UUID       `json:"recipe_id" binding:"required"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	BagSizeGrams decimal.Decimal `json:"bag_size_grams"`
	Category     string          `json:"category"`
}

// UpdateFinalProductRequest updates a final product's pricing or recipe link
type UpdateFinalProductRequest struct {
	SellingPrice *decimal.Decimal `json:"selling_price"`
	BagSizeGrams *decimal.Decimal `json:"bag_size_grams"`
	RecipeID     *uuid.UUID       `json:"recipe_id"`
}

// ListFilter represents filter options for recipe and product lists
type ListFilter struct {
	Search     string `form:"search"`
	ActiveOnly *bool  `form:"active_only"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// RecipeItemResponse is one recipe line in API responses
type RecipeItemResponse struct {
	ID               uuid.UUID       `json:"id"`
	RawMaterialID    uuid.UUID       `json:"raw_material_id"`
	RawMaterialName  string          `json:"raw_material_name"`
	Quantity         decimal.Decimal `json:"quantity"`
	Unit             string          `json:"unit"`
	UnitCostSnapshot decimal.Decimal `json:"unit_cost_snapshot"`
	SortOrder        int             `json:"sort_order"`
}

// RecipeResponse represents a recipe in API responses
type RecipeResponse struct {
	ID        uuid.UUID            `json:"id"`
	Name      string               `json:"name"`
	IsActive  bool                 `json:"is_active"`
	Notes     string               `json:"notes,omitempty"`
	Items     []RecipeItemResponse `json:"items"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
	Version   int                  `json:"version"`
}

// FinalProductResponse represents a final product with its derived costing.
// Markup, margin and profit are computed from current raw-material costs at
// read time, never read from storage.
type FinalProductResponse struct {
	ID               uuid.UUID       `json:"id"`
	Name             string          `json:"name"`
	RecipeID         uuid.UUID       `json:"recipe_id"`
	UnitSellingPrice decimal.Decimal `json:"unit_selling_price"`
	BagSizeGrams     decimal.Decimal `json:"bag_size_grams"`
	Category         string          `json:"category,omitempty"`
	IsActive         bool            `json:"is_active"`
	Costing          *recipe.Costing `json:"costing,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	Version          int             `json:"version"`
}

// ToRecipeResponse converts a domain recipe to its API representation
func ToRecipeResponse(r *recipe.Recipe) RecipeResponse {
	items := make([]RecipeItemResponse, len(r.Items))
	for i, item := range r.Items {
		items[i] = RecipeItemResponse{
			ID:               item.ID,
			RawMaterialID:    item.RawMaterialID,
			RawMaterialName:  item.RawMaterialName,
			Quantity:         item.Quantity,
			Unit:             item.Unit,
			UnitCostSnapshot: item.UnitCostSnapshot,
			SortOrder:        item.SortOrder,
		}
	}
	return RecipeResponse{
		ID:        r.ID,
		Name:      r.Name,
		IsActive:  r.IsActive,
		Notes:     r.Notes,
		Items:     items,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		Version:   r.Version,
	}
}

// ToRecipeResponses converts a slice of domain recipes
func ToRecipeResponses(recipes []recipe.Recipe) []RecipeResponse {
	responses := make([]RecipeResponse, len(recipes))
	for i := range recipes {
		responses[i] = ToRecipeResponse(&recipes[i])
	}
	return responses
}

// ToFinalProductResponse converts a final product; costing is attached by the
// service when the recipe could be priced
func ToFinalProductResponse(p *recipe.FinalProduct, costing *recipe.Costing) FinalProductResponse {
	return FinalProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		RecipeID:         p.RecipeID,
		UnitSellingPrice: p.UnitSellingPrice,
		BagSizeGrams:     p.BagSizeGrams,
		Category:         p.Category,
		IsActive:         p.IsActive,
		Costing:          costing,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
		Version:          p.Version,
	}
}
