package recipe

import (
	"context"

	"github.com/google/uuid"

	"github.com/blendworks/backend/internal/domain/shared"
)

// RecipeRepository defines the interface for recipe persistence
type RecipeRepository interface {
	// FindByID finds a recipe with its items
	FindByID(ctx context.Context, id uuid.UUID) (*Recipe, error)

	// FindByName finds a recipe by its unique name
	FindByName(ctx context.Context, name string) (*Recipe, error)

	// FindAll finds recipes matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Recipe, error)

	// FindActive finds active recipes
	FindActive(ctx context.Context, filter shared.Filter) ([]Recipe, error)

	// Save creates or updates a recipe including its items
	Save(ctx context.Context, r *Recipe) error

	// SaveWithLock saves with optimistic locking (checks version)
	SaveWithLock(ctx context.Context, r *Recipe) error

	// Delete deletes a recipe and its items
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts recipes matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// FinalProductRepository defines the interface for final product persistence
type FinalProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*FinalProduct, error)
	FindByName(ctx context.Context, name string) (*FinalProduct, error)
	FindByRecipe(ctx context.Context, recipeID uuid.UUID) ([]FinalProduct, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]FinalProduct, error)
	Save(ctx context.Context, p *FinalProduct) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
