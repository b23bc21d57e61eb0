package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/blendworks/backend/internal/domain/recipe"
	"github.com/blendworks/backend/internal/domain/shared"
)

// GormRecipeRepository implements RecipeRepository using GORM
type GormRecipeRepository struct {
	db *gorm.DB
}

// NewGormRecipeRepository creates a new GormRecipeRepository
func NewGormRecipeRepository(db *gorm.DB) *GormRecipeRepository {
	return &GormRecipeRepository{db: db}
}

// FindByID finds a recipe with its items
func (r *GormRecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	var rec recipe.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	rec.MarkLoaded()
	return &rec, nil
}

// FindByName finds a recipe by its unique name
func (r *GormRecipeRepository) FindByName(ctx context.Context, name string) (*recipe.Recipe, error) {
	var rec recipe.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Where("LOWER(name) = LOWER(?)", name).
		First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	rec.MarkLoaded()
	return &rec, nil
}

// FindAll finds recipes matching the filter
func (r *GormRecipeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]recipe.Recipe, error) {
	return r.findWhere(ctx, filter, nil)
}

// FindActive finds active recipes
func (r *GormRecipeRepository) FindActive(ctx context.Context, filter shared.Filter) ([]recipe.Recipe, error) {
	return r.findWhere(ctx, filter, func(q *gorm.DB) *gorm.DB {
		return q.Where("is_active = true")
	})
}

func (r *GormRecipeRepository) findWhere(ctx context.Context, filter shared.Filter, scope func(*gorm.DB) *gorm.DB) ([]recipe.Recipe, error) {
	var recipes []recipe.Recipe
	query := r.db.WithContext(ctx).Model(&recipe.Recipe{}).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		})
	if scope != nil {
		query = scope(query)
	}
	query = r.applyFilters(query, filter)
	query = applyPaginationAndOrder(query, filter, RecipeSortFields)
	if err := query.Find(&recipes).Error; err != nil {
		return nil, err
	}
	for i := range recipes {
		recipes[i].MarkLoaded()
	}
	return recipes, nil
}

// Save persists the recipe including its items
func (r *GormRecipeRepository) Save(ctx context.Context, rec *recipe.Recipe) error {
	if err := r.db.WithContext(ctx).Save(rec).Error; err != nil {
		return err
	}
	rec.MarkLoaded()
	return nil
}

// SaveWithLock saves with optimistic locking. The version check uses the
// version the row was read with, since one edit may step the in-memory
// version more than once before it is persisted. Items are replaced in
// full so the stored rows mirror the aggregate.
func (r *GormRecipeRepository) SaveWithLock(ctx context.Context, rec *recipe.Recipe) error {
	result := r.db.WithContext(ctx).
		Model(rec).
		Where("id = ? AND version = ?", rec.ID, rec.LoadedVersion()).
		Updates(map[string]interface{}{
			"name":       rec.Name,
			"is_active":  rec.IsActive,
			"notes":      rec.Notes,
			"version":    rec.Version,
			"updated_at": rec.UpdatedAt,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError("OPTIMISTIC_LOCK_FAILED", "Recipe was modified by another transaction")
	}

	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", rec.ID).
		Delete(&recipe.RecipeItem{}).Error; err != nil {
		return err
	}
	if len(rec.Items) > 0 {
		for i := range rec.Items {
			rec.Items[i].RecipeID = rec.ID
		}
		if err := r.db.WithContext(ctx).Create(&rec.Items).Error; err != nil {
			return err
		}
	}
	rec.MarkLoaded()
	return nil
}

// Delete deletes a recipe and its items
func (r *GormRecipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", id).
		Delete(&recipe.RecipeItem{}).Error; err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&recipe.Recipe{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts recipes matching the filter
func (r *GormRecipeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilters(r.db.WithContext(ctx).Model(&recipe.Recipe{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormRecipeRepository) applyFilters(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	if active, ok := filter.Filters["is_active"]; ok {
		query = query.Where("is_active = ?", active)
	}
	return query
}

// Ensure GormRecipeRepository implements RecipeRepository
var _ recipe.RecipeRepository = (*GormRecipeRepository)(nil)

// GormFinalProductRepository implements FinalProductRepository using GORM
type GormFinalProductRepository struct {
	db *gorm.DB
}

// NewGormFinalProductRepository creates a new GormFinalProductRepository
func NewGormFinalProductRepository(db *gorm.DB) *GormFinalProductRepository {
	return &GormFinalProductRepository{db: db}
}

// FindByID finds a final product by its ID
func (r *GormFinalProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*recipe.FinalProduct, error) {
	var product recipe.FinalProduct
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	product.MarkLoaded()
	return &product, nil
}

// FindByName finds a final product by its unique name
func (r *GormFinalProductRepository) FindByName(ctx context.Context, name string) (*recipe.FinalProduct, error) {
	var product recipe.FinalProduct
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	product.MarkLoaded()
	return &product, nil
}

// FindByRecipe finds final products priced off a recipe
func (r *GormFinalProductRepository) FindByRecipe(ctx context.Context, recipeID uuid.UUID) ([]recipe.FinalProduct, error) {
	var products []recipe.FinalProduct
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("name ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	for i := range products {
		products[i].MarkLoaded()
	}
	return products, nil
}

// FindAll finds final products matching the filter
func (r *GormFinalProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]recipe.FinalProduct, error) {
	var products []recipe.FinalProduct
	query := r.applyFilters(r.db.WithContext(ctx).Model(&recipe.FinalProduct{}), filter)
	query = applyPaginationAndOrder(query, filter, FinalProductSortFields)
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	for i := range products {
		products[i].MarkLoaded()
	}
	return products, nil
}

// Save creates or updates a final product
func (r *GormFinalProductRepository) Save(ctx context.Context, product *recipe.FinalProduct) error {
	if err := r.db.WithContext(ctx).Save(product).Error; err != nil {
		return err
	}
	product.MarkLoaded()
	return nil
}

// Delete deletes a final product
func (r *GormFinalProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&recipe.FinalProduct{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts final products matching the filter
func (r *GormFinalProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilters(r.db.WithContext(ctx).Model(&recipe.FinalProduct{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormFinalProductRepository) applyFilters(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	for key, value := range filter.Filters {
		switch key {
		case "category":
			query = query.Where("category = ?", value)
		case "is_active":
			query = query.Where("is_active = ?", value)
		case "recipe_id":
			query = query.Where("recipe_id = ?", value)
		}
	}
	return query
}

// Ensure GormFinalProductRepository implements FinalProductRepository
var _ recipe.FinalProductRepository = (*GormFinalProductRepository)(nil)
