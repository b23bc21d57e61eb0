package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/blendworks/backend/internal/domain/catalog"
	"github.com/blendworks/backend/internal/domain/shared"
)

// GormProductCategoryRepository implements ProductCategoryRepository using GORM
type GormProductCategoryRepository struct {
	db *gorm.DB
}

// NewGormProductCategoryRepository creates a new GormProductCategoryRepository
func NewGormProductCategoryRepository(db *gorm.DB) *GormProductCategoryRepository {
	return &GormProductCategoryRepository{db: db}
}

// FindByID finds a category by its ID
func (r *GormProductCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.ProductCategory, error) {
	var category catalog.ProductCategory
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	category.MarkLoaded()
	return &category, nil
}

// FindByName finds a category by name
func (r *GormProductCategoryRepository) FindByName(ctx context.Context, name string) (*catalog.ProductCategory, error) {
	var category catalog.ProductCategory
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	category.MarkLoaded()
	return &category, nil
}

// FindAll finds categories matching the filter
func (r *GormProductCategoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.ProductCategory, error) {
	var categories []catalog.ProductCategory
	query := r.applyFilters(r.db.WithContext(ctx).Model(&catalog.ProductCategory{}), filter)
	query = applyPaginationAndOrder(query, filter, CategorySortFields)
	if err := query.Find(&categories).Error; err != nil {
		return nil, err
	}
	for i := range categories {
		categories[i].MarkLoaded()
	}
	return categories, nil
}

// FindActive finds active categories in display order
func (r *GormProductCategoryRepository) FindActive(ctx context.Context) ([]catalog.ProductCategory, error) {
	var categories []catalog.ProductCategory
	if err := r.db.WithContext(ctx).
		Where("status = ?", catalog.CategoryStatusActive).
		Order("sort_order ASC, name ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	for i := range categories {
		categories[i].MarkLoaded()
	}
	return categories, nil
}

// Save creates or updates a category
func (r *GormProductCategoryRepository) Save(ctx context.Context, category *catalog.ProductCategory) error {
	if err := r.db.WithContext(ctx).Save(category).Error; err != nil {
		return err
	}
	category.MarkLoaded()
	return nil
}

// Delete deletes a category
func (r *GormProductCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.ProductCategory{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts categories matching the filter
func (r *GormProductCategoryRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilters(r.db.WithContext(ctx).Model(&catalog.ProductCategory{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByName checks whether a category name is already registered
func (r *GormProductCategoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.ProductCategory{}).
		Where("LOWER(name) = LOWER(?)", name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormProductCategoryRepository) applyFilters(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	return query
}

// Ensure GormProductCategoryRepository implements ProductCategoryRepository
var _ catalog.ProductCategoryRepository = (*GormProductCategoryRepository)(nil)

// GormRawMaterialRepository implements RawMaterialRepository using GORM
type GormRawMaterialRepository struct {
	db *gorm.DB
}

// NewGormRawMaterialRepository creates a new GormRawMaterialRepository
func NewGormRawMaterialRepository(db *gorm.DB) *GormRawMaterialRepository {
	return &GormRawMaterialRepository{db: db}
}

// FindByID finds a raw material by its ID
func (r *GormRawMaterialRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.RawMaterial, error) {
	var material catalog.RawMaterial
	if err := r.db.WithContext(ctx).First(&material, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	material.MarkLoaded()
	return &material, nil
}

// FindByName finds a raw material by name
func (r *GormRawMaterialRepository) FindByName(ctx context.Context, name string) (*catalog.RawMaterial, error) {
	var material catalog.RawMaterial
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		First(&material).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	material.MarkLoaded()
	return &material, nil
}

// FindByIDs finds raw materials by a set of IDs
func (r *GormRawMaterialRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.RawMaterial, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var materials []catalog.RawMaterial
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&materials).Error; err != nil {
		return nil, err
	}
	for i := range materials {
		materials[i].MarkLoaded()
	}
	return materials, nil
}

// FindAll finds raw materials matching the filter
func (r *GormRawMaterialRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.RawMaterial, error) {
	var materials []catalog.RawMaterial
	query := r.applyFilters(r.db.WithContext(ctx).Model(&catalog.RawMaterial{}), filter)
	query = applyPaginationAndOrder(query, filter, RawMaterialSortFields)
	if err := query.Find(&materials).Error; err != nil {
		return nil, err
	}
	for i := range materials {
		materials[i].MarkLoaded()
	}
	return materials, nil
}

// FindBySupplier finds raw materials sourced from a supplier
func (r *GormRawMaterialRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID, filter shared.Filter) ([]catalog.RawMaterial, error) {
	var materials []catalog.RawMaterial
	query := r.applyFilters(
		r.db.WithContext(ctx).Model(&catalog.RawMaterial{}).
			Where("supplier_id = ?", supplierID),
		filter,
	)
	query = applyPaginationAndOrder(query, filter, RawMaterialSortFields)
	if err := query.Find(&materials).Error; err != nil {
		return nil, err
	}
	for i := range materials {
		materials[i].MarkLoaded()
	}
	return materials, nil
}

// Save creates or updates a raw material
func (r *GormRawMaterialRepository) Save(ctx context.Context, material *catalog.RawMaterial) error {
	if err := r.db.WithContext(ctx).Save(material).Error; err != nil {
		return err
	}
	material.MarkLoaded()
	return nil
}

// Delete deletes a raw material
func (r *GormRawMaterialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.RawMaterial{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts raw materials matching the filter
func (r *GormRawMaterialRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilters(r.db.WithContext(ctx).Model(&catalog.RawMaterial{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByName checks whether a raw material name is already registered
func (r *GormRawMaterialRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.RawMaterial{}).
		Where("LOWER(name) = LOWER(?)", name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormRawMaterialRepository) applyFilters(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	for key, value := range filter.Filters {
		switch key {
		case "supplier_id":
			query = query.Where("supplier_id = ?", value)
		case "is_allergen":
			query = query.Where("is_allergen = ?", value)
		case "is_active":
			query = query.Where("is_active = ?", value)
		}
	}
	return query
}

// Ensure GormRawMaterialRepository implements RawMaterialRepository
var _ catalog.RawMaterialRepository = (*GormRawMaterialRepository)(nil)

// GormCustomSKURepository implements CustomSKURepository using GORM
type GormCustomSKURepository struct {
	db *gorm.DB
}

// NewGormCustomSKURepository creates a new GormCustomSKURepository
func NewGormCustomSKURepository(db *gorm.DB) *GormCustomSKURepository {
	return &GormCustomSKURepository{db: db}
}

// FindByID finds a SKU registry entry by its ID
func (r *GormCustomSKURepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.CustomSKU, error) {
	var sku catalog.CustomSKU
	if err := r.db.WithContext(ctx).First(&sku, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	sku.MarkLoaded()
	return &sku, nil
}

// FindBySKU finds a registry entry by SKU code
func (r *GormCustomSKURepository) FindBySKU(ctx context.Context, skuCode string) (*catalog.CustomSKU, error) {
	var sku catalog.CustomSKU
	if err := r.db.WithContext(ctx).First(&sku, "sku = ?", skuCode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	sku.MarkLoaded()
	return &sku, nil
}

// FindAll finds SKU registry entries matching the filter
func (r *GormCustomSKURepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.CustomSKU, error) {
	var skus []catalog.CustomSKU
	query := r.applyFilters(r.db.WithContext(ctx).Model(&catalog.CustomSKU{}), filter)
	query = applyPaginationAndOrder(query, filter, CommonSortFields)
	if err := query.Find(&skus).Error; err != nil {
		return nil, err
	}
	for i := range skus {
		skus[i].MarkLoaded()
	}
	return skus, nil
}

// Save creates or updates a SKU registry entry
func (r *GormCustomSKURepository) Save(ctx context.Context, sku *catalog.CustomSKU) error {
	if err := r.db.WithContext(ctx).Save(sku).Error; err != nil {
		return err
	}
	sku.MarkLoaded()
	return nil
}

// Delete deletes a SKU registry entry
func (r *GormCustomSKURepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.CustomSKU{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts SKU registry entries matching the filter
func (r *GormCustomSKURepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilters(r.db.WithContext(ctx).Model(&catalog.CustomSKU{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsBySKU checks whether a SKU code is already registered
func (r *GormCustomSKURepository) ExistsBySKU(ctx context.Context, skuCode string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.CustomSKU{}).
		Where("sku = ?", skuCode).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormCustomSKURepository) applyFilters(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("sku ILIKE ? OR product_name ILIKE ?", "%"+filter.Search+"%", "%"+filter.Search+"%")
	}
	if generated, ok := filter.Filters["is_generated"]; ok {
		query = query.Where("is_generated = ?", generated)
	}
	return query
}

// Ensure GormCustomSKURepository implements CustomSKURepository
var _ catalog.CustomSKURepository = (*GormCustomSKURepository)(nil)
