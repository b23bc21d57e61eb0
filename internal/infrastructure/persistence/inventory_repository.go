package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/blendworks/backend/internal/domain/inventory"
	"github.com/blendworks/backend/internal/domain/shared"
)

// GormInventoryItemRepository implements InventoryItemRepository using GORM
type GormInventoryItemRepository struct {
	db *gorm.DB
}

// NewGormInventoryItemRepository creates a new GormInventoryItemRepository
func NewGormInventoryItemRepository(db *gorm.DB) *GormInventoryItemRepository {
	return &GormInventoryItemRepository{db: db}
}

// FindByID finds an inventory item by its ID
func (r *GormInventoryItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.InventoryItem, error) {
	var item inventory.InventoryItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	item.MarkLoaded()
	return &item, nil
}

// FindByProductName finds an inventory item by product name. The lookup is
// case-insensitive because batch ingredient names arrive normalized.
func (r *GormInventoryItemRepository) FindByProductName(ctx context.Context, productName string) (*inventory.InventoryItem, error) {
	var item inventory.InventoryItem
	if err := r.db.WithContext(ctx).
		Where("LOWER(product_name) = LOWER(?)", productName).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	item.MarkLoaded()
	return &item, nil
}

// FindBySKU finds an inventory item by SKU
func (r *GormInventoryItemRepository) FindBySKU(ctx context.Context, sku string) (*inventory.InventoryItem, error) {
	var item inventory.InventoryItem
	if err := r.db.WithContext(ctx).First(&item, "sku = ?", sku).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	item.MarkLoaded()
	return &item, nil
}

// FindAll finds inventory items matching the filter
func (r *GormInventoryItemRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.InventoryItem, error) {
	var items []inventory.InventoryItem
	query := r.applyFilter(r.db.WithContext(ctx).Model(&inventory.InventoryItem{}), filter)
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	markItemsLoaded(items)
	return items, nil
}

// FindBelowReorderPoint finds items at or below their reorder point
func (r *GormInventoryItemRepository) FindBelowReorderPoint(ctx context.Context, filter shared.Filter) ([]inventory.InventoryItem, error) {
	var items []inventory.InventoryItem
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&inventory.InventoryItem{}).
			Where("reorder_point > 0 AND stock_level <= reorder_point"),
		filter,
	)
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	markItemsLoaded(items)
	return items, nil
}

// FindFinalProducts finds items flagged as finished goods
func (r *GormInventoryItemRepository) FindFinalProducts(ctx context.Context, filter shared.Filter) ([]inventory.InventoryItem, error) {
	var items []inventory.InventoryItem
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&inventory.InventoryItem{}).
			Where("is_final_product = true"),
		filter,
	)
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	markItemsLoaded(items)
	return items, nil
}

// Save creates or updates an inventory item
func (r *GormInventoryItemRepository) Save(ctx context.Context, item *inventory.InventoryItem) error {
	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		return err
	}
	item.MarkLoaded()
	return nil
}

// SaveWithLock saves with optimistic locking. The version check uses the
// version the row was read with, since one edit may step the in-memory
// version more than once before it is persisted.
func (r *GormInventoryItemRepository) SaveWithLock(ctx context.Context, item *inventory.InventoryItem) error {
	result := r.db.WithContext(ctx).
		Model(item).
		Where("id = ? AND version = ?", item.ID, item.LoadedVersion()).
		Updates(map[string]interface{}{
			"product_name":     item.ProductName,
			"sku":              item.SKU,
			"category":         item.Category,
			"unit":             item.Unit,
			"stock_level":      item.StockLevel,
			"unit_price":       item.UnitPrice,
			"reorder_point":    item.ReorderPoint,
			"supplier_id":      item.SupplierID,
			"is_recipe_based":  item.IsRecipeBased,
			"is_final_product": item.IsFinalProduct,
			"version":          item.Version,
			"updated_at":       item.UpdatedAt,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError("OPTIMISTIC_LOCK_FAILED", "Inventory item was modified by another transaction")
	}
	item.MarkLoaded()
	return nil
}

// Delete deletes an inventory item
func (r *GormInventoryItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&inventory.InventoryItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts inventory items matching the filter
func (r *GormInventoryItemRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applySearchAndFilters(r.db.WithContext(ctx).Model(&inventory.InventoryItem{}), filter, "product_name")
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByProductName checks whether a product name is already registered
func (r *GormInventoryItemRepository) ExistsByProductName(ctx context.Context, productName string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&inventory.InventoryItem{}).
		Where("LOWER(product_name) = LOWER(?)", productName).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormInventoryItemRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = applySearchAndFilters(query, filter, "product_name")
	return applyPaginationAndOrder(query, filter, InventorySortFields)
}

func markItemsLoaded(items []inventory.InventoryItem) {
	for i := range items {
		items[i].MarkLoaded()
	}
}

// applySearchAndFilters applies the free-text search and keyed filters
// shared by the Find and Count paths.
func applySearchAndFilters(query *gorm.DB, filter shared.Filter, searchColumn string) *gorm.DB {
	if filter.Search != "" && searchColumn != "" {
		query = query.Where(searchColumn+" ILIKE ?", "%"+filter.Search+"%")
	}
	for key, value := range filter.Filters {
		switch key {
		case "category":
			query = query.Where("category = ?", value)
		case "supplier_id":
			query = query.Where("supplier_id = ?", value)
		case "is_final_product":
			query = query.Where("is_final_product = ?", value)
		}
	}
	return query
}

// applyPaginationAndOrder applies pagination and a whitelisted sort order
func applyPaginationAndOrder(query *gorm.DB, filter shared.Filter, allowedFields map[string]bool) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, allowedFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	return query.Order(orderBy + " " + orderDir)
}

// Ensure GormInventoryItemRepository implements InventoryItemRepository
var _ inventory.InventoryItemRepository = (*GormInventoryItemRepository)(nil)

// GormInventoryMovementRepository implements InventoryMovementRepository using GORM
type GormInventoryMovementRepository struct {
	db *gorm.DB
}

// NewGormInventoryMovementRepository creates a new GormInventoryMovementRepository
func NewGormInventoryMovementRepository(db *gorm.DB) *GormInventoryMovementRepository {
	return &GormInventoryMovementRepository{db: db}
}

// FindByID finds a movement by its ID
func (r *GormInventoryMovementRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.InventoryMovement, error) {
	var movement inventory.InventoryMovement
	if err := r.db.WithContext(ctx).First(&movement, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &movement, nil
}

// FindByInventoryItem finds the movement history for one item
func (r *GormInventoryMovementRepository) FindByInventoryItem(ctx context.Context, itemID uuid.UUID, filter shared.Filter) ([]inventory.InventoryMovement, error) {
	var movements []inventory.InventoryMovement
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&inventory.InventoryMovement{}).
			Where("inventory_item_id = ?", itemID),
		filter,
	)
	if err := query.Find(&movements).Error; err != nil {
		return nil, err
	}
	return movements, nil
}

// FindByReference finds movements linked to a source document (e.g. a batch)
func (r *GormInventoryMovementRepository) FindByReference(ctx context.Context, referenceType inventory.ReferenceType, referenceID uuid.UUID) ([]inventory.InventoryMovement, error) {
	var movements []inventory.InventoryMovement
	if err := r.db.WithContext(ctx).
		Where("reference_type = ? AND reference_id = ?", referenceType, referenceID).
		Order("created_at ASC").
		Find(&movements).Error; err != nil {
		return nil, err
	}
	return movements, nil
}

// FindByDateRange finds movements within a date range
func (r *GormInventoryMovementRepository) FindByDateRange(ctx context.Context, start, end time.Time, filter shared.Filter) ([]inventory.InventoryMovement, error) {
	var movements []inventory.InventoryMovement
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&inventory.InventoryMovement{}).
			Where("movement_date >= ? AND movement_date <= ?", start, end),
		filter,
	)
	if err := query.Find(&movements).Error; err != nil {
		return nil, err
	}
	return movements, nil
}

// FindAll finds movements matching the filter
func (r *GormInventoryMovementRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.InventoryMovement, error) {
	var movements []inventory.InventoryMovement
	query := r.applyFilter(r.db.WithContext(ctx).Model(&inventory.InventoryMovement{}), filter)
	if err := query.Find(&movements).Error; err != nil {
		return nil, err
	}
	return movements, nil
}

// Create appends a movement. Movements are never updated after creation.
func (r *GormInventoryMovementRepository) Create(ctx context.Context, movement *inventory.InventoryMovement) error {
	return r.db.WithContext(ctx).Create(movement).Error
}

// CreateBatch appends several movements in one insert
func (r *GormInventoryMovementRepository) CreateBatch(ctx context.Context, movements []*inventory.InventoryMovement) error {
	if len(movements) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&movements).Error
}

// Count counts movements matching the filter
func (r *GormInventoryMovementRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyMovementFilters(r.db.WithContext(ctx).Model(&inventory.InventoryMovement{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByInventoryItem counts movements for one item
func (r *GormInventoryMovementRepository) CountByInventoryItem(ctx context.Context, itemID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&inventory.InventoryMovement{}).
		Where("inventory_item_id = ?", itemID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormInventoryMovementRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyMovementFilters(query, filter)
	return applyPaginationAndOrder(query, filter, MovementSortFields)
}

func (r *GormInventoryMovementRepository) applyMovementFilters(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "movement_type":
			query = query.Where("movement_type = ?", value)
		case "reference_type":
			query = query.Where("reference_type = ?", value)
		case "inventory_item_id":
			query = query.Where("inventory_item_id = ?", value)
		}
	}
	return query
}

// Ensure GormInventoryMovementRepository implements InventoryMovementRepository
var _ inventory.InventoryMovementRepository = (*GormInventoryMovementRepository)(nil)
