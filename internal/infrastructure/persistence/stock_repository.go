package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/blendworks/backend/internal/domain/inventory"
	"github.com/blendworks/backend/internal/domain/shared"
)

// GormStockReceiptRepository implements StockReceiptRepository using GORM
type GormStockReceiptRepository struct {
	db *gorm.DB
}

// NewGormStockReceiptRepository creates a new GormStockReceiptRepository
func NewGormStockReceiptRepository(db *gorm.DB) *GormStockReceiptRepository {
	return &GormStockReceiptRepository{db: db}
}

// FindByID finds a stock receipt by its ID
func (r *GormStockReceiptRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.StockReceipt, error) {
	var receipt inventory.StockReceipt
	if err := r.db.WithContext(ctx).First(&receipt, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	receipt.MarkLoaded()
	return &receipt, nil
}

// FindAll finds stock receipts matching the filter
func (r *GormStockReceiptRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.StockReceipt, error) {
	var receipts []inventory.StockReceipt
	query := r.applyFilters(r.db.WithContext(ctx).Model(&inventory.StockReceipt{}), filter)
	query = applyPaginationAndOrder(query, filter, CommonSortFields)
	if err := query.Find(&receipts).Error; err != nil {
		return nil, err
	}
	for i := range receipts {
		receipts[i].MarkLoaded()
	}
	return receipts, nil
}

// Save creates or updates a stock receipt
func (r *GormStockReceiptRepository) Save(ctx context.Context, receipt *inventory.StockReceipt) error {
	if err := r.db.WithContext(ctx).Save(receipt).Error; err != nil {
		return err
	}
	receipt.MarkLoaded()
	return nil
}

// Delete deletes a stock receipt
func (r *GormStockReceiptRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&inventory.StockReceipt{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts stock receipts matching the filter
func (r *GormStockReceiptRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilters(r.db.WithContext(ctx).Model(&inventory.StockReceipt{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormStockReceiptRepository) applyFilters(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("product_name ILIKE ? OR lot_number ILIKE ?", "%"+filter.Search+"%", "%"+filter.Search+"%")
	}
	for key, value := range filter.Filters {
		switch key {
		case "supplier_id":
			query = query.Where("supplier_id = ?", value)
		case "product_name":
			query = query.Where("LOWER(product_name) = LOWER(?)", value)
		}
	}
	return query
}

// Ensure GormStockReceiptRepository implements StockReceiptRepository
var _ inventory.StockReceiptRepository = (*GormStockReceiptRepository)(nil)

// GormWastageRecordRepository implements WastageRecordRepository using GORM
type GormWastageRecordRepository struct {
	db *gorm.DB
}

// NewGormWastageRecordRepository creates a new GormWastageRecordRepository
func NewGormWastageRecordRepository(db *gorm.DB) *GormWastageRecordRepository {
	return &GormWastageRecordRepository{db: db}
}

// FindByID finds a wastage record by its ID
func (r *GormWastageRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.WastageRecord, error) {
	var record inventory.WastageRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	record.MarkLoaded()
	return &record, nil
}

// FindAll finds wastage records matching the filter
func (r *GormWastageRecordRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.WastageRecord, error) {
	var records []inventory.WastageRecord
	query := r.applyFilters(r.db.WithContext(ctx).Model(&inventory.WastageRecord{}), filter)
	query = applyPaginationAndOrder(query, filter, CommonSortFields)
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	for i := range records {
		records[i].MarkLoaded()
	}
	return records, nil
}

// Save creates or updates a wastage record
func (r *GormWastageRecordRepository) Save(ctx context.Context, record *inventory.WastageRecord) error {
	if err := r.db.WithContext(ctx).Save(record).Error; err != nil {
		return err
	}
	record.MarkLoaded()
	return nil
}

// Delete deletes a wastage record
func (r *GormWastageRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&inventory.WastageRecord{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts wastage records matching the filter
func (r *GormWastageRecordRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilters(r.db.WithContext(ctx).Model(&inventory.WastageRecord{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormWastageRecordRepository) applyFilters(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("product_name ILIKE ? OR reason ILIKE ?", "%"+filter.Search+"%", "%"+filter.Search+"%")
	}
	for key, value := range filter.Filters {
		switch key {
		case "reason":
			query = query.Where("reason = ?", value)
		case "product_name":
			query = query.Where("LOWER(product_name) = LOWER(?)", value)
		}
	}
	return query
}

// Ensure GormWastageRecordRepository implements WastageRecordRepository
var _ inventory.WastageRecordRepository = (*GormWastageRecordRepository)(nil)

// GormTeaCoffeeStockRepository implements TeaCoffeeStockRepository using GORM
type GormTeaCoffeeStockRepository struct {
	db *gorm.DB
}

// NewGormTeaCoffeeStockRepository creates a new GormTeaCoffeeStockRepository
func NewGormTeaCoffeeStockRepository(db *gorm.DB) *GormTeaCoffeeStockRepository {
	return &GormTeaCoffeeStockRepository{db: db}
}

// FindByID finds a loose-stock line by its ID
func (r *GormTeaCoffeeStockRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.TeaCoffeeStock, error) {
	var stock inventory.TeaCoffeeStock
	if err := r.db.WithContext(ctx).First(&stock, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	stock.MarkLoaded()
	return &stock, nil
}

// FindByBlend finds a loose-stock line by blend name and kind
func (r *GormTeaCoffeeStockRepository) FindByBlend(ctx context.Context, blendName string, kind inventory.BlendKind) (*inventory.TeaCoffeeStock, error) {
	var stock inventory.TeaCoffeeStock
	if err := r.db.WithContext(ctx).
		Where("LOWER(blend_name) = LOWER(?) AND kind = ?", blendName, kind).
		First(&stock).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	stock.MarkLoaded()
	return &stock, nil
}

// FindAll finds loose-stock lines matching the filter
func (r *GormTeaCoffeeStockRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.TeaCoffeeStock, error) {
	var stocks []inventory.TeaCoffeeStock
	query := r.db.WithContext(ctx).Model(&inventory.TeaCoffeeStock{})
	if filter.Search != "" {
		query = query.Where("blend_name ILIKE ?", "%"+filter.Search+"%")
	}
	if kind, ok := filter.Filters["kind"]; ok {
		query = query.Where("kind = ?", kind)
	}
	query = applyPaginationAndOrder(query, filter, CommonSortFields)
	if err := query.Find(&stocks).Error; err != nil {
		return nil, err
	}
	for i := range stocks {
		stocks[i].MarkLoaded()
	}
	return stocks, nil
}

// Save creates or updates a loose-stock line
func (r *GormTeaCoffeeStockRepository) Save(ctx context.Context, stock *inventory.TeaCoffeeStock) error {
	if err := r.db.WithContext(ctx).Save(stock).Error; err != nil {
		return err
	}
	stock.MarkLoaded()
	return nil
}

// Delete deletes a loose-stock line
func (r *GormTeaCoffeeStockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&inventory.TeaCoffeeStock{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormTeaCoffeeStockRepository implements TeaCoffeeStockRepository
var _ inventory.TeaCoffeeStockRepository = (*GormTeaCoffeeStockRepository)(nil)
