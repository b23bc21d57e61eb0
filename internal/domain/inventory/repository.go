package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/blendworks/backend/internal/domain/shared"
)

// InventoryItemRepository defines the interface for inventory item persistence
type InventoryItemRepository interface {
	// FindByID finds an inventory item by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*InventoryItem, error)

	// FindByProductName finds an item by its (unique) product name
	FindByProductName(ctx context.Context, productName string) (*InventoryItem, error)

	// FindBySKU finds an item by SKU
	FindBySKU(ctx context.Context, sku string) (*InventoryItem, error)

	// FindAll finds inventory items matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]InventoryItem, error)

	// FindBelowReorderPoint finds items under their reorder threshold
	FindBelowReorderPoint(ctx context.Context, filter shared.Filter) ([]InventoryItem, error)

	// FindFinalProducts finds finished-good items
	FindFinalProducts(ctx context.Context, filter shared.Filter) ([]InventoryItem, error)

	// Save creates or updates an inventory item
	Save(ctx context.Context, item *InventoryItem) error

	// SaveWithLock saves with optimistic locking (checks version)
	SaveWithLock(ctx context.Context, item *InventoryItem) error

	// Delete deletes an inventory item
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts inventory items matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// ExistsByProductName checks whether a product name is already registered
	ExistsByProductName(ctx context.Context, productName string) (bool, error)
}

// InventoryMovementRepository defines the interface for the append-only ledger
type InventoryMovementRepository interface {
	// FindByID finds a movement by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*InventoryMovement, error)

	// FindByInventoryItem finds movements for an inventory item
	FindByInventoryItem(ctx context.Context, inventoryItemID uuid.UUID, filter shared.Filter) ([]InventoryMovement, error)

	// FindByReference finds movements caused by a source document
	FindByReference(ctx context.Context, refType ReferenceType, refID uuid.UUID) ([]InventoryMovement, error)

	// FindByDateRange finds movements within a date range
	FindByDateRange(ctx context.Context, start, end time.Time, filter shared.Filter) ([]InventoryMovement, error)

	// FindAll finds movements matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]InventoryMovement, error)

	// Create appends a movement (no update or delete is offered)
	Create(ctx context.Context, mv *InventoryMovement) error

	// CreateBatch appends multiple movements
	CreateBatch(ctx context.Context, mvs []*InventoryMovement) error

	// Count counts movements matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// CountByInventoryItem counts movements for an inventory item
	CountByInventoryItem(ctx context.Context, inventoryItemID uuid.UUID) (int64, error)
}

// StockReceiptRepository defines the interface for stock receipt persistence
type StockReceiptRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*StockReceipt, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]StockReceipt, error)
	Save(ctx context.Context, receipt *StockReceipt) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// WastageRecordRepository defines the interface for wastage persistence
type WastageRecordRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*WastageRecord, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]WastageRecord, error)
	Save(ctx context.Context, record *WastageRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// TeaCoffeeStockRepository defines the interface for loose blend stock
type TeaCoffeeStockRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TeaCoffeeStock, error)
	FindByBlend(ctx context.Context, blendName string, kind BlendKind) (*TeaCoffeeStock, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]TeaCoffeeStock, error)
	Save(ctx context.Context, stock *TeaCoffeeStock) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// MovementFilter extends shared.Filter with ledger-specific filters
type MovementFilter struct {
	shared.Filter
	InventoryItemID *uuid.UUID
	MovementType    *MovementType
	ReferenceType   *ReferenceType
	StartDate       *time.Time
	EndDate         *time.Time
}
