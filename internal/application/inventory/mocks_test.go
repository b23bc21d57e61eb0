package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/blendworks/backend/internal/domain/inventory"
	"github.com/blendworks/backend/internal/domain/shared"
)

// MockItemRepository is a testify mock for InventoryItemRepository
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.InventoryItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.InventoryItem), args.Error(1)
}

func (m *MockItemRepository) FindByProductName(ctx context.Context, productName string) (*inventory.InventoryItem, error) {
	args := m.Called(ctx, productName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.InventoryItem), args.Error(1)
}

func (m *MockItemRepository) FindBySKU(ctx context.Context, sku string) (*inventory.InventoryItem, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.InventoryItem), args.Error(1)
}

func (m *MockItemRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.InventoryItem, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.InventoryItem), args.Error(1)
}

func (m *MockItemRepository) FindBelowReorderPoint(ctx context.Context, filter shared.Filter) ([]inventory.InventoryItem, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.InventoryItem), args.Error(1)
}

func (m *MockItemRepository) FindFinalProducts(ctx context.Context, filter shared.Filter) ([]inventory.InventoryItem, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.InventoryItem), args.Error(1)
}

func (m *MockItemRepository) Save(ctx context.Context, item *inventory.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) SaveWithLock(ctx context.Context, item *inventory.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockItemRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockItemRepository) ExistsByProductName(ctx context.Context, productName string) (bool, error) {
	args := m.Called(ctx, productName)
	return args.Bool(0), args.Error(1)
}

// MockMovementRepository is a testify mock for InventoryMovementRepository
type MockMovementRepository struct {
	mock.Mock
}

func (m *MockMovementRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.InventoryMovement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.InventoryMovement), args.Error(1)
}

func (m *MockMovementRepository) FindByInventoryItem(ctx context.Context, inventoryItemID uuid.UUID, filter shared.Filter) ([]inventory.InventoryMovement, error) {
	args := m.Called(ctx, inventoryItemID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.InventoryMovement), args.Error(1)
}

func (m *MockMovementRepository) FindByReference(ctx context.Context, refType inventory.ReferenceType, refID uuid.UUID) ([]inventory.InventoryMovement, error) {
	args := m.Called(ctx, refType, refID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.InventoryMovement), args.Error(1)
}

func (m *MockMovementRepository) FindByDateRange(ctx context.Context, start, end time.Time, filter shared.Filter) ([]inventory.InventoryMovement, error) {
	args := m.Called(ctx, start, end, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.InventoryMovement), args.Error(1)
}

func (m *MockMovementRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.InventoryMovement, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.InventoryMovement), args.Error(1)
}

func (m *MockMovementRepository) Create(ctx context.Context, mv *inventory.InventoryMovement) error {
	args := m.Called(ctx, mv)
	return args.Error(0)
}

func (m *MockMovementRepository) CreateBatch(ctx context.Context, mvs []*inventory.InventoryMovement) error {
	args := m.Called(ctx, mvs)
	return args.Error(0)
}

func (m *MockMovementRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMovementRepository) CountByInventoryItem(ctx context.Context, inventoryItemID uuid.UUID) (int64, error) {
	args := m.Called(ctx, inventoryItemID)
	return args.Get(0).(int64), args.Error(1)
}

// MockStockReceiptRepository is a testify mock for StockReceiptRepository
type MockStockReceiptRepository struct {
	mock.Mock
}

func (m *MockStockReceiptRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.StockReceipt, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.StockReceipt), args.Error(1)
}

func (m *MockStockReceiptRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.StockReceipt, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.StockReceipt), args.Error(1)
}

func (m *MockStockReceiptRepository) Save(ctx context.Context, receipt *inventory.StockReceipt) error {
	args := m.Called(ctx, receipt)
	return args.Error(0)
}

func (m *MockStockReceiptRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStockReceiptRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockWastageRecordRepository is a testify mock for WastageRecordRepository
type MockWastageRecordRepository struct {
	mock.Mock
}

func (m *MockWastageRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.WastageRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.WastageRecord), args.Error(1)
}

func (m *MockWastageRecordRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.WastageRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.WastageRecord), args.Error(1)
}

func (m *MockWastageRecordRepository) Save(ctx context.Context, record *inventory.WastageRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockWastageRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockWastageRecordRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockTeaCoffeeStockRepository is a testify mock for TeaCoffeeStockRepository
type MockTeaCoffeeStockRepository struct {
	mock.Mock
}

func (m *MockTeaCoffeeStockRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.TeaCoffeeStock, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.TeaCoffeeStock), args.Error(1)
}

func (m *MockTeaCoffeeStockRepository) FindByBlend(ctx context.Context, blendName string, kind inventory.BlendKind) (*inventory.TeaCoffeeStock, error) {
	args := m.Called(ctx, blendName, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.TeaCoffeeStock), args.Error(1)
}

func (m *MockTeaCoffeeStockRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.TeaCoffeeStock, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.TeaCoffeeStock), args.Error(1)
}

func (m *MockTeaCoffeeStockRepository) Save(ctx context.Context, stock *inventory.TeaCoffeeStock) error {
	args := m.Called(ctx, stock)
	return args.Error(0)
}

func (m *MockTeaCoffeeStockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockIdempotencyStore is a testify mock for shared.IdempotencyStore
type MockIdempotencyStore struct {
	mock.Mock
}

func (m *MockIdempotencyStore) MarkProcessed(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, key, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *MockIdempotencyStore) IsProcessed(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockIdempotencyStore) SaveResult(ctx context.Context, key string, result string, ttl time.Duration) error {
	args := m.Called(ctx, key, result, ttl)
	return args.Error(0)
}

func (m *MockIdempotencyStore) Result(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockIdempotencyStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
