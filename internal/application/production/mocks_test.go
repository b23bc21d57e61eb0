package production

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/blendworks/backend/internal/domain/inventory"
	"github.com/blendworks/backend/internal/domain/production"
	"github.com/blendworks/backend/internal/domain/shared"
)

// MockBatchRecordRepository is a mock implementation of production.BatchRecordRepository
type MockBatchRecordRepository struct {
	mock.Mock
}

func (m *MockBatchRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*production.BatchRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*production.BatchRecord), args.Error(1)
}

func (m *MockBatchRecordRepository) FindByBatchNumber(ctx context.Context, batchNumber string) (*production.BatchRecord, error) {
	args := m.Called(ctx, batchNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*production.BatchRecord), args.Error(1)
}

func (m *MockBatchRecordRepository) FindAll(ctx context.Context, filter shared.Filter) ([]production.BatchRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]production.BatchRecord), args.Error(1)
}

func (m *MockBatchRecordRepository) FindByProductName(ctx context.Context, productName string, filter shared.Filter) ([]production.BatchRecord, error) {
	args := m.Called(ctx, productName, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]production.BatchRecord), args.Error(1)
}

func (m *MockBatchRecordRepository) FindByDateRange(ctx context.Context, start, end time.Time, filter shared.Filter) ([]production.BatchRecord, error) {
	args := m.Called(ctx, start, end, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]production.BatchRecord), args.Error(1)
}

func (m *MockBatchRecordRepository) FindOpen(ctx context.Context, filter shared.Filter) ([]production.BatchRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]production.BatchRecord), args.Error(1)
}

func (m *MockBatchRecordRepository) Save(ctx context.Context, batch *production.BatchRecord) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}

func (m *MockBatchRecordRepository) SaveWithLock(ctx context.Context, batch *production.BatchRecord) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}

func (m *MockBatchRecordRepository) ReplaceIngredients(ctx context.Context, batchID uuid.UUID, ingredients []production.BatchIngredient) error {
	args := m.Called(ctx, batchID, ingredients)
	return args.Error(0)
}

func (m *MockBatchRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBatchRecordRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBatchRecordRepository) ExistsByBatchNumber(ctx context.Context, batchNumber string) (bool, error) {
	args := m.Called(ctx, batchNumber)
	return args.Bool(0), args.Error(1)
}

// MockItemRepository is a mock implementation of inventory.InventoryItemRepository
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

// MockMovementRepository is a mock implementation of inventory.InventoryMovementRepository
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
