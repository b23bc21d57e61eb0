package integration

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inventoryapp "github.com/blendworks/backend/internal/application/inventory"
	"github.com/blendworks/backend/internal/domain/inventory"
	"github.com/blendworks/backend/internal/domain/shared"
	"github.com/blendworks/backend/internal/infrastructure/persistence"
)

func newInventoryService(tdb *TestDB) *inventoryapp.InventoryService {
	itemRepo := persistence.NewGormInventoryItemRepository(tdb.DB)
	movementRepo := persistence.NewGormInventoryMovementRepository(tdb.DB)
	receiptRepo := persistence.NewGormStockReceiptRepository(tdb.DB)
	wastageRepo := persistence.NewGormWastageRecordRepository(tdb.DB)
	blendRepo := persistence.NewGormTeaCoffeeStockRepository(tdb.DB)
	txScope := persistence.NewGormInventoryTransactionScope(tdb.DB)
	return inventoryapp.NewInventoryService(itemRepo, movementRepo, receiptRepo, wastageRepo, blendRepo, txScope)
}

func TestInventoryReceiveFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tdb := NewSharedTestDB(t)
	tdb.CleanTables()

	svc := newInventoryService(tdb)
	ctx := context.Background()

	// First delivery for an unknown product registers the item
	mv, err := svc.ReceiveStock(ctx, inventoryapp.ReceiveStockRequest{
		ProductName:  "Assam Loose Leaf",
		Quantity:     decimal.NewFromInt(500),
		Unit:         "g",
		Category:     "tea",
		LotNumber:    "LOT-2026-001",
		UnitCost:     decimal.RequireFromString("0.012"),
		ReceivedDate: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		ReceivedBy:   "sam",
	})
	require.NoError(t, err)
	assert.True(t, mv.BalanceAfter.Equal(decimal.NewFromInt(500)))

	item, err := svc.GetByProductName(ctx, "Assam Loose Leaf")
	require.NoError(t, err)
	assert.True(t, item.StockLevel.Equal(decimal.NewFromInt(500)))

	// Second delivery accumulates on the same item
	mv, err = svc.ReceiveStock(ctx, inventoryapp.ReceiveStockRequest{
		ProductName:  "Assam Loose Leaf",
		Quantity:     decimal.NewFromInt(250),
		Unit:         "g",
		ReceivedDate: time.Date(2026, 2, 12, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.True(t, mv.BalanceBefore.Equal(decimal.NewFromInt(500)))
	assert.True(t, mv.BalanceAfter.Equal(decimal.NewFromInt(750)))

	// The journal holds both receipts with a continuous running balance
	movementRepo := persistence.NewGormInventoryMovementRepository(tdb.DB)
	movements, err := movementRepo.FindByInventoryItem(ctx, item.ID, shared.DefaultFilter())
	require.NoError(t, err)
	require.Len(t, movements, 2)
	for _, m := range movements {
		assert.Equal(t, inventory.MovementTypeReceive, m.MovementType)
	}
}

func TestInventoryWastageFloorsAtZero(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tdb := NewSharedTestDB(t)
	tdb.CleanTables()

	svc := newInventoryService(tdb)
	ctx := context.Background()

	_, err := svc.CreateItem(ctx, inventoryapp.CreateItemRequest{
		ProductName:  "Colombian Beans",
		Category:     "coffee",
		Unit:         "g",
		InitialStock: decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	// Writing off more than is held clamps the level at zero
	mv, err := svc.RecordWastage(ctx, inventoryapp.RecordWastageRequest{
		ProductName: "Colombian Beans",
		Quantity:    decimal.NewFromInt(150),
		Reason:      "water damage",
		WastageDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.True(t, mv.BalanceAfter.IsZero())

	item, err := svc.GetByProductName(ctx, "Colombian Beans")
	require.NoError(t, err)
	assert.True(t, item.StockLevel.IsZero())
}

func TestInventoryAdjustStock(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tdb := NewSharedTestDB(t)
	tdb.CleanTables()

	svc := newInventoryService(tdb)
	ctx := context.Background()

	created, err := svc.CreateItem(ctx, inventoryapp.CreateItemRequest{
		ProductName:  "Kraft Pouches 250g",
		Category:     "packaging",
		Unit:         "unit",
		InitialStock: decimal.NewFromInt(200),
	})
	require.NoError(t, err)

	// A count correction records the delta against the counted level
	mv, err := svc.AdjustStock(ctx, created.ID, inventoryapp.AdjustStockRequest{
		ActualLevel: decimal.NewFromInt(188),
		Reason:      "stocktake",
		AdjustedBy:  "jo",
	})
	require.NoError(t, err)
	assert.True(t, mv.BalanceAfter.Equal(decimal.NewFromInt(188)))

	item, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, item.StockLevel.Equal(decimal.NewFromInt(188)))
}

func TestInventoryOptimisticLocking(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tdb := NewSharedTestDB(t)
	tdb.CleanTables()

	itemRepo := persistence.NewGormInventoryItemRepository(tdb.DB)
	ctx := context.Background()

	item, err := inventory.NewInventoryItem("Earl Grey Blend", "EG-001", "tea", "g")
	require.NoError(t, err)
	_, err = item.Receive(decimal.NewFromInt(1000), inventory.ManualRef("seed", "test"))
	require.NoError(t, err)
	item.ClearDomainEvents()
	require.NoError(t, itemRepo.Save(ctx, item))

	// Two sessions load the same row
	first, err := itemRepo.FindByID(ctx, item.ID)
	require.NoError(t, err)
	second, err := itemRepo.FindByID(ctx, item.ID)
	require.NoError(t, err)

	_, err = first.Receive(decimal.NewFromInt(50), inventory.ManualRef("goods in", "a"))
	require.NoError(t, err)
	require.NoError(t, itemRepo.SaveWithLock(ctx, first))

	// The stale session loses
	_, err = second.Receive(decimal.NewFromInt(75), inventory.ManualRef("goods in", "b"))
	require.NoError(t, err)
	err = itemRepo.SaveWithLock(ctx, second)
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "OPTIMISTIC_LOCK_FAILED", domainErr.Code)

	// The winning write is the one on disk
	reloaded, err := itemRepo.FindByID(ctx, item.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.StockLevel.Equal(decimal.NewFromInt(1050)))
}
