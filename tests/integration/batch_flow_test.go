package integration

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inventoryapp "github.com/blendworks/backend/internal/application/inventory"
	productionapp "github.com/blendworks/backend/internal/application/production"
	"github.com/blendworks/backend/internal/infrastructure/persistence"
)

func newBatchService(tdb *TestDB) *productionapp.BatchService {
	batchRepo := persistence.NewGormBatchRecordRepository(tdb.DB)
	itemRepo := persistence.NewGormInventoryItemRepository(tdb.DB)
	txScope := persistence.NewGormProductionTransactionScope(tdb.DB)
	return productionapp.NewBatchService(batchRepo, itemRepo, txScope)
}

func seedIngredient(t *testing.T, tdb *TestDB, name string, grams int64) {
	t.Helper()
	svc := newInventoryService(tdb)
	_, err := svc.CreateItem(context.Background(), inventoryapp.CreateItemRequest{
		ProductName:  name,
		Category:     "tea",
		Unit:         "g",
		InitialStock: decimal.NewFromInt(grams),
	})
	require.NoError(t, err)
}

func stockLevel(t *testing.T, tdb *TestDB, name string) decimal.Decimal {
	t.Helper()
	svc := newInventoryService(tdb)
	item, err := svc.GetByProductName(context.Background(), name)
	require.NoError(t, err)
	return item.StockLevel
}

func TestBatchLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tdb := NewSharedTestDB(t)
	tdb.CleanTables()

	seedIngredient(t, tdb, "Ceylon Base", 10000)
	seedIngredient(t, tdb, "Bergamot Oil", 500)

	svc := newBatchService(tdb)
	ctx := context.Background()

	created, err := svc.CreateBatch(ctx, productionapp.CreateBatchRequest{
		BatchNumber:       "BN-2026-014",
		ProductName:       "Earl Grey 250g",
		BatchDate:         time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
		BestBefore:        time.Date(2027, 4, 2, 0, 0, 0, 0, time.UTC),
		StartedAt:         time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC),
		BagCount:          10,
		BagSizeGrams:      decimal.NewFromInt(250),
		ScaleTargetGrams:  decimal.NewFromInt(2500),
		ScaleReadingGrams: decimal.NewFromInt(2498),
		Ingredients: []productionapp.IngredientRequest{
			{RawMaterialName: "Ceylon Base", Quantity: decimal.NewFromInt(2400), Unit: "g"},
			{RawMaterialName: "Bergamot Oil", Quantity: decimal.NewFromInt(100), Unit: "g"},
		},
	})
	require.NoError(t, err)
	assert.False(t, created.IsCompleted)

	// Ingredient stock is drawn down once on creation; finished goods wait
	// for the run to finish
	assert.True(t, stockLevel(t, tdb, "Ceylon Base").Equal(decimal.NewFromInt(7600)))
	assert.True(t, stockLevel(t, tdb, "Bergamot Oil").Equal(decimal.NewFromInt(400)))
	_, err = newInventoryService(tdb).GetByProductName(ctx, "Earl Grey 250g")
	require.Error(t, err, "no finished-good item should exist while the run is open")

	// Re-saving the same quantities moves nothing
	updated, err := svc.UpdateBatch(ctx, created.ID, productionapp.UpdateBatchRequest{
		Version:           created.Version,
		ProductName:       created.ProductName,
		BatchDate:         created.BatchDate,
		BestBefore:        created.BestBefore,
		StartedAt:         created.StartedAt,
		BagCount:          created.BagCount,
		BagSizeGrams:      created.BagSizeGrams,
		ScaleTargetGrams:  created.ScaleTargetGrams,
		ScaleReadingGrams: created.ScaleReadingGrams,
		Ingredients: []productionapp.IngredientRequest{
			{RawMaterialName: "Ceylon Base", Quantity: decimal.NewFromInt(2400), Unit: "g"},
			{RawMaterialName: "Bergamot Oil", Quantity: decimal.NewFromInt(100), Unit: "g"},
		},
	})
	require.NoError(t, err)
	assert.True(t, stockLevel(t, tdb, "Ceylon Base").Equal(decimal.NewFromInt(7600)))
	assert.True(t, stockLevel(t, tdb, "Bergamot Oil").Equal(decimal.NewFromInt(400)))

	// Raising one ingredient consumes only the difference
	updated, err = svc.UpdateBatch(ctx, created.ID, productionapp.UpdateBatchRequest{
		Version:           updated.Version,
		ProductName:       updated.ProductName,
		BatchDate:         updated.BatchDate,
		BestBefore:        updated.BestBefore,
		StartedAt:         updated.StartedAt,
		BagCount:          updated.BagCount,
		BagSizeGrams:      updated.BagSizeGrams,
		ScaleTargetGrams:  updated.ScaleTargetGrams,
		ScaleReadingGrams: updated.ScaleReadingGrams,
		Ingredients: []productionapp.IngredientRequest{
			{RawMaterialName: "Ceylon Base", Quantity: decimal.NewFromInt(2600), Unit: "g"},
			{RawMaterialName: "Bergamot Oil", Quantity: decimal.NewFromInt(100), Unit: "g"},
		},
	})
	require.NoError(t, err)
	assert.True(t, stockLevel(t, tdb, "Ceylon Base").Equal(decimal.NewFromInt(7400)))
	assert.True(t, stockLevel(t, tdb, "Bergamot Oil").Equal(decimal.NewFromInt(400)))

	// A stale version is rejected
	_, err = svc.UpdateBatch(ctx, created.ID, productionapp.UpdateBatchRequest{
		Version:           created.Version,
		ProductName:       updated.ProductName,
		BatchDate:         updated.BatchDate,
		BestBefore:        updated.BestBefore,
		StartedAt:         updated.StartedAt,
		BagCount:          updated.BagCount,
		BagSizeGrams:      updated.BagSizeGrams,
		ScaleTargetGrams:  updated.ScaleTargetGrams,
		ScaleReadingGrams: updated.ScaleReadingGrams,
		Ingredients: []productionapp.IngredientRequest{
			{RawMaterialName: "Ceylon Base", Quantity: decimal.NewFromInt(2600), Unit: "g"},
		},
	})
	require.Error(t, err)

	// Finishing stamps the completion time and stocks the finished product
	// by bag count
	finished, err := svc.FinishBatch(ctx, created.ID, productionapp.FinishBatchRequest{
		FinishedAt: time.Date(2026, 4, 2, 14, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.True(t, finished.IsCompleted)
	require.NotNil(t, finished.FinishedAt)
	assert.True(t, stockLevel(t, tdb, "Earl Grey 250g").Equal(decimal.NewFromInt(10)))

	// Reopening backs the bags out again
	reopened, err := svc.ReopenBatch(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, reopened.IsCompleted)
	assert.True(t, stockLevel(t, tdb, "Earl Grey 250g").IsZero())

	// Lookup by batch number returns the same record
	byNumber, err := svc.GetByBatchNumber(ctx, "BN-2026-014")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byNumber.ID)
}

func TestBatchDuplicateNumberRejected(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tdb := NewSharedTestDB(t)
	tdb.CleanTables()

	seedIngredient(t, tdb, "House Blend Base", 5000)

	svc := newBatchService(tdb)
	ctx := context.Background()

	req := productionapp.CreateBatchRequest{
		BatchNumber:       "BN-2026-020",
		ProductName:       "House Blend 250g",
		BatchDate:         time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		BestBefore:        time.Date(2027, 5, 1, 0, 0, 0, 0, time.UTC),
		StartedAt:         time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC),
		BagCount:          4,
		BagSizeGrams:      decimal.NewFromInt(250),
		ScaleTargetGrams:  decimal.NewFromInt(1000),
		ScaleReadingGrams: decimal.NewFromInt(1000),
		Ingredients: []productionapp.IngredientRequest{
			{RawMaterialName: "House Blend Base", Quantity: decimal.NewFromInt(1000), Unit: "g"},
		},
	}

	_, err := svc.CreateBatch(ctx, req)
	require.NoError(t, err)

	_, err = svc.CreateBatch(ctx, req)
	require.Error(t, err)

	// The duplicate attempt must not have consumed stock
	assert.True(t, stockLevel(t, tdb, "House Blend Base").Equal(decimal.NewFromInt(4000)))
}
