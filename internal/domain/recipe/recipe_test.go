package recipe

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecipe(t *testing.T) {
	t.Run("creates active recipe", func(t *testing.T) {
		r, err := NewRecipe("Earl Grey")
		require.NoError(t, err)
		assert.True(t, r.IsActive)
		assert.Empty(t, r.Items)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewRecipe("   ")
		assert.Error(t, err)
	})
}

func TestRecipe_AddItem(t *testing.T) {
	r, err := NewRecipe("Earl Grey")
	require.NoError(t, err)

	t.Run("appends lines in order", func(t *testing.T) {
		require.NoError(t, r.AddItem(uuid.New(), "Black Tea", decimal.NewFromInt(80), decimal.NewFromFloat(0.012), "g"))
		require.NoError(t, r.AddItem(uuid.New(), "Bergamot Oil", decimal.NewFromInt(2), decimal.NewFromFloat(0.50), "ml"))

		require.Len(t, r.Items, 2)
		assert.Equal(t, 0, r.Items[0].SortOrder)
		assert.Equal(t, 1, r.Items[1].SortOrder)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		err := r.AddItem(uuid.New(), "Anything", decimal.Zero, decimal.NewFromInt(1), "g")
		assert.Error(t, err)
	})

	t.Run("rejects negative cost", func(t *testing.T) {
		err := r.AddItem(uuid.New(), "Anything", decimal.NewFromInt(1), decimal.NewFromInt(-1), "g")
		assert.Error(t, err)
	})
}

func TestRecipe_ReplaceItems(t *testing.T) {
	r, err := NewRecipe("Breakfast Blend")
	require.NoError(t, err)
	require.NoError(t, r.AddItem(uuid.New(), "Assam", decimal.NewFromInt(100), decimal.NewFromFloat(0.01), "g"))

	newItems := []RecipeItem{
		{RawMaterialID: uuid.New(), RawMaterialName: "Ceylon", Quantity: decimal.NewFromInt(60), Unit: "g", UnitCostSnapshot: decimal.NewFromFloat(0.015)},
		{RawMaterialID: uuid.New(), RawMaterialName: "Kenyan", Quantity: decimal.NewFromInt(40), Unit: "g", UnitCostSnapshot: decimal.NewFromFloat(0.02)},
	}
	require.NoError(t, r.ReplaceItems(newItems))

	require.Len(t, r.Items, 2)
	assert.Equal(t, "Ceylon", r.Items[0].RawMaterialName)
	assert.Equal(t, r.ID, r.Items[0].RecipeID)
	assert.NotEqual(t, uuid.Nil, r.Items[0].ID)
	assert.Equal(t, 1, r.Items[1].SortOrder)
}

func TestRecipe_SnapshotCost(t *testing.T) {
	r, err := NewRecipe("Earl Grey")
	require.NoError(t, err)
	require.NoError(t, r.AddItem(uuid.New(), "Sugar", decimal.NewFromInt(500), decimal.NewFromFloat(0.002), "g"))
	require.NoError(t, r.AddItem(uuid.New(), "Packaging", decimal.NewFromInt(2), decimal.NewFromFloat(0.10), "unit"))

	assert.Equal(t, "1.20", r.SnapshotCost().StringFixed(2))
}

func TestNewFinalProduct(t *testing.T) {
	recipeID := uuid.New()

	t.Run("creates product", func(t *testing.T) {
		p, err := NewFinalProduct("Earl Grey 100g", recipeID, decimal.NewFromFloat(3.00))
		require.NoError(t, err)
		assert.True(t, p.IsActive)
		assert.Equal(t, recipeID, p.RecipeID)
	})

	t.Run("rejects nil recipe", func(t *testing.T) {
		_, err := NewFinalProduct("Earl Grey 100g", uuid.Nil, decimal.NewFromInt(3))
		assert.Error(t, err)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := NewFinalProduct("Earl Grey 100g", recipeID, decimal.NewFromInt(-1))
		assert.Error(t, err)
	})
}
