package production

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ingredientLine(name, lot string, grams float64) BatchIngredient {
	return BatchIngredient{
		RawMaterialName: name,
		LotNumber:       lot,
		Quantity:        decimal.NewFromFloat(grams),
		Unit:            "g",
	}
}

func TestDiffIngredients(t *testing.T) {
	t.Run("unchanged set yields no deltas", func(t *testing.T) {
		old := []BatchIngredient{
			ingredientLine("Assam", "LOT-1", 4000),
			ingredientLine("Bergamot Oil", "LOT-2", 50),
		}
		updated := []BatchIngredient{
			ingredientLine("Assam", "LOT-1", 4000),
			ingredientLine("Bergamot Oil", "LOT-2", 50),
		}

		assert.Empty(t, DiffIngredients(old, updated))
	})

	t.Run("increased quantity yields positive delta", func(t *testing.T) {
		old := []BatchIngredient{ingredientLine("Assam", "LOT-1", 4000)}
		updated := []BatchIngredient{ingredientLine("Assam", "LOT-1", 4500)}

		deltas := DiffIngredients(old, updated)
		require.Len(t, deltas, 1)
		assert.Equal(t, "assam", deltas[0].RawMaterialName)
		assert.True(t, deltas[0].Delta.Equal(decimal.NewFromInt(500)))
	})

	t.Run("decreased quantity yields negative delta", func(t *testing.T) {
		old := []BatchIngredient{ingredientLine("Assam", "LOT-1", 4000)}
		updated := []BatchIngredient{ingredientLine("Assam", "LOT-1", 3200)}

		deltas := DiffIngredients(old, updated)
		require.Len(t, deltas, 1)
		assert.True(t, deltas[0].Delta.Equal(decimal.NewFromInt(-800)))
	})

	t.Run("added and removed lines", func(t *testing.T) {
		old := []BatchIngredient{
			ingredientLine("Assam", "LOT-1", 4000),
			ingredientLine("Bergamot Oil", "LOT-2", 50),
		}
		updated := []BatchIngredient{
			ingredientLine("Assam", "LOT-1", 4000),
			ingredientLine("Cornflower Petals", "LOT-9", 120),
		}

		deltas := DiffIngredients(old, updated)
		require.Len(t, deltas, 2)

		// Sorted by material name
		assert.Equal(t, "bergamot oil", deltas[0].RawMaterialName)
		assert.True(t, deltas[0].Delta.Equal(decimal.NewFromInt(-50)))
		assert.Equal(t, "cornflower petals", deltas[1].RawMaterialName)
		assert.True(t, deltas[1].Delta.Equal(decimal.NewFromInt(120)))
	})

	t.Run("same material across lots is summed", func(t *testing.T) {
		old := []BatchIngredient{
			ingredientLine("Assam", "LOT-1", 2000),
			ingredientLine("Assam", "LOT-2", 2000),
		}
		updated := []BatchIngredient{
			ingredientLine("Assam", "LOT-3", 4000),
		}

		assert.Empty(t, DiffIngredients(old, updated))
	})

	t.Run("material name comparison is case and space insensitive", func(t *testing.T) {
		old := []BatchIngredient{ingredientLine("  Assam ", "LOT-1", 4000)}
		updated := []BatchIngredient{ingredientLine("assam", "LOT-1", 4000)}

		assert.Empty(t, DiffIngredients(old, updated))
	})
}

func TestConsumptionForIngredients(t *testing.T) {
	ingredients := []BatchIngredient{
		ingredientLine("Assam", "LOT-1", 4000),
		ingredientLine("Bergamot Oil", "LOT-2", 50),
	}

	deltas := ConsumptionForIngredients(ingredients)
	require.Len(t, deltas, 2)
	assert.True(t, deltas[0].Delta.Equal(decimal.NewFromInt(4000)))
	assert.True(t, deltas[1].Delta.Equal(decimal.NewFromInt(50)))
}
