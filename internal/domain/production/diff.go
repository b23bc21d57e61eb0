package production

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// IngredientDelta is the net change in consumption for one raw material
// between two versions of a batch's ingredient list. A positive delta means
// additional stock must be consumed, a negative delta means previously
// consumed stock should be returned.
type IngredientDelta struct {
	RawMaterialName string
	Delta           decimal.Decimal
}

// DiffIngredients compares the previously saved ingredient list with the
// incoming one and returns the net quantity change per raw material.
// Quantities for the same material are summed across lots, so the result is
// safe to apply directly to the inventory ledger without double counting.
// An unchanged list yields an empty slice.
func DiffIngredients(old, updated []BatchIngredient) []IngredientDelta {
	totals := make(map[string]decimal.Decimal)

	for _, ing := range old {
		key := normalizeMaterialName(ing.RawMaterialName)
		totals[key] = totals[key].Sub(ing.Quantity)
	}
	for _, ing := range updated {
		key := normalizeMaterialName(ing.RawMaterialName)
		totals[key] = totals[key].Add(ing.Quantity)
	}

	deltas := make([]IngredientDelta, 0, len(totals))
	for name, delta := range totals {
		if delta.IsZero() {
			continue
		}
		deltas = append(deltas, IngredientDelta{RawMaterialName: name, Delta: delta})
	}

	sort.Slice(deltas, func(i, j int) bool {
		return deltas[i].RawMaterialName < deltas[j].RawMaterialName
	})
	return deltas
}

// ConsumptionForIngredients returns the full per-material consumption of a
// fresh batch, equivalent to diffing against an empty previous list.
func ConsumptionForIngredients(ingredients []BatchIngredient) []IngredientDelta {
	return DiffIngredients(nil, ingredients)
}

func normalizeMaterialName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
