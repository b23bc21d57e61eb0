package recipe

import (
	"github.com/shopspring/decimal"

	"github.com/blendworks/backend/internal/domain/shared/valueobject"
)

var hundred = decimal.NewFromInt(100)

// CostLine is one priced recipe line in a costing breakdown
type CostLine struct {
	RawMaterialName string          `json:"raw_material_name"`
	Quantity        decimal.Decimal `json:"quantity"`
	Unit            string          `json:"unit"`
	UnitCost        decimal.Decimal `json:"unit_cost"`
	LineTotal       decimal.Decimal `json:"line_total"`
}

// Costing holds the derived pricing figures for a final product. All
// percentage and money figures are rounded to 2 decimal places for display.
type Costing struct {
	RecipeCost    valueobject.Money `json:"recipe_cost"`
	SellingPrice  valueobject.Money `json:"selling_price"`
	MarkupPercent decimal.Decimal   `json:"markup_percent"`
	MarginPercent decimal.Decimal   `json:"margin_percent"`
	ProfitPerItem valueobject.Money `json:"profit_per_item"`
	Lines         []CostLine        `json:"lines,omitempty"`
}

// RecipeCost sums quantity * unit cost over the given lines.
// Unit costs come from the caller, which prices each line with the
// current raw-material cost rather than the stored snapshot.
func RecipeCost(lines []CostLine) decimal.Decimal {
	total := decimal.Zero
	for i := range lines {
		total = total.Add(lines[i].Quantity.Mul(lines[i].UnitCost))
	}
	return total
}

// PriceLines builds cost lines from recipe items using a current unit cost
// per raw material. Materials missing from the price map fall back to the
// snapshot taken when the recipe line was saved.
func PriceLines(items []RecipeItem, currentCosts map[string]decimal.Decimal) []CostLine {
	lines := make([]CostLine, 0, len(items))
	for i := range items {
		unitCost := items[i].UnitCostSnapshot
		if current, ok := currentCosts[items[i].RawMaterialID.String()]; ok {
			unitCost = current
		}
		lines = append(lines, CostLine{
			RawMaterialName: items[i].RawMaterialName,
			Quantity:        items[i].Quantity,
			Unit:            items[i].Unit,
			UnitCost:        unitCost,
			LineTotal:       items[i].Quantity.Mul(unitCost).Round(2),
		})
	}
	return lines
}

// Markup returns (price - cost) / cost * 100, or zero when cost is not positive
func Markup(cost, price decimal.Decimal) decimal.Decimal {
	if cost.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return price.Sub(cost).Div(cost).Mul(hundred).Round(2)
}

// Margin returns (price - cost) / price * 100, or zero when cost is not
// positive. Unlike markup the denominator is the selling price.
func Margin(cost, price decimal.Decimal) decimal.Decimal {
	if cost.LessThanOrEqual(decimal.Zero) || price.IsZero() {
		return decimal.Zero
	}
	return price.Sub(cost).Div(price).Mul(hundred).Round(2)
}

// Profit returns price - cost
func Profit(cost, price decimal.Decimal) decimal.Decimal {
	return price.Sub(cost).Round(2)
}

// Cost computes the full derived costing for a set of priced lines and a
// selling price
func Cost(lines []CostLine, sellingPrice decimal.Decimal) Costing {
	cost := RecipeCost(lines)
	return Costing{
		RecipeCost:    valueobject.NewMoneyGBP(cost.Round(2)),
		SellingPrice:  valueobject.NewMoneyGBP(sellingPrice.Round(2)),
		MarkupPercent: Markup(cost, sellingPrice),
		MarginPercent: Margin(cost, sellingPrice),
		ProfitPerItem: valueobject.NewMoneyGBP(Profit(cost, sellingPrice)),
		Lines:         lines,
	}
}
