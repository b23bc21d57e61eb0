package recipe

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/blendworks/backend/internal/domain/shared"
)

// Recipe is a bill of materials for one blended product. Line items carry a
// snapshot of the unit cost taken when the line was saved; authoritative
// costing always recomputes from current raw-material prices at read time.
type Recipe struct {
	shared.BaseAggregateRoot
	Name     string       `gorm:"type:varchar(200);not null;uniqueIndex:idx_recipe_name"`
	IsActive bool         `gorm:"not null;default:true"`
	Notes    string       `gorm:"type:text"`
	Items    []RecipeItem `gorm:"foreignKey:RecipeID;references:ID"`
}

// TableName returns the table name for GORM
func (Recipe) TableName() string {
	return "product_recipes"
}

// RecipeItem is one line of a recipe
type RecipeItem struct {
	shared.BaseEntity
	RecipeID         uuid.UUID       `gorm:"type:uuid;not null;index:idx_recipe_item_recipe"`
	RawMaterialID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	RawMaterialName  string          `gorm:"type:varchar(200);not null"`
	Quantity         decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Unit             string          `gorm:"type:varchar(20);not null;default:'unit'"`
	UnitCostSnapshot decimal.Decimal `gorm:"type:decimal(18,6);not null;default:0"`
	SortOrder        int             `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (RecipeItem) TableName() string {
	return "recipe_items"
}

// LineTotal returns quantity * snapshotted unit cost
func (i *RecipeItem) LineTotal() decimal.Decimal {
	return i.Quantity.Mul(i.UnitCostSnapshot)
}

// NewRecipe creates a new recipe
func NewRecipe(name string) (*Recipe, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_RECIPE_NAME", "Recipe name cannot be empty")
	}

	return &Recipe{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		IsActive:          true,
		Items:             make([]RecipeItem, 0),
	}, nil
}

// AddItem appends a line to the recipe
func (r *Recipe) AddItem(rawMaterialID uuid.UUID, rawMaterialName string, quantity, unitCost decimal.Decimal, unit string) error {
	if rawMaterialID == uuid.Nil {
		return shared.NewDomainError("INVALID_RAW_MATERIAL", "Raw material ID cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Item quantity must be positive")
	}
	if unitCost.IsNegative() {
		return shared.NewDomainError("INVALID_COST", "Item unit cost cannot be negative")
	}
	if unit == "" {
		unit = "unit"
	}

	r.Items = append(r.Items, RecipeItem{
		BaseEntity:       shared.NewBaseEntity(),
		RecipeID:         r.ID,
		RawMaterialID:    rawMaterialID,
		RawMaterialName:  rawMaterialName,
		Quantity:         quantity,
		Unit:             unit,
		UnitCostSnapshot: unitCost,
		SortOrder:        len(r.Items),
	})
	r.touch()
	return nil
}

// ReplaceItems swaps the item set for a new one, renumbering sort order
func (r *Recipe) ReplaceItems(items []RecipeItem) error {
	for idx := range items {
		if items[idx].Quantity.LessThanOrEqual(decimal.Zero) {
			return shared.NewDomainError("INVALID_QUANTITY", "Item quantity must be positive")
		}
		items[idx].RecipeID = r.ID
		items[idx].SortOrder = idx
		if items[idx].ID == uuid.Nil {
			items[idx].BaseEntity = shared.NewBaseEntity()
		}
	}
	r.Items = items
	r.touch()
	return nil
}

// Rename changes the recipe name
func (r *Recipe) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_RECIPE_NAME", "Recipe name cannot be empty")
	}
	r.Name = name
	r.touch()
	return nil
}

// Activate marks the recipe usable for production
func (r *Recipe) Activate() {
	r.IsActive = true
	r.touch()
}

// Deactivate retires the recipe
func (r *Recipe) Deactivate() {
	r.IsActive = false
	r.touch()
}

// SnapshotCost returns the sum of line totals using the stored snapshots.
// Display costing should prefer the costing functions over this cache.
func (r *Recipe) SnapshotCost() decimal.Decimal {
	total := decimal.Zero
	for i := range r.Items {
		total = total.Add(r.Items[i].LineTotal())
	}
	return total
}

func (r *Recipe) touch() {
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
}
