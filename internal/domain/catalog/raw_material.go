package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/blendworks/backend/internal/domain/shared"
)

// RawMaterial registers an ingredient that recipes and batches can draw on.
// UnitCost is the current purchase cost per unit and feeds live recipe
// costing; historical costs stay snapshotted on recipe items.
type RawMaterial struct {
	shared.BaseAggregateRoot
	Name        string          `gorm:"type:varchar(200);not null;uniqueIndex:idx_raw_material_name"`
	Unit        string          `gorm:"type:varchar(20);not null;default:'g'"`
	UnitCost    decimal.Decimal `gorm:"type:decimal(18,6);not null;default:0"`
	SupplierID  *uuid.UUID      `gorm:"type:uuid;index"`
	IsAllergen  bool            `gorm:"not null;default:false"`
	CountryCode string          `gorm:"type:varchar(2)"`
	Notes       string          `gorm:"type:text"`
	IsActive    bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (RawMaterial) TableName() string {
	return "raw_materials"
}

// NewRawMaterial creates a new raw material
func NewRawMaterial(name, unit string, unitCost decimal.Decimal) (*RawMaterial, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Raw material name cannot be empty")
	}
	if unitCost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_UNIT_COST", "Unit cost cannot be negative")
	}
	if unit == "" {
		unit = "g"
	}

	return &RawMaterial{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Unit:              unit,
		UnitCost:          unitCost,
		IsActive:          true,
	}, nil
}

// SetUnitCost updates the current purchase cost per unit
func (m *RawMaterial) SetUnitCost(cost decimal.Decimal) error {
	if cost.IsNegative() {
		return shared.NewDomainError("INVALID_UNIT_COST", "Unit cost cannot be negative")
	}
	m.UnitCost = cost
	m.touch()
	return nil
}

// AssignSupplier links the material to its usual supplier
func (m *RawMaterial) AssignSupplier(supplierID uuid.UUID) {
	m.SupplierID = &supplierID
	m.touch()
}

// MarkAllergen flags the material as a declared allergen
func (m *RawMaterial) MarkAllergen(isAllergen bool) {
	m.IsAllergen = isAllergen
	m.touch()
}

// Rename changes the material name
func (m *RawMaterial) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Raw material name cannot be empty")
	}
	m.Name = name
	m.touch()
	return nil
}

// Deactivate retires the material from new recipes
func (m *RawMaterial) Deactivate() {
	m.IsActive = false
	m.touch()
}

// Activate returns the material to use
func (m *RawMaterial) Activate() {
	m.IsActive = true
	m.touch()
}

func (m *RawMaterial) touch() {
	m.UpdatedAt = time.Now()
	m.IncrementVersion()
}
