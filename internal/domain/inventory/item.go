package inventory

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/blendworks/backend/internal/domain/shared"
	"github.com/blendworks/backend/internal/domain/shared/valueobject"
)

// InventoryItem represents the current stock position of one product,
// raw material or finished good. It is the aggregate root for all ledger
// operations; every stock change appends an InventoryMovement alongside.
type InventoryItem struct {
	shared.BaseAggregateRoot
	ProductName    string          `gorm:"type:varchar(200);not null;uniqueIndex:idx_inventory_product_name"`
	SKU            string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_inventory_sku"`
	Category       string          `gorm:"type:varchar(100);index"`
	Unit           string          `gorm:"type:varchar(20);not null;default:'unit'"`
	StockLevel     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	UnitPrice      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	ReorderPoint   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	SupplierID     *uuid.UUID      `gorm:"type:uuid;index"`
	IsRecipeBased  bool            `gorm:"not null;default:false"`
	IsFinalProduct bool            `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (InventoryItem) TableName() string {
	return "inventory"
}

// NewInventoryItem creates a new inventory item
func NewInventoryItem(productName, sku, category, unit string) (*InventoryItem, error) {
	productName = strings.TrimSpace(productName)
	if productName == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if sku == "" {
		return nil, shared.NewDomainError("INVALID_SKU", "SKU cannot be empty")
	}
	if unit == "" {
		unit = "unit"
	}

	item := &InventoryItem{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ProductName:       productName,
		SKU:               sku,
		Category:          category,
		Unit:              unit,
		StockLevel:        decimal.Zero,
		UnitPrice:         decimal.Zero,
		ReorderPoint:      decimal.Zero,
	}

	item.AddDomainEvent(NewItemCreatedEvent(item))

	return item, nil
}

// Receive adds received stock. The receipt path has no upper clamp;
// the level simply increases by the delta.
func (i *InventoryItem) Receive(quantity decimal.Decimal, ref MovementRef) (*InventoryMovement, error) {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Receive quantity must be positive")
	}

	before := i.StockLevel
	i.StockLevel = i.StockLevel.Add(quantity)
	i.touch()

	return i.appendMovement(MovementTypeReceive, quantity, before, ref)
}

// Produce records finished-goods output from a manufacturing batch.
// The delta is signed: a bag-count reduction on an already finished batch
// produces a negative delta and the level may go below zero.
func (i *InventoryItem) Produce(delta decimal.Decimal, ref MovementRef) (*InventoryMovement, error) {
	if delta.IsZero() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Produce delta cannot be zero")
	}

	before := i.StockLevel
	i.StockLevel = i.StockLevel.Add(delta)
	i.touch()

	mv, err := i.appendMovement(MovementTypeManufacturingProduce, delta, before, ref)
	if err != nil {
		return nil, err
	}
	i.checkReorderPoint()
	return mv, nil
}

// Consume deducts ingredient stock for a manufacturing batch.
// The level floors at zero; consuming more than is on hand empties the item.
func (i *InventoryItem) Consume(quantity decimal.Decimal, ref MovementRef) (*InventoryMovement, error) {
	return i.deductFloored(MovementTypeManufacturingConsume, quantity, ref)
}

// RecordWastage deducts wasted stock, floored at zero like consumption.
func (i *InventoryItem) RecordWastage(quantity decimal.Decimal, ref MovementRef) (*InventoryMovement, error) {
	return i.deductFloored(MovementTypeWastage, quantity, ref)
}

// ReturnConsumption reverses part of an earlier batch consumption, for
// example when an edited batch now uses less of an ingredient. The movement
// stays typed manufacturing_consume with a positive quantity so the ledger
// for a batch nets to its true usage.
func (i *InventoryItem) ReturnConsumption(quantity decimal.Decimal, ref MovementRef) (*InventoryMovement, error) {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Return quantity must be positive")
	}

	before := i.StockLevel
	i.StockLevel = i.StockLevel.Add(quantity)
	i.touch()

	return i.appendMovement(MovementTypeManufacturingConsume, quantity, before, ref)
}

func (i *InventoryItem) deductFloored(mvType MovementType, quantity decimal.Decimal, ref MovementRef) (*InventoryMovement, error) {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Deduction quantity must be positive")
	}

	before := i.StockLevel
	next := i.StockLevel.Sub(quantity)
	if next.IsNegative() {
		next = decimal.Zero
	}
	i.StockLevel = next
	i.touch()

	// The movement records the applied delta, not the requested one,
	// so the ledger stays reconcilable with the floored level.
	applied := before.Sub(next)
	mv, err := i.appendMovement(mvType, applied.Neg(), before, ref)
	if err != nil {
		return nil, err
	}
	i.checkReorderPoint()
	return mv, nil
}

// AdjustTo sets the stock level to a counted quantity and records the
// difference as a manual adjustment movement.
func (i *InventoryItem) AdjustTo(actual decimal.Decimal, reason string, ref MovementRef) (*InventoryMovement, error) {
	if actual.IsNegative() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Actual quantity cannot be negative")
	}
	if reason == "" {
		return nil, shared.NewDomainError("INVALID_REASON", "Adjustment reason is required")
	}
	if actual.Equal(i.StockLevel) {
		// Counted level matches the recorded level, nothing to record
		return nil, nil
	}

	before := i.StockLevel
	i.StockLevel = actual
	i.touch()

	ref.Note = reason
	mv, err := i.appendMovement(MovementTypeAdjustment, actual.Sub(before), before, ref)
	if err != nil {
		return nil, err
	}
	i.checkReorderPoint()
	return mv, nil
}

// SetUnitPrice updates the unit price
func (i *InventoryItem) SetUnitPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}
	i.UnitPrice = price
	i.touch()
	return nil
}

// SetReorderPoint updates the reorder threshold
func (i *InventoryItem) SetReorderPoint(point decimal.Decimal) error {
	if point.IsNegative() {
		return shared.NewDomainError("INVALID_QUANTITY", "Reorder point cannot be negative")
	}
	i.ReorderPoint = point
	i.touch()
	return nil
}

// MarkFinalProduct flags the item as a finished good
func (i *InventoryItem) MarkFinalProduct() {
	i.IsFinalProduct = true
	i.touch()
}

// MarkRecipeBased flags the item as an intermediate recipe-based good
func (i *InventoryItem) MarkRecipeBased() {
	i.IsRecipeBased = true
	i.touch()
}

// AssignSupplier links the item to a supplier
func (i *InventoryItem) AssignSupplier(supplierID uuid.UUID) {
	i.SupplierID = &supplierID
	i.touch()
}

// IsBelowReorderPoint returns true when the level has fallen below the threshold
func (i *InventoryItem) IsBelowReorderPoint() bool {
	return i.ReorderPoint.GreaterThan(decimal.Zero) && i.StockLevel.LessThan(i.ReorderPoint)
}

// StockValue returns the current stock valuation (level * unit price)
func (i *InventoryItem) StockValue() valueobject.Money {
	return valueobject.NewMoneyGBP(i.StockLevel.Mul(i.UnitPrice))
}

// UnitPriceMoney returns the unit price as Money
func (i *InventoryItem) UnitPriceMoney() valueobject.Money {
	return valueobject.NewMoneyGBP(i.UnitPrice)
}

func (i *InventoryItem) appendMovement(mvType MovementType, delta, before decimal.Decimal, ref MovementRef) (*InventoryMovement, error) {
	mv, err := NewInventoryMovement(i.ID, mvType, delta, before, i.StockLevel, ref)
	if err != nil {
		return nil, err
	}
	i.AddDomainEvent(NewStockChangedEvent(i, mv))
	return mv, nil
}

func (i *InventoryItem) checkReorderPoint() {
	if i.IsBelowReorderPoint() {
		i.AddDomainEvent(NewStockBelowReorderPointEvent(i))
	}
}

func (i *InventoryItem) touch() {
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
}
