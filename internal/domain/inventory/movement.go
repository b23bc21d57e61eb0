package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/blendworks/backend/internal/domain/shared"
)

// MovementType represents the cause of a stock delta
type MovementType string

const (
	// MovementTypeReceive records incoming stock from a delivery
	MovementTypeReceive MovementType = "receive"
	// MovementTypeWastage records discarded or spoiled stock
	MovementTypeWastage MovementType = "wastage"
	// MovementTypeManufacturingConsume records ingredient use by a batch
	MovementTypeManufacturingConsume MovementType = "manufacturing_consume"
	// MovementTypeManufacturingProduce records finished-goods output of a batch
	MovementTypeManufacturingProduce MovementType = "manufacturing_produce"
	// MovementTypeAdjustment records a manual correction to a counted level
	MovementTypeAdjustment MovementType = "adjustment"
)

// String returns the string representation of MovementType
func (t MovementType) String() string {
	return string(t)
}

// IsValid returns true if the movement type is valid
func (t MovementType) IsValid() bool {
	switch t {
	case MovementTypeReceive,
		MovementTypeWastage,
		MovementTypeManufacturingConsume,
		MovementTypeManufacturingProduce,
		MovementTypeAdjustment:
		return true
	}
	return false
}

// ReferenceType identifies the document that caused a movement
type ReferenceType string

const (
	// ReferenceTypeBatch is a batch manufacturing record
	ReferenceTypeBatch ReferenceType = "batch"
	// ReferenceTypeWastage is a wastage record
	ReferenceTypeWastage ReferenceType = "wastage"
	// ReferenceTypeStockReceipt is a stock receiving record
	ReferenceTypeStockReceipt ReferenceType = "stock_receipt"
	// ReferenceTypeManual is a manual operation with no source document
	ReferenceTypeManual ReferenceType = "manual"
)

// IsValid returns true if the reference type is valid
func (r ReferenceType) IsValid() bool {
	switch r {
	case ReferenceTypeBatch, ReferenceTypeWastage, ReferenceTypeStockReceipt, ReferenceTypeManual:
		return true
	}
	return false
}

// MovementRef carries the causing document and annotation for a movement
type MovementRef struct {
	Type      ReferenceType
	ID        *uuid.UUID
	Note      string
	CreatedBy string
}

// ManualRef returns a reference for operations without a source document
func ManualRef(note, createdBy string) MovementRef {
	return MovementRef{Type: ReferenceTypeManual, Note: note, CreatedBy: createdBy}
}

// BatchRef returns a reference pointing at a batch manufacturing record
func BatchRef(batchID uuid.UUID, note string) MovementRef {
	return MovementRef{Type: ReferenceTypeBatch, ID: &batchID, Note: note}
}

// InventoryMovement is an immutable record of a single stock delta.
// Movements are write-once; corrections are made with further movements,
// never by editing history.
type InventoryMovement struct {
	shared.BaseEntity
	InventoryItemID uuid.UUID       `gorm:"type:uuid;not null;index:idx_movement_item"`
	MovementType    MovementType    `gorm:"type:varchar(30);not null;index:idx_movement_type"`
	Quantity        decimal.Decimal `gorm:"type:decimal(18,4);not null"` // Signed: positive in, negative out
	BalanceBefore   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	BalanceAfter    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	ReferenceType   ReferenceType   `gorm:"type:varchar(30);not null;index:idx_movement_ref"`
	ReferenceID     *uuid.UUID      `gorm:"type:uuid;index:idx_movement_ref"`
	Note            string          `gorm:"type:varchar(255)"`
	CreatedBy       string          `gorm:"type:varchar(100)"`
	MovementDate    time.Time       `gorm:"type:timestamptz;not null;index"`
}

// TableName returns the table name for GORM
func (InventoryMovement) TableName() string {
	return "inventory_movements"
}

// NewInventoryMovement creates a new movement record
func NewInventoryMovement(
	inventoryItemID uuid.UUID,
	mvType MovementType,
	quantity decimal.Decimal,
	balanceBefore decimal.Decimal,
	balanceAfter decimal.Decimal,
	ref MovementRef,
) (*InventoryMovement, error) {
	if inventoryItemID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INVENTORY_ITEM", "Inventory item ID cannot be empty")
	}
	if !mvType.IsValid() {
		return nil, shared.NewDomainError("INVALID_MOVEMENT_TYPE", "Invalid movement type")
	}
	if ref.Type == "" {
		ref.Type = ReferenceTypeManual
	}
	if !ref.Type.IsValid() {
		return nil, shared.NewDomainError("INVALID_REFERENCE_TYPE", "Invalid reference type")
	}

	mv := &InventoryMovement{
		BaseEntity:      shared.NewBaseEntity(),
		InventoryItemID: inventoryItemID,
		MovementType:    mvType,
		Quantity:        quantity,
		BalanceBefore:   balanceBefore,
		BalanceAfter:    balanceAfter,
		ReferenceType:   ref.Type,
		ReferenceID:     ref.ID,
		Note:            ref.Note,
		CreatedBy:       ref.CreatedBy,
		MovementDate:    time.Now(),
	}

	return mv, nil
}

// WithMovementDate sets the movement date
func (m *InventoryMovement) WithMovementDate(date time.Time) *InventoryMovement {
	m.MovementDate = date
	return m
}

// WithCreatedBy sets the operator who caused the movement
func (m *InventoryMovement) WithCreatedBy(createdBy string) *InventoryMovement {
	m.CreatedBy = createdBy
	return m
}

// IsInbound returns true for movements that increased the level
func (m *InventoryMovement) IsInbound() bool {
	return m.Quantity.IsPositive()
}

// IsOutbound returns true for movements that decreased the level
func (m *InventoryMovement) IsOutbound() bool {
	return m.Quantity.IsNegative()
}

// AppliedDelta returns the net change recorded against the level
func (m *InventoryMovement) AppliedDelta() decimal.Decimal {
	return m.BalanceAfter.Sub(m.BalanceBefore)
}
