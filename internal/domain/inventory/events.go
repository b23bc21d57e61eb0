package inventory

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/blendworks/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeInventoryItem = "InventoryItem"

// Event type constants
const (
	EventTypeItemCreated            = "InventoryItemCreated"
	EventTypeStockChanged           = "StockChanged"
	EventTypeStockBelowReorderPoint = "StockBelowReorderPoint"
)

// ItemCreatedEvent is raised when an inventory item is first registered
type ItemCreatedEvent struct {
	shared.BaseDomainEvent
	ProductName    string `json:"product_name"`
	SKU            string `json:"sku"`
	Category       string `json:"category"`
	IsFinalProduct bool   `json:"is_final_product"`
}

// NewItemCreatedEvent creates a new ItemCreatedEvent
func NewItemCreatedEvent(item *InventoryItem) *ItemCreatedEvent {
	return &ItemCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeItemCreated, AggregateTypeInventoryItem, item.ID),
		ProductName:     item.ProductName,
		SKU:             item.SKU,
		Category:        item.Category,
		IsFinalProduct:  item.IsFinalProduct,
	}
}

// EventType returns the event type name
func (e *ItemCreatedEvent) EventType() string {
	return EventTypeItemCreated
}

// StockChangedEvent is raised for every applied ledger movement
type StockChangedEvent struct {
	shared.BaseDomainEvent
	InventoryItemID uuid.UUID       `json:"inventory_item_id"`
	ProductName     string          `json:"product_name"`
	MovementType    MovementType    `json:"movement_type"`
	Quantity        decimal.Decimal `json:"quantity"`
	BalanceAfter    decimal.Decimal `json:"balance_after"`
	ReferenceType   ReferenceType   `json:"reference_type"`
	ReferenceID     *uuid.UUID      `json:"reference_id,omitempty"`
}

// NewStockChangedEvent creates a new StockChangedEvent
func NewStockChangedEvent(item *InventoryItem, mv *InventoryMovement) *StockChangedEvent {
	return &StockChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockChanged, AggregateTypeInventoryItem, item.ID),
		InventoryItemID: item.ID,
		ProductName:     item.ProductName,
		MovementType:    mv.MovementType,
		Quantity:        mv.Quantity,
		BalanceAfter:    mv.BalanceAfter,
		ReferenceType:   mv.ReferenceType,
		ReferenceID:     mv.ReferenceID,
	}
}

// EventType returns the event type name
func (e *StockChangedEvent) EventType() string {
	return EventTypeStockChanged
}

// StockBelowReorderPointEvent is raised when a deduction leaves the level
// under the configured reorder threshold
type StockBelowReorderPointEvent struct {
	shared.BaseDomainEvent
	InventoryItemID uuid.UUID       `json:"inventory_item_id"`
	ProductName     string          `json:"product_name"`
	SKU             string          `json:"sku"`
	StockLevel      decimal.Decimal `json:"stock_level"`
	ReorderPoint    decimal.Decimal `json:"reorder_point"`
}

// NewStockBelowReorderPointEvent creates a new StockBelowReorderPointEvent
func NewStockBelowReorderPointEvent(item *InventoryItem) *StockBelowReorderPointEvent {
	return &StockBelowReorderPointEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockBelowReorderPoint, AggregateTypeInventoryItem, item.ID),
		InventoryItemID: item.ID,
		ProductName:     item.ProductName,
		SKU:             item.SKU,
		StockLevel:      item.StockLevel,
		ReorderPoint:    item.ReorderPoint,
	}
}

// EventType returns the event type name
func (e *StockBelowReorderPointEvent) EventType() string {
	return EventTypeStockBelowReorderPoint
}
