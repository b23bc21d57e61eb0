package event

import (
	"github.com/blendworks/backend/internal/domain/inventory"
	"github.com/blendworks/backend/internal/domain/partner"
	"github.com/blendworks/backend/internal/domain/production"
	"github.com/blendworks/backend/internal/domain/trade"
)

// RegisterAllEvents registers all domain event types with the serializer.
// This is required for the OutboxProcessor to deserialize events from the
// outbox table.
func RegisterAllEvents(serializer *EventSerializer) {
	// Inventory ledger events
	serializer.Register(inventory.EventTypeItemCreated, &inventory.ItemCreatedEvent{})
	serializer.Register(inventory.EventTypeStockChanged, &inventory.StockChangedEvent{})
	serializer.Register(inventory.EventTypeStockBelowReorderPoint, &inventory.StockBelowReorderPointEvent{})

	// Batch production events
	serializer.Register(production.EventTypeBatchCreated, &production.BatchCreatedEvent{})
	serializer.Register(production.EventTypeBatchCompleted, &production.BatchCompletedEvent{})

	// Sales order events
	serializer.Register(trade.EventTypeSalesOrderCreated, &trade.SalesOrderCreatedEvent{})
	serializer.Register(trade.EventTypeSalesOrderConfirmed, &trade.SalesOrderConfirmedEvent{})
	serializer.Register(trade.EventTypeSalesOrderDelivered, &trade.SalesOrderDeliveredEvent{})

	// Supplier events
	serializer.Register(partner.EventTypeSupplierCreated, &partner.SupplierCreatedEvent{})
}
