package trade

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/blendworks/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeSalesOrder = "SalesOrder"

// Event type constants
const (
	EventTypeSalesOrderCreated   = "SalesOrderCreated"
	EventTypeSalesOrderConfirmed = "SalesOrderConfirmed"
	EventTypeSalesOrderDelivered = "SalesOrderDelivered"
)

// SalesOrderCreatedEvent is raised when a draft order is opened
type SalesOrderCreatedEvent struct {
	shared.BaseDomainEvent
	OrderNumber  string    `json:"order_number"`
	CustomerName string    `json:"customer_name"`
	OrderDate    time.Time `json:"order_date"`
}

// NewSalesOrderCreatedEvent creates a new SalesOrderCreatedEvent
func NewSalesOrderCreatedEvent(order *SalesOrder) *SalesOrderCreatedEvent {
	return &SalesOrderCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSalesOrderCreated, AggregateTypeSalesOrder, order.ID),
		OrderNumber:     order.OrderNumber,
		CustomerName:    order.CustomerName,
		OrderDate:       order.OrderDate,
	}
}

// EventType returns the event type name
func (e *SalesOrderCreatedEvent) EventType() string {
	return EventTypeSalesOrderCreated
}

// SalesOrderConfirmedEvent is raised when an order is confirmed
type SalesOrderConfirmedEvent struct {
	shared.BaseDomainEvent
	OrderNumber string          `json:"order_number"`
	OrderTotal  decimal.Decimal `json:"order_total"`
	ItemCount   int             `json:"item_count"`
}

// NewSalesOrderConfirmedEvent creates a new SalesOrderConfirmedEvent
func NewSalesOrderConfirmedEvent(order *SalesOrder) *SalesOrderConfirmedEvent {
	return &SalesOrderConfirmedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSalesOrderConfirmed, AggregateTypeSalesOrder, order.ID),
		OrderNumber:     order.OrderNumber,
		OrderTotal:      order.OrderTotal,
		ItemCount:       len(order.Items),
	}
}

// EventType returns the event type name
func (e *SalesOrderConfirmedEvent) EventType() string {
	return EventTypeSalesOrderConfirmed
}

// SalesOrderDeliveredEvent is raised when an order is marked delivered
type SalesOrderDeliveredEvent struct {
	shared.BaseDomainEvent
	OrderNumber string    `json:"order_number"`
	DeliveredAt time.Time `json:"delivered_at"`
}

// NewSalesOrderDeliveredEvent creates a new SalesOrderDeliveredEvent
func NewSalesOrderDeliveredEvent(order *SalesOrder) *SalesOrderDeliveredEvent {
	delivered := time.Time{}
	if order.DeliveredAt != nil {
		delivered = *order.DeliveredAt
	}
	return &SalesOrderDeliveredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSalesOrderDelivered, AggregateTypeSalesOrder, order.ID),
		OrderNumber:     order.OrderNumber,
		DeliveredAt:     delivered,
	}
}

// EventType returns the event type name
func (e *SalesOrderDeliveredEvent) EventType() string {
	return EventTypeSalesOrderDelivered
}
