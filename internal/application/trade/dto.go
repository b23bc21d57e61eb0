package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/blendworks/backend/internal/domain/trade"
)

// OrderItemRequest is one line in an order create request
type OrderItemRequest struct {
	ProductName string          `json:"product_name" binding:"required"`
	SKU         string          `json:"sku"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unit_price" binding:"required"`
}

// CreateOrderRequest opens a draft sales order
type CreateOrderRequest struct {
	OrderNumber   string             `json:"order_number" binding:"required"`
	CustomerName  string             `json:"customer_name" binding:"required"`
	CustomerEmail string             `json:"customer_email" binding:"omitempty,email"`
	OrderDate     time.Time          `json:"order_date"`
	Items         []OrderItemRequest `json:"items"`
	Notes         string             `json:"notes"`
}

// AddItemRequest appends a line to a draft order
type AddItemRequest struct {
	ProductName string          `json:"product_name" binding:"required"`
	SKU         string          `json:"sku"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unit_price" binding:"required"`
}

// UpdateItemRequest changes a line's quantity
type UpdateItemRequest struct {
	Quantity decimal.Decimal `json:"quantity" binding:"required"`
}

// SetDeliveryRequest assigns a delivery method to an order. When no charge
// is given, the method's default charge applies.
type SetDeliveryRequest struct {
	DeliveryMethodID uuid.UUID        `json:"delivery_method_id" binding:"required"`
	Charge           *decimal.Decimal `json:"charge"`
}

// CancelOrderRequest cancels an order with a reason
type CancelOrderRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// OrderListFilter represents filter options for order lists
type OrderListFilter struct {
	Status    string     `form:"status"`
	StartDate *time.Time `form:"start_date" time_format:"2006-01-02"`
	EndDate   *time.Time `form:"end_date" time_format:"2006-01-02"`
	Search    string     `form:"search"`
	Page      int        `form:"page" binding:"omitempty,min=1"`
	PageSize  int        `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// CreateDeliveryMethodRequest registers a delivery method
type CreateDeliveryMethodRequest struct {
	Name          string          `json:"name" binding:"required"`
	DefaultCharge decimal.Decimal `json:"default_charge"`
	SortOrder     int             `json:"sort_order"`
}

// OrderItemResponse is one order line in API responses
type OrderItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductName string          `json:"product_name"`
	SKU         string          `json:"sku,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// OrderResponse represents a sales order in API responses
type OrderResponse struct {
	ID               uuid.UUID           `json:"id"`
	OrderNumber      string              `json:"order_number"`
	CustomerName     string              `json:"customer_name"`
	CustomerEmail    string              `json:"customer_email,omitempty"`
	OrderDate        time.Time           `json:"order_date"`
	Status           string              `json:"status"`
	DeliveryMethodID *uuid.UUID          `json:"delivery_method_id,omitempty"`
	DeliveryCharge   decimal.Decimal     `json:"delivery_charge"`
	ItemsTotal       decimal.Decimal     `json:"items_total"`
	OrderTotal       decimal.Decimal     `json:"order_total"`
	Notes            string              `json:"notes,omitempty"`
	ConfirmedAt      *time.Time          `json:"confirmed_at,omitempty"`
	DeliveredAt      *time.Time          `json:"delivered_at,omitempty"`
	CancelledAt      *time.Time          `json:"cancelled_at,omitempty"`
	CancelReason     string              `json:"cancel_reason,omitempty"`
	Items            []OrderItemResponse `json:"items"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
	Version          int                 `json:"version"`
}

// DeliveryMethodResponse represents a delivery method in API responses
type DeliveryMethodResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	DefaultCharge decimal.Decimal `json:"default_charge"`
	IsActive      bool            `json:"is_active"`
	SortOrder     int             `json:"sort_order"`
}

// ToOrderResponse converts a domain order to its API representation
func ToOrderResponse(order *trade.SalesOrder) OrderResponse {
	items := make([]OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItemResponse{
			ID:          item.ID,
			ProductName: item.ProductName,
			SKU:         item.SKU,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   item.LineTotal,
		}
	}
	return OrderResponse{
		ID:               order.ID,
		OrderNumber:      order.OrderNumber,
		CustomerName:     order.CustomerName,
		CustomerEmail:    order.CustomerEmail,
		OrderDate:        order.OrderDate,
		Status:           order.Status.String(),
		DeliveryMethodID: order.DeliveryMethodID,
		DeliveryCharge:   order.DeliveryCharge,
		ItemsTotal:       order.ItemsTotal,
		OrderTotal:       order.OrderTotal,
		Notes:            order.Notes,
		ConfirmedAt:      order.ConfirmedAt,
		DeliveredAt:      order.DeliveredAt,
		CancelledAt:      order.CancelledAt,
		CancelReason:     order.CancelReason,
		Items:            items,
		CreatedAt:        order.CreatedAt,
		UpdatedAt:        order.UpdatedAt,
		Version:          order.Version,
	}
}

// ToOrderResponses converts a slice of domain orders
func ToOrderResponses(orders []trade.SalesOrder) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}
	return responses
}

// ToDeliveryMethodResponse converts a domain delivery method
func ToDeliveryMethodResponse(method *trade.DeliveryMethod) DeliveryMethodResponse {
	return DeliveryMethodResponse{
		ID:            method.ID,
		Name:          method.Name,
		DefaultCharge: method.DefaultCharge,
		IsActive:      method.IsActive,
		SortOrder:     method.SortOrder,
	}
}
