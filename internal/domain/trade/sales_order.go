package trade

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/blendworks/backend/internal/domain/shared"
	"github.com/blendworks/backend/internal/domain/shared/valueobject"
)

// OrderStatus represents the status of a sales order
type OrderStatus string

const (
	OrderStatusDraft     OrderStatus = "draft"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// IsValid checks if the status is a valid OrderStatus
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusDraft, OrderStatusConfirmed, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	switch s {
	case OrderStatusDraft:
		return target == OrderStatusConfirmed || target == OrderStatusCancelled
	case OrderStatusConfirmed:
		return target == OrderStatusDelivered || target == OrderStatusCancelled
	case OrderStatusDelivered, OrderStatusCancelled:
		return false // Terminal states
	}
	return false
}

// SalesItem is a line item in a sales order
type SalesItem struct {
	shared.BaseEntity
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index:idx_sales_item_order"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	SKU         string          `gorm:"type:varchar(50)"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	LineTotal   decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}

// TableName returns the table name for GORM
func (SalesItem) TableName() string {
	return "sales_items"
}

// NewSalesItem creates a new sales line
func NewSalesItem(orderID uuid.UUID, productName, sku string, quantity decimal.Decimal, unitPrice valueobject.Money) (*SalesItem, error) {
	productName = strings.TrimSpace(productName)
	if productName == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.Amount().IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	return &SalesItem{
		BaseEntity:  shared.NewBaseEntity(),
		OrderID:     orderID,
		ProductName: productName,
		SKU:         sku,
		Quantity:    quantity,
		UnitPrice:   unitPrice.Amount(),
		LineTotal:   quantity.Mul(unitPrice.Amount()).Round(2),
	}, nil
}

// UpdateQuantity updates the quantity and recalculates the line total
func (i *SalesItem) UpdateQuantity(quantity decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	i.Quantity = quantity
	i.LineTotal = quantity.Mul(i.UnitPrice).Round(2)
	i.UpdatedAt = time.Now()
	return nil
}

// UpdateUnitPrice updates the unit price and recalculates the line total
func (i *SalesItem) UpdateUnitPrice(unitPrice valueobject.Money) error {
	if unitPrice.Amount().IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}
	i.UnitPrice = unitPrice.Amount()
	i.LineTotal = i.Quantity.Mul(i.UnitPrice).Round(2)
	i.UpdatedAt = time.Now()
	return nil
}

// LineTotalMoney returns the line total as a Money value object
func (i *SalesItem) LineTotalMoney() valueobject.Money {
	return valueobject.NewMoneyGBP(i.LineTotal)
}

// SalesOrder is a customer order for finished products. It manages the
// lifecycle from draft through confirmation to delivery.
type SalesOrder struct {
	shared.BaseAggregateRoot
	OrderNumber      string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_sales_order_number"`
	CustomerName     string          `gorm:"type:varchar(200);not null"`
	CustomerEmail    string          `gorm:"type:varchar(200)"`
	OrderDate        time.Time       `gorm:"type:date;not null"`
	Status           OrderStatus     `gorm:"type:varchar(20);not null;default:'draft'"`
	DeliveryMethodID *uuid.UUID      `gorm:"type:uuid;index"`
	DeliveryCharge   decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	ItemsTotal       decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	OrderTotal       decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Notes            string          `gorm:"type:text"`
	ConfirmedAt      *time.Time      `gorm:"type:timestamptz"`
	DeliveredAt      *time.Time      `gorm:"type:timestamptz"`
	CancelledAt      *time.Time      `gorm:"type:timestamptz"`
	CancelReason     string          `gorm:"type:text"`

	Items []SalesItem `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName returns the table name for GORM
func (SalesOrder) TableName() string {
	return "sales_orders"
}

// NewSalesOrder creates a new draft order
func NewSalesOrder(orderNumber, customerName string, orderDate time.Time) (*SalesOrder, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	customerName = strings.TrimSpace(customerName)

	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if len(orderNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot exceed 50 characters")
	}
	if customerName == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot be empty")
	}
	if orderDate.IsZero() {
		orderDate = time.Now()
	}

	order := &SalesOrder{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderNumber:       orderNumber,
		CustomerName:      customerName,
		OrderDate:         orderDate,
		Status:            OrderStatusDraft,
		Items:             make([]SalesItem, 0),
	}

	order.AddDomainEvent(NewSalesOrderCreatedEvent(order))

	return order, nil
}

// AddItem adds a new line to the order. Only allowed in draft status.
func (o *SalesOrder) AddItem(productName, sku string, quantity decimal.Decimal, unitPrice valueobject.Money) (*SalesItem, error) {
	if o.Status != OrderStatusDraft {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot add items to a non-draft order")
	}
	for _, item := range o.Items {
		if strings.EqualFold(item.ProductName, strings.TrimSpace(productName)) {
			return nil, shared.NewDomainError("DUPLICATE_PRODUCT", "Product already on the order, update the quantity instead")
		}
	}

	item, err := NewSalesItem(o.ID, productName, sku, quantity, unitPrice)
	if err != nil {
		return nil, err
	}

	o.Items = append(o.Items, *item)
	o.recalculateTotals()
	o.touch()

	return item, nil
}

// UpdateItemQuantity updates the quantity of an existing line. Only allowed
// in draft status.
func (o *SalesOrder) UpdateItemQuantity(itemID uuid.UUID, quantity decimal.Decimal) error {
	if o.Status != OrderStatusDraft {
		return shared.NewDomainError("INVALID_STATE", "Cannot update items on a non-draft order")
	}

	for idx := range o.Items {
		if o.Items[idx].ID == itemID {
			if err := o.Items[idx].UpdateQuantity(quantity); err != nil {
				return err
			}
			o.recalculateTotals()
			o.touch()
			return nil
		}
	}
	return shared.NewDomainError("ITEM_NOT_FOUND", "Order item not found")
}

// RemoveItem removes a line from the order. Only allowed in draft status.
func (o *SalesOrder) RemoveItem(itemID uuid.UUID) error {
	if o.Status != OrderStatusDraft {
		return shared.NewDomainError("INVALID_STATE", "Cannot remove items from a non-draft order")
	}

	for idx, item := range o.Items {
		if item.ID == itemID {
			o.Items = append(o.Items[:idx], o.Items[idx+1:]...)
			o.recalculateTotals()
			o.touch()
			return nil
		}
	}
	return shared.NewDomainError("ITEM_NOT_FOUND", "Order item not found")
}

// SetDelivery assigns a delivery method and its charge. Only allowed before
// delivery.
func (o *SalesOrder) SetDelivery(methodID uuid.UUID, charge valueobject.Money) error {
	if o.Status != OrderStatusDraft && o.Status != OrderStatusConfirmed {
		return shared.NewDomainError("INVALID_STATE", "Cannot change delivery on order in current status")
	}
	if methodID == uuid.Nil {
		return shared.NewDomainError("INVALID_DELIVERY_METHOD", "Delivery method ID cannot be empty")
	}
	if charge.Amount().IsNegative() {
		return shared.NewDomainError("INVALID_DELIVERY_CHARGE", "Delivery charge cannot be negative")
	}

	o.DeliveryMethodID = &methodID
	o.DeliveryCharge = charge.Amount()
	o.recalculateTotals()
	o.touch()
	return nil
}

// Confirm confirms the order. Requires at least one line.
func (o *SalesOrder) Confirm() error {
	if !o.Status.CanTransitionTo(OrderStatusConfirmed) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot confirm order in %s status", o.Status))
	}
	if len(o.Items) == 0 {
		return shared.NewDomainError("NO_ITEMS", "Cannot confirm order without items")
	}

	now := time.Now()
	o.Status = OrderStatusConfirmed
	o.ConfirmedAt = &now
	o.touch()

	o.AddDomainEvent(NewSalesOrderConfirmedEvent(o))

	return nil
}

// MarkDelivered marks the order as delivered
func (o *SalesOrder) MarkDelivered(deliveredAt time.Time) error {
	if !o.Status.CanTransitionTo(OrderStatusDelivered) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot deliver order in %s status", o.Status))
	}
	if deliveredAt.IsZero() {
		deliveredAt = time.Now()
	}

	o.Status = OrderStatusDelivered
	o.DeliveredAt = &deliveredAt
	o.touch()

	o.AddDomainEvent(NewSalesOrderDeliveredEvent(o))

	return nil
}

// Cancel cancels the order with a reason
func (o *SalesOrder) Cancel(reason string) error {
	if !o.Status.CanTransitionTo(OrderStatusCancelled) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot cancel order in %s status", o.Status))
	}

	now := time.Now()
	o.Status = OrderStatusCancelled
	o.CancelledAt = &now
	o.CancelReason = reason
	o.touch()

	return nil
}

// SetNotes sets the order notes
func (o *SalesOrder) SetNotes(notes string) {
	o.Notes = notes
	o.touch()
}

// OrderTotalMoney returns the order total as a Money value object
func (o *SalesOrder) OrderTotalMoney() valueobject.Money {
	return valueobject.NewMoneyGBP(o.OrderTotal)
}

// IsEditable reports whether lines can still be changed
func (o *SalesOrder) IsEditable() bool {
	return o.Status == OrderStatusDraft
}

func (o *SalesOrder) recalculateTotals() {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.LineTotal)
	}
	o.ItemsTotal = total.Round(2)
	o.OrderTotal = total.Add(o.DeliveryCharge).Round(2)
}

func (o *SalesOrder) touch() {
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
}
