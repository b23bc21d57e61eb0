package trade

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/blendworks/backend/internal/domain/shared"
	"github.com/blendworks/backend/internal/domain/shared/valueobject"
	"github.com/blendworks/backend/internal/domain/trade"
)

// SalesOrderService manages the sales order lifecycle
type SalesOrderService struct {
	orderRepo      trade.SalesOrderRepository
	methodRepo     trade.DeliveryMethodRepository
	eventPublisher shared.EventPublisher
}

// NewSalesOrderService creates a new SalesOrderService
func NewSalesOrderService(
	orderRepo trade.SalesOrderRepository,
	methodRepo trade.DeliveryMethodRepository,
) *SalesOrderService {
	return &SalesOrderService{
		orderRepo:  orderRepo,
		methodRepo: methodRepo,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *SalesOrderService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// CreateOrder opens a draft order, optionally with initial lines
func (s *SalesOrderService) CreateOrder(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	exists, err := s.orderRepo.ExistsByOrderNumber(ctx, req.OrderNumber)
	if err != nil {
		return nil, fmt.Errorf("checking order number: %w", err)
	}
	if exists {
		return nil, shared.NewDomainError("DUPLICATE_ORDER_NUMBER", "An order with this number already exists")
	}

	orderDate := req.OrderDate
	if orderDate.IsZero() {
		orderDate = time.Now()
	}

	order, err := trade.NewSalesOrder(req.OrderNumber, req.CustomerName, orderDate)
	if err != nil {
		return nil, err
	}
	order.CustomerEmail = req.CustomerEmail
	if req.Notes != "" {
		order.SetNotes(req.Notes)
	}

	for _, item := range req.Items {
		if _, err := order.AddItem(item.ProductName, item.SKU, item.Quantity, valueobject.NewMoneyGBP(item.UnitPrice)); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, order)
	response := ToOrderResponse(order)
	return &response, nil
}

// AddItem appends a line to a draft order
func (s *SalesOrderService) AddItem(ctx context.Context, orderID uuid.UUID, req AddItemRequest) (*OrderResponse, error) {
	return s.mutate(ctx, orderID, func(order *trade.SalesOrder) error {
		_, err := order.AddItem(req.ProductName, req.SKU, req.Quantity, valueobject.NewMoneyGBP(req.UnitPrice))
		return err
	})
}

// UpdateItemQuantity changes a line's quantity on a draft order
func (s *SalesOrderService) UpdateItemQuantity(ctx context.Context, orderID, itemID uuid.UUID, req UpdateItemRequest) (*OrderResponse, error) {
	return s.mutate(ctx, orderID, func(order *trade.SalesOrder) error {
		return order.UpdateItemQuantity(itemID, req.Quantity)
	})
}

// RemoveItem deletes a line from a draft order
func (s *SalesOrderService) RemoveItem(ctx context.Context, orderID, itemID uuid.UUID) (*OrderResponse, error) {
	return s.mutate(ctx, orderID, func(order *trade.SalesOrder) error {
		return order.RemoveItem(itemID)
	})
}

// SetDelivery assigns a delivery method. The method's default charge applies
// unless the request overrides it.
func (s *SalesOrderService) SetDelivery(ctx context.Context, orderID uuid.UUID, req SetDeliveryRequest) (*OrderResponse, error) {
	method, err := s.methodRepo.FindByID(ctx, req.DeliveryMethodID)
	if err != nil {
		return nil, fmt.Errorf("resolving delivery method: %w", err)
	}

	charge := method.DefaultCharge
	if req.Charge != nil {
		charge = *req.Charge
	}

	return s.mutate(ctx, orderID, func(order *trade.SalesOrder) error {
		return order.SetDelivery(method.ID, valueobject.NewMoneyGBP(charge))
	})
}

// ConfirmOrder moves a draft order to confirmed
func (s *SalesOrderService) ConfirmOrder(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	return s.mutate(ctx, orderID, func(order *trade.SalesOrder) error {
		return order.Confirm()
	})
}

// MarkDelivered records delivery of a confirmed order
func (s *SalesOrderService) MarkDelivered(ctx context.Context, orderID uuid.UUID, deliveredAt time.Time) (*OrderResponse, error) {
	if deliveredAt.IsZero() {
		deliveredAt = time.Now()
	}
	return s.mutate(ctx, orderID, func(order *trade.SalesOrder) error {
		return order.MarkDelivered(deliveredAt)
	})
}

// CancelOrder cancels an order with a reason
func (s *SalesOrderService) CancelOrder(ctx context.Context, orderID uuid.UUID, req CancelOrderRequest) (*OrderResponse, error) {
	return s.mutate(ctx, orderID, func(order *trade.SalesOrder) error {
		return order.Cancel(req.Reason)
	})
}

// GetByID retrieves an order by ID
func (s *SalesOrderService) GetByID(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	response := ToOrderResponse(order)
	return &response, nil
}

// List retrieves orders with filtering and pagination
func (s *SalesOrderService) List(ctx context.Context, filter OrderListFilter) (*shared.Paginated[OrderResponse], error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	domainFilter.Search = filter.Search

	var orders []trade.SalesOrder
	var err error
	switch {
	case filter.Status != "":
		status := trade.OrderStatus(filter.Status)
		if !status.IsValid() {
			return nil, shared.NewDomainError("INVALID_ORDER_STATUS", "Unknown order status")
		}
		orders, err = s.orderRepo.FindByStatus(ctx, status, domainFilter)
	case filter.StartDate != nil && filter.EndDate != nil:
		orders, err = s.orderRepo.FindByDateRange(ctx, *filter.StartDate, *filter.EndDate, domainFilter)
	default:
		orders, err = s.orderRepo.FindAll(ctx, domainFilter)
	}
	if err != nil {
		return nil, err
	}

	total, err := s.orderRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	page := shared.NewPaginated(ToOrderResponses(orders), total, domainFilter.Page, domainFilter.PageSize)
	return &page, nil
}

// CreateDeliveryMethod registers a delivery method
func (s *SalesOrderService) CreateDeliveryMethod(ctx context.Context, req CreateDeliveryMethodRequest) (*DeliveryMethodResponse, error) {
	if _, err := s.methodRepo.FindByName(ctx, req.Name); err == nil {
		return nil, shared.NewDomainError("DUPLICATE_DELIVERY_METHOD", "A delivery method with this name already exists")
	} else if !shared.IsNotFound(err) {
		return nil, err
	}

	method, err := trade.NewDeliveryMethod(req.Name, req.DefaultCharge)
	if err != nil {
		return nil, err
	}
	method.SortOrder = req.SortOrder

	if err := s.methodRepo.Save(ctx, method); err != nil {
		return nil, err
	}

	response := ToDeliveryMethodResponse(method)
	return &response, nil
}

// ListDeliveryMethods retrieves active delivery methods
func (s *SalesOrderService) ListDeliveryMethods(ctx context.Context) ([]DeliveryMethodResponse, error) {
	methods, err := s.methodRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]DeliveryMethodResponse, len(methods))
	for i := range methods {
		responses[i] = ToDeliveryMethodResponse(&methods[i])
	}
	return responses, nil
}

// mutate loads an order, applies the change, and saves with the optimistic
// lock. Every write path for an existing order goes through here.
func (s *SalesOrderService) mutate(ctx context.Context, orderID uuid.UUID, fn func(*trade.SalesOrder) error) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := fn(order); err != nil {
		return nil, err
	}
	if err := s.orderRepo.SaveWithLock(ctx, order); err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, order)
	response := ToOrderResponse(order)
	return &response, nil
}

func (s *SalesOrderService) publishDomainEvents(ctx context.Context, order *trade.SalesOrder) {
	if s.eventPublisher == nil {
		return
	}
	events := order.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
	order.ClearDomainEvents()
}
