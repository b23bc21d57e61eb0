package handler

import (
	"time"

	tradeapp "github.com/blendworks/backend/internal/application/trade"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TradeHandler handles sales order and delivery method API endpoints
type TradeHandler struct {
	BaseHandler
	orderService *tradeapp.SalesOrderService
}

// NewTradeHandler creates a new TradeHandler
func NewTradeHandler(orderService *tradeapp.SalesOrderService) *TradeHandler {
	return &TradeHandler{
		orderService: orderService,
	}
}

// MarkDeliveredRequest carries the delivery timestamp
// @Description Request body for marking an order delivered
type MarkDeliveredRequest struct {
	DeliveredAt string `json:"delivered_at" example:"2025-08-14T15:00:00Z"`
}

// CreateOrder godoc
// @ID           createSalesOrder
// @Summary      Open a sales order
// @Description  Open a draft sales order, optionally with initial lines
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request body tradeapp.CreateOrderRequest true "Order details"
// @Success      201 {object} APIResponse[tradeapp.OrderResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /orders [post]
func (h *TradeHandler) CreateOrder(c *gin.Context) {
	var req tradeapp.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, order)
}

// AddItem godoc
// @ID           addOrderItem
// @Summary      Add an order line
// @Description  Append a line to a draft sales order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id path string true "Order ID" format(uuid)
// @Param        request body tradeapp.AddItemRequest true "Line details"
// @Success      200 {object} APIResponse[tradeapp.OrderResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /orders/{id}/items [post]
func (h *TradeHandler) AddItem(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	var req tradeapp.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.orderService.AddItem(c.Request.Context(), orderID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, order)
}

// UpdateItemQuantity godoc
// @ID           updateOrderItemQuantity
// @Summary      Change an order line quantity
// @Description  Change the quantity of a line on a draft sales order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id path string true "Order ID" format(uuid)
// @Param        item_id path string true "Item ID" format(uuid)
// @Param        request body tradeapp.UpdateItemRequest true "New quantity"
// @Success      200 {object} APIResponse[tradeapp.OrderResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /orders/{id}/items/{item_id} [put]
func (h *TradeHandler) UpdateItemQuantity(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	itemID, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		h.BadRequest(c, "Invalid item ID format")
		return
	}

	var req tradeapp.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.orderService.UpdateItemQuantity(c.Request.Context(), orderID, itemID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, order)
}

// RemoveItem godoc
// @ID           removeOrderItem
// @Summary      Remove an order line
// @Description  Remove a line from a draft sales order
// @Tags         orders
// @Produce      json
// @Param        id path string true "Order ID" format(uuid)
// @Param        item_id path string true "Item ID" format(uuid)
// @Success      200 {object} APIResponse[tradeapp.OrderResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /orders/{id}/items/{item_id} [delete]
func (h *TradeHandler) RemoveItem(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	itemID, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		h.BadRequest(c, "Invalid item ID format")
		return
	}

	order, err := h.orderService.RemoveItem(c.Request.Context(), orderID, itemID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, order)
}

// SetDelivery godoc
// @ID           setOrderDelivery
// @Summary      Set an order's delivery method
// @Description  Assign a delivery method and optional charge override to an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id path string true "Order ID" format(uuid)
// @Param        request body tradeapp.SetDeliveryRequest true "Delivery details"
// @Success      200 {object} APIResponse[tradeapp.OrderResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /orders/{id}/delivery [put]
func (h *TradeHandler) SetDelivery(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	var req tradeapp.SetDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.orderService.SetDelivery(c.Request.Context(), orderID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, order)
}

// ConfirmOrder godoc
// @ID           confirmSalesOrder
// @Summary      Confirm a sales order
// @Description  Confirm a draft order so it can be fulfilled
// @Tags         orders
// @Produce      json
// @Param        id path string true "Order ID" format(uuid)
// @Success      200 {object} APIResponse[tradeapp.OrderResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /orders/{id}/confirm [post]
func (h *TradeHandler) ConfirmOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	order, err := h.orderService.ConfirmOrder(c.Request.Context(), orderID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, order)
}

// MarkDelivered godoc
// @ID           markOrderDelivered
// @Summary      Mark a sales order delivered
// @Description  Record the delivery of a confirmed order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id path string true "Order ID" format(uuid)
// @Param        request body MarkDeliveredRequest false "Optional delivery time (defaults to now)"
// @Success      200 {object} APIResponse[tradeapp.OrderResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /orders/{id}/deliver [post]
func (h *TradeHandler) MarkDelivered(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	var req MarkDeliveredRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.BadRequest(c, err.Error())
			return
		}
	}

	deliveredAt := time.Now()
	if req.DeliveredAt != "" {
		deliveredAt, err = parseDateTime(req.DeliveredAt)
		if err != nil {
			h.BadRequest(c, "Invalid delivered_at format")
			return
		}
	}

	order, err := h.orderService.MarkDelivered(c.Request.Context(), orderID, deliveredAt)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, order)
}

// CancelOrder godoc
// @ID           cancelSalesOrder
// @Summary      Cancel a sales order
// @Description  Cancel an order with a reason
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id path string true "Order ID" format(uuid)
// @Param        request body tradeapp.CancelOrderRequest true "Cancellation reason"
// @Success      200 {object} APIResponse[tradeapp.OrderResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /orders/{id}/cancel [post]
func (h *TradeHandler) CancelOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	var req tradeapp.CancelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.orderService.CancelOrder(c.Request.Context(), orderID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, order)
}

// GetOrder godoc
// @ID           getSalesOrder
// @Summary      Get a sales order
// @Description  Retrieve a sales order with its lines and totals
// @Tags         orders
// @Produce      json
// @Param        id path string true "Order ID" format(uuid)
// @Success      200 {object} APIResponse[tradeapp.OrderResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /orders/{id} [get]
func (h *TradeHandler) GetOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	order, err := h.orderService.GetByID(c.Request.Context(), orderID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, order)
}

// ListOrders godoc
// @ID           listSalesOrders
// @Summary      List sales orders
// @Description  Retrieve sales orders with filtering and pagination
// @Tags         orders
// @Produce      json
// @Param        status query string false "Filter by status" Enums(DRAFT, CONFIRMED, DELIVERED, CANCELLED)
// @Param        search query string false "Search by order number or customer"
// @Param        start_date query string false "Orders on or after this date" format(date)
// @Param        end_date query string false "Orders on or before this date" format(date)
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} APIResponse[[]tradeapp.OrderResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /orders [get]
func (h *TradeHandler) ListOrders(c *gin.Context) {
	var filter tradeapp.OrderListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	// Set defaults
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	page, err := h.orderService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, filter.Page, filter.PageSize)
}

// CreateDeliveryMethod godoc
// @ID           createDeliveryMethod
// @Summary      Register a delivery method
// @Description  Register a delivery method with its default charge
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request body tradeapp.CreateDeliveryMethodRequest true "Delivery method details"
// @Success      201 {object} APIResponse[tradeapp.DeliveryMethodResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /delivery-methods [post]
func (h *TradeHandler) CreateDeliveryMethod(c *gin.Context) {
	var req tradeapp.CreateDeliveryMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	method, err := h.orderService.CreateDeliveryMethod(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, method)
}

// ListDeliveryMethods godoc
// @ID           listDeliveryMethods
// @Summary      List delivery methods
// @Description  Retrieve all active delivery methods
// @Tags         orders
// @Produce      json
// @Success      200 {object} APIResponse[[]tradeapp.DeliveryMethodResponse]
// @Failure      500 {object} dto.ErrorResponse
// @Router       /delivery-methods [get]
func (h *TradeHandler) ListDeliveryMethods(c *gin.Context) {
	methods, err := h.orderService.ListDeliveryMethods(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, methods)
}
