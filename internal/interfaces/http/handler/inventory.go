package handler

import (
	"time"

	inventoryapp "github.com/blendworks/backend/internal/application/inventory"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// parseDateTime parses a datetime string in various formats
func parseDateTime(s string) (time.Time, error) {
	// Try RFC3339 first
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	// Try ISO date format
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	// Try datetime without timezone
	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return t, nil
	}
	// Default to RFC3339 parsing error
	return time.Parse(time.RFC3339, s)
}

// InventoryHandler handles inventory ledger API endpoints
type InventoryHandler struct {
	BaseHandler
	inventoryService *inventoryapp.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(inventoryService *inventoryapp.InventoryService) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
	}
}

// CreateItem godoc
// @ID           createInventoryItem
// @Summary      Register an inventory item
// @Description  Register a new stock item with optional opening stock
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        request body inventoryapp.CreateItemRequest true "Item details"
// @Success      201 {object} APIResponse[inventoryapp.ItemResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /inventory/items [post]
func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var req inventoryapp.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	item, err := h.inventoryService.CreateItem(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, item)
}

// GetItem godoc
// @ID           getInventoryItem
// @Summary      Get an inventory item
// @Description  Retrieve an inventory item by ID, including computed stock value
// @Tags         inventory
// @Produce      json
// @Param        id path string true "Item ID" format(uuid)
// @Success      200 {object} APIResponse[inventoryapp.ItemResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /inventory/items/{id} [get]
func (h *InventoryHandler) GetItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid item ID format")
		return
	}

	item, err := h.inventoryService.GetByID(c.Request.Context(), itemID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, item)
}

// GetItemByName godoc
// @ID           getInventoryItemByName
// @Summary      Get an inventory item by product name
// @Description  Retrieve an inventory item by its exact product name
// @Tags         inventory
// @Produce      json
// @Param        name query string true "Product name"
// @Success      200 {object} APIResponse[inventoryapp.ItemResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /inventory/items/by-name [get]
func (h *InventoryHandler) GetItemByName(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		h.BadRequest(c, "Product name is required")
		return
	}

	item, err := h.inventoryService.GetByProductName(c.Request.Context(), name)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, item)
}

// List godoc
// @ID           listInventoryItems
// @Summary      List inventory items
// @Description  Retrieve inventory items with filtering and pagination
// @Tags         inventory
// @Produce      json
// @Param        search query string false "Search by product name or SKU"
// @Param        category query string false "Filter by category"
// @Param        below_reorder query boolean false "Only items at or below reorder point"
// @Param        final_products query boolean false "Filter final products"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Param        order_by query string false "Order by field" default(updated_at)
// @Param        order_dir query string false "Order direction" Enums(asc, desc) default(desc)
// @Success      200 {object} APIResponse[[]inventoryapp.ItemResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /inventory/items [get]
func (h *InventoryHandler) List(c *gin.Context) {
	var filter inventoryapp.ListFilter
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

	page, err := h.inventoryService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, filter.Page, filter.PageSize)
}

// UpdateItem godoc
// @ID           updateInventoryItem
// @Summary      Update an inventory item
// @Description  Update editable item attributes (price, reorder point, supplier)
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id path string true "Item ID" format(uuid)
// @Param        request body inventoryapp.UpdateItemRequest true "Fields to update"
// @Success      200 {object} APIResponse[inventoryapp.ItemResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /inventory/items/{id} [put]
func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid item ID format")
		return
	}

	var req inventoryapp.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	item, err := h.inventoryService.UpdateItem(c.Request.Context(), itemID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, item)
}

// ReceiveStock godoc
// @ID           receiveStock
// @Summary      Receive stock
// @Description  Record a goods-in delivery, increasing the stock level and appending a ledger movement
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        request body inventoryapp.ReceiveStockRequest true "Delivery details"
// @Success      201 {object} APIResponse[inventoryapp.MovementResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /inventory/receive [post]
func (h *InventoryHandler) ReceiveStock(c *gin.Context) {
	var req inventoryapp.ReceiveStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	movement, err := h.inventoryService.ReceiveStock(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, movement)
}

// RecordWastage godoc
// @ID           recordWastage
// @Summary      Record wastage
// @Description  Write off stock with a reason, decreasing the stock level and appending a ledger movement
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        request body inventoryapp.RecordWastageRequest true "Wastage details"
// @Success      201 {object} APIResponse[inventoryapp.MovementResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /inventory/wastage [post]
func (h *InventoryHandler) RecordWastage(c *gin.Context) {
	var req inventoryapp.RecordWastageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	movement, err := h.inventoryService.RecordWastage(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, movement)
}

// AdjustStock godoc
// @ID           adjustStock
// @Summary      Adjust stock to a counted level
// @Description  Correct the stock level to a physically counted quantity, recording the variance as a movement
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id path string true "Item ID" format(uuid)
// @Param        request body inventoryapp.AdjustStockRequest true "Adjustment details"
// @Success      200 {object} APIResponse[inventoryapp.MovementResponse] "Counted level already matches; no movement written"
// @Success      201 {object} APIResponse[inventoryapp.MovementResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /inventory/items/{id}/adjust [post]
func (h *InventoryHandler) AdjustStock(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid item ID format")
		return
	}

	var req inventoryapp.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	movement, err := h.inventoryService.AdjustStock(c.Request.Context(), itemID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	if movement == nil {
		// Counted level already matches the recorded level
		h.Success(c, gin.H{"changed": false})
		return
	}

	h.Created(c, movement)
}

// ListMovements godoc
// @ID           listInventoryMovements
// @Summary      List ledger movements
// @Description  Retrieve the append-only movement ledger with filtering and pagination
// @Tags         inventory
// @Produce      json
// @Param        inventory_item_id query string false "Filter by item ID" format(uuid)
// @Param        movement_type query string false "Filter by movement type"
// @Param        start_date query string false "Movements on or after this date" format(date)
// @Param        end_date query string false "Movements on or before this date" format(date)
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} APIResponse[[]inventoryapp.MovementResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *gin.Context) {
	var filter inventoryapp.MovementListFilter
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

	page, err := h.inventoryService.ListMovements(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, filter.Page, filter.PageSize)
}

// RecordBlendWeight godoc
// @ID           recordBlendWeight
// @Summary      Record a loose blend weight check
// @Description  Record the weighed quantity of a loose tea or coffee blend
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        request body inventoryapp.RecordBlendWeightRequest true "Weight check details"
// @Success      204
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /inventory/blend-weights [post]
func (h *InventoryHandler) RecordBlendWeight(c *gin.Context) {
	var req inventoryapp.RecordBlendWeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.inventoryService.RecordBlendWeight(c.Request.Context(), req); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
