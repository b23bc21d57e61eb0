package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/blendworks/backend/internal/domain/inventory"
)

// ItemResponse represents an inventory item in API responses
type ItemResponse struct {
	ID                  uuid.UUID       `json:"id"`
	ProductName         string          `json:"product_name"`
	SKU                 string          `json:"sku"`
	Category            string          `json:"category"`
	Unit                string          `json:"unit"`
	StockLevel          decimal.Decimal `json:"stock_level"`
	UnitPrice           decimal.Decimal `json:"unit_price"`
	StockValue          decimal.Decimal `json:"stock_value"`
	ReorderPoint        decimal.Decimal `json:"reorder_point"`
	IsBelowReorderPoint bool            `json:"is_below_reorder_point"`
	SupplierID          *uuid.UUID      `json:"supplier_id,omitempty"`
	IsRecipeBased       bool            `json:"is_recipe_based"`
	IsFinalProduct      bool            `json:"is_final_product"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
	Version             int             `json:"version"`
}

// MovementResponse represents a ledger movement in API responses
type MovementResponse struct {
	ID              uuid.UUID       `json:"id"`
	InventoryItemID uuid.UUID       `json:"inventory_item_id"`
	MovementType    string          `json:"movement_type"`
	Quantity        decimal.Decimal `json:"quantity"`
	BalanceBefore   decimal.Decimal `json:"balance_before"`
	BalanceAfter    decimal.Decimal `json:"balance_after"`
	ReferenceType   string          `json:"reference_type"`
	ReferenceID     *uuid.UUID      `json:"reference_id,omitempty"`
	Note            string          `json:"note,omitempty"`
	CreatedBy       string          `json:"created_by,omitempty"`
	MovementDate    time.Time       `json:"movement_date"`
}

// ListFilter represents filter options for inventory lists
type ListFilter struct {
	Search        string `form:"search"`
	Category      string `form:"category"`
	BelowReorder  *bool  `form:"below_reorder"`
	FinalProducts *bool  `form:"final_products"`
	Page          int    `form:"page" binding:"omitempty,min=1"`
	PageSize      int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy       string `form:"order_by"`
	OrderDir      string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// MovementListFilter represents filter options for the ledger
type MovementListFilter struct {
	InventoryItemID *uuid.UUID `form:"inventory_item_id"`
	MovementType    string     `form:"movement_type"`
	StartDate       *time.Time `form:"start_date" time_format:"2006-01-02"`
	EndDate         *time.Time `form:"end_date" time_format:"2006-01-02"`
	Page            int        `form:"page" binding:"omitempty,min=1"`
	PageSize        int        `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// CreateItemRequest represents a request to register a new inventory item
type CreateItemRequest struct {
	ProductName    string          `json:"product_name" binding:"required"`
	SKU            string          `json:"sku"`
	Category       string          `json:"category" binding:"required"`
	Unit           string          `json:"unit"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	ReorderPoint   decimal.Decimal `json:"reorder_point"`
	SupplierID     *uuid.UUID      `json:"supplier_id"`
	IsFinalProduct bool            `json:"is_final_product"`
	InitialStock   decimal.Decimal `json:"initial_stock"`
}

// ReceiveStockRequest represents a goods-in delivery
type ReceiveStockRequest struct {
	ProductName    string          `json:"product_name" binding:"required"`
	Quantity       decimal.Decimal `json:"quantity" binding:"required"`
	Unit           string          `json:"unit"`
	Category       string          `json:"category"`
	SupplierID     *uuid.UUID      `json:"supplier_id"`
	LotNumber      string          `json:"lot_number"`
	UnitCost       decimal.Decimal `json:"unit_cost"`
	ReceivedDate   time.Time       `json:"received_date" time_format:"2006-01-02"`
	ReceivedBy     string          `json:"received_by"`
	Note           string          `json:"note"`
	IdempotencyKey string          `json:"idempotency_key"`
}

// RecordWastageRequest represents a wastage write-off
type RecordWastageRequest struct {
	ProductName    string          `json:"product_name" binding:"required"`
	Quantity       decimal.Decimal `json:"quantity" binding:"required"`
	Reason         string          `json:"reason" binding:"required"`
	WastageDate    time.Time       `json:"wastage_date" time_format:"2006-01-02"`
	RecordedBy     string          `json:"recorded_by"`
	IdempotencyKey string          `json:"idempotency_key"`
}

// AdjustStockRequest represents a manual stock correction to a counted level
type AdjustStockRequest struct {
	ActualLevel    decimal.Decimal `json:"actual_level" binding:"required"`
	Reason         string          `json:"reason" binding:"required"`
	AdjustedBy     string          `json:"adjusted_by"`
	IdempotencyKey string          `json:"idempotency_key"`
}

// UpdateItemRequest represents editable item attributes
type UpdateItemRequest struct {
	UnitPrice    *decimal.Decimal `json:"unit_price"`
	ReorderPoint *decimal.Decimal `json:"reorder_point"`
	SupplierID   *uuid.UUID       `json:"supplier_id"`
}

// RecordBlendWeightRequest updates a loose tea/coffee weight check
type RecordBlendWeightRequest struct {
	BlendName   string          `json:"blend_name" binding:"required"`
	Kind        string          `json:"kind" binding:"required,oneof=tea coffee"`
	WeightGrams decimal.Decimal `json:"weight_grams" binding:"required"`
	WeighedBy   string          `json:"weighed_by"`
}

// ToItemResponse converts a domain item to its API representation
func ToItemResponse(item *inventory.InventoryItem) ItemResponse {
	return ItemResponse{
		ID:                  item.ID,
		ProductName:         item.ProductName,
		SKU:                 item.SKU,
		Category:            item.Category,
		Unit:                item.Unit,
		StockLevel:          item.StockLevel,
		UnitPrice:           item.UnitPrice,
		StockValue:          item.StockValue().Amount(),
		ReorderPoint:        item.ReorderPoint,
		IsBelowReorderPoint: item.IsBelowReorderPoint(),
		SupplierID:          item.SupplierID,
		IsRecipeBased:       item.IsRecipeBased,
		IsFinalProduct:      item.IsFinalProduct,
		CreatedAt:           item.CreatedAt,
		UpdatedAt:           item.UpdatedAt,
		Version:             item.Version,
	}
}

// ToItemResponses converts a slice of domain items
func ToItemResponses(items []inventory.InventoryItem) []ItemResponse {
	responses := make([]ItemResponse, len(items))
	for i := range items {
		responses[i] = ToItemResponse(&items[i])
	}
	return responses
}

// ToMovementResponse converts a domain movement to its API representation
func ToMovementResponse(mv *inventory.InventoryMovement) MovementResponse {
	return MovementResponse{
		ID:              mv.ID,
		InventoryItemID: mv.InventoryItemID,
		MovementType:    string(mv.MovementType),
		Quantity:        mv.Quantity,
		BalanceBefore:   mv.BalanceBefore,
		BalanceAfter:    mv.BalanceAfter,
		ReferenceType:   string(mv.ReferenceType),
		ReferenceID:     mv.ReferenceID,
		Note:            mv.Note,
		CreatedBy:       mv.CreatedBy,
		MovementDate:    mv.MovementDate,
	}
}

// ToMovementResponses converts a slice of domain movements
func ToMovementResponses(mvs []inventory.InventoryMovement) []MovementResponse {
	responses := make([]MovementResponse, len(mvs))
	for i := range mvs {
		responses[i] = ToMovementResponse(&mvs[i])
	}
	return responses
}
