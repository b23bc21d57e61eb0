package inventory

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/blendworks/backend/internal/domain/shared"
)

// StockReceipt records one incoming delivery of a product. Saving a receipt
// drives a receive movement on the ledger in the same transaction.
type StockReceipt struct {
	shared.BaseAggregateRoot
	ProductName  string          `gorm:"type:varchar(200);not null;index"`
	SupplierID   *uuid.UUID      `gorm:"type:uuid;index"`
	Quantity     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Unit         string          `gorm:"type:varchar(20);not null;default:'unit'"`
	UnitCost     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	LotNumber    string          `gorm:"type:varchar(100)"`
	BestBefore   *time.Time      `gorm:"type:date"`
	ReceivedDate time.Time       `gorm:"type:date;not null"`
	ReceivedBy   string          `gorm:"type:varchar(100)"`
	Notes        string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (StockReceipt) TableName() string {
	return "stock_receiving"
}

// NewStockReceipt creates a new stock receipt
func NewStockReceipt(productName string, quantity decimal.Decimal, receivedDate time.Time) (*StockReceipt, error) {
	productName = strings.TrimSpace(productName)
	if productName == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Received quantity must be positive")
	}
	if receivedDate.IsZero() {
		receivedDate = time.Now()
	}

	return &StockReceipt{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ProductName:       productName,
		Quantity:          quantity,
		Unit:              "unit",
		UnitCost:          decimal.Zero,
		ReceivedDate:      receivedDate,
	}, nil
}

// SetSupplier links the receipt to a supplier
func (r *StockReceipt) SetSupplier(supplierID uuid.UUID) {
	r.SupplierID = &supplierID
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
}

// SetLot records the delivered lot number and best-before date
func (r *StockReceipt) SetLot(lotNumber string, bestBefore *time.Time) {
	r.LotNumber = lotNumber
	r.BestBefore = bestBefore
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
}

// SetUnitCost records the delivered unit cost
func (r *StockReceipt) SetUnitCost(cost decimal.Decimal) error {
	if cost.IsNegative() {
		return shared.NewDomainError("INVALID_COST", "Unit cost cannot be negative")
	}
	r.UnitCost = cost
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
	return nil
}
