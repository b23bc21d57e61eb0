package inventory

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/blendworks/backend/internal/domain/shared"
)

// WastageRecord captures stock discarded for a given reason. Saving it
// drives a floored wastage deduction on the ledger in the same transaction.
type WastageRecord struct {
	shared.BaseAggregateRoot
	ProductName string          `gorm:"type:varchar(200);not null;index"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Unit        string          `gorm:"type:varchar(20);not null;default:'unit'"`
	Reason      string          `gorm:"type:varchar(255);not null"`
	WastageDate time.Time       `gorm:"type:date;not null"`
	RecordedBy  string          `gorm:"type:varchar(100)"`
	Notes       string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (WastageRecord) TableName() string {
	return "wastage"
}

// NewWastageRecord creates a new wastage record
func NewWastageRecord(productName string, quantity decimal.Decimal, reason string, wastageDate time.Time) (*WastageRecord, error) {
	productName = strings.TrimSpace(productName)
	if productName == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Wastage quantity must be positive")
	}
	if strings.TrimSpace(reason) == "" {
		return nil, shared.NewDomainError("INVALID_REASON", "Wastage reason is required")
	}
	if wastageDate.IsZero() {
		wastageDate = time.Now()
	}

	return &WastageRecord{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ProductName:       productName,
		Quantity:          quantity,
		Unit:              "unit",
		Reason:            reason,
		WastageDate:       wastageDate,
	}, nil
}
