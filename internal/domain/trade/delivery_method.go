package trade

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/blendworks/backend/internal/domain/shared"
)

// DeliveryMethod is a configurable shipping option with a default charge
type DeliveryMethod struct {
	shared.BaseAggregateRoot
	Name          string          `gorm:"type:varchar(100);not null;uniqueIndex:idx_delivery_method_name"`
	Description   string          `gorm:"type:text"`
	DefaultCharge decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	IsActive      bool            `gorm:"not null;default:true"`
	SortOrder     int             `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (DeliveryMethod) TableName() string {
	return "delivery_methods"
}

// NewDeliveryMethod creates a new delivery method
func NewDeliveryMethod(name string, defaultCharge decimal.Decimal) (*DeliveryMethod, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Delivery method name cannot be empty")
	}
	if defaultCharge.IsNegative() {
		return nil, shared.NewDomainError("INVALID_CHARGE", "Default charge cannot be negative")
	}

	return &DeliveryMethod{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		DefaultCharge:     defaultCharge,
		IsActive:          true,
	}, nil
}

// SetDefaultCharge updates the default delivery charge
func (m *DeliveryMethod) SetDefaultCharge(charge decimal.Decimal) error {
	if charge.IsNegative() {
		return shared.NewDomainError("INVALID_CHARGE", "Default charge cannot be negative")
	}
	m.DefaultCharge = charge
	m.touch()
	return nil
}

// Deactivate hides the method from new orders
func (m *DeliveryMethod) Deactivate() {
	m.IsActive = false
	m.touch()
}

// Activate returns the method to use
func (m *DeliveryMethod) Activate() {
	m.IsActive = true
	m.touch()
}

func (m *DeliveryMethod) touch() {
	m.UpdatedAt = time.Now()
	m.IncrementVersion()
}
