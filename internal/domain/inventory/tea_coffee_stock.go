package inventory

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/blendworks/backend/internal/domain/shared"
)

// BlendKind distinguishes tea and coffee loose stock lines
type BlendKind string

const (
	BlendKindTea    BlendKind = "tea"
	BlendKindCoffee BlendKind = "coffee"
)

// IsValid returns true if the blend kind is valid
func (k BlendKind) IsValid() bool {
	return k == BlendKindTea || k == BlendKindCoffee
}

// TeaCoffeeStock tracks loose blended stock by weight, kept separately from
// the bagged finished-goods ledger so open blends can be weighed in and out.
type TeaCoffeeStock struct {
	shared.BaseAggregateRoot
	BlendName    string          `gorm:"type:varchar(200);not null;uniqueIndex:idx_tea_coffee_blend"`
	Kind         BlendKind       `gorm:"type:varchar(10);not null;uniqueIndex:idx_tea_coffee_blend"`
	WeightGrams  decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	LastWeighed  *time.Time      `gorm:"type:timestamptz"`
	LastWeighedBy string         `gorm:"type:varchar(100)"`
}

// TableName returns the table name for GORM
func (TeaCoffeeStock) TableName() string {
	return "stock_tea_coffee"
}

// NewTeaCoffeeStock creates a loose-stock line for a blend
func NewTeaCoffeeStock(blendName string, kind BlendKind) (*TeaCoffeeStock, error) {
	blendName = strings.TrimSpace(blendName)
	if blendName == "" {
		return nil, shared.NewDomainError("INVALID_BLEND_NAME", "Blend name cannot be empty")
	}
	if !kind.IsValid() {
		return nil, shared.NewDomainError("INVALID_BLEND_KIND", "Blend kind must be tea or coffee")
	}

	return &TeaCoffeeStock{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		BlendName:         blendName,
		Kind:              kind,
		WeightGrams:       decimal.Zero,
	}, nil
}

// RecordWeight sets the weighed amount for the blend
func (s *TeaCoffeeStock) RecordWeight(grams decimal.Decimal, weighedBy string) error {
	if grams.IsNegative() {
		return shared.NewDomainError("INVALID_WEIGHT", "Weight cannot be negative")
	}
	now := time.Now()
	s.WeightGrams = grams
	s.LastWeighed = &now
	s.LastWeighedBy = weighedBy
	s.UpdatedAt = now
	s.IncrementVersion()
	return nil
}
