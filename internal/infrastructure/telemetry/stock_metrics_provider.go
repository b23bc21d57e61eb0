// Package telemetry provides OpenTelemetry integration for metrics collection.
package telemetry

import (
	"context"

	"gorm.io/gorm"
)

// GormStockMetricsProvider implements StockMetricsProvider using GORM.
// It queries the inventory and batch tables directly for aggregated metrics.
type GormStockMetricsProvider struct {
	db *gorm.DB
}

// NewGormStockMetricsProvider creates a new GormStockMetricsProvider.
func NewGormStockMetricsProvider(db *gorm.DB) *GormStockMetricsProvider {
	return &GormStockMetricsProvider{db: db}
}

// GetStockValueByCategory returns the total stock value per category.
func (p *GormStockMetricsProvider) GetStockValueByCategory(ctx context.Context) (map[string]float64, error) {
	type result struct {
		Category   string  `gorm:"column:category"`
		StockValue float64 `gorm:"column:stock_value"`
	}

	var results []result
	err := p.db.WithContext(ctx).
		Table("inventory").
		Select("category, COALESCE(SUM(stock_level * unit_price), 0) as stock_value").
		Group("category").
		Find(&results).Error

	if err != nil {
		return nil, err
	}

	m := make(map[string]float64, len(results))
	for _, r := range results {
		m[r.Category] = r.StockValue
	}

	return m, nil
}

// GetLowStockCount returns count of items at or below their reorder point.
func (p *GormStockMetricsProvider) GetLowStockCount(ctx context.Context) (int64, error) {
	var count int64
	err := p.db.WithContext(ctx).
		Table("inventory").
		Where("reorder_point > 0 AND stock_level <= reorder_point").
		Count(&count).Error

	return count, err
}

// GetOpenBatchCount returns count of batch records not yet finished.
func (p *GormStockMetricsProvider) GetOpenBatchCount(ctx context.Context) (int64, error) {
	var count int64
	err := p.db.WithContext(ctx).
		Table("batch_manufacturing_records").
		Where("finished_at IS NULL").
		Count(&count).Error

	return count, err
}

// Ensure GormStockMetricsProvider implements StockMetricsProvider
var _ StockMetricsProvider = (*GormStockMetricsProvider)(nil)
