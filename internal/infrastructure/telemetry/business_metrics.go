// Package telemetry provides OpenTelemetry integration for metrics collection.
package telemetry

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// BusinessMetrics provides business metrics for the back office.
// It tracks sales order activity, batch production, and stock health.
type BusinessMetrics struct {
	meter  metric.Meter
	logger *zap.Logger

	// Counter metrics (monotonically increasing)
	orderCreatedTotal   *Counter
	orderAmountTotal    *Counter
	batchStartedTotal   *Counter
	batchCompletedTotal *Counter
	wastageTotal        *Counter

	// Gauge metrics (point-in-time values)
	stockValueByCategory *FloatGauge
	lowStockCount        *Gauge
	openBatchCount       *Gauge

	// Periodic collector
	stopChan    chan struct{}
	stopOnce    sync.Once
	collectOnce sync.Once

	// Data provider for periodic collection
	stockProvider StockMetricsProvider
}

// StockMetricsProvider provides stock and production data for periodic metrics
// collection. This interface allows the telemetry layer to query inventory
// state without depending on the inventory domain directly.
type StockMetricsProvider interface {
	// GetStockValueByCategory returns the total stock value per category
	GetStockValueByCategory(ctx context.Context) (map[string]float64, error)

	// GetLowStockCount returns count of items at or below their reorder point
	GetLowStockCount(ctx context.Context) (int64, error)

	// GetOpenBatchCount returns count of batch records not yet finished
	GetOpenBatchCount(ctx context.Context) (int64, error)
}

// BusinessMetricsConfig holds configuration for business metrics.
type BusinessMetricsConfig struct {
	Meter           metric.Meter
	Logger          *zap.Logger
	CollectInterval time.Duration // Default: 5 minutes
	StockProvider   StockMetricsProvider
}

// NewBusinessMetrics creates a new BusinessMetrics instance.
func NewBusinessMetrics(cfg BusinessMetricsConfig) (*BusinessMetrics, error) {
	if cfg.Meter == nil {
		return nil, ErrMeterNil
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	bm := &BusinessMetrics{
		meter:         cfg.Meter,
		logger:        logger,
		stopChan:      make(chan struct{}),
		stockProvider: cfg.StockProvider,
	}

	// Initialize counter metrics
	var err error

	// Sales order metrics
	bm.orderCreatedTotal, err = NewCounter(
		cfg.Meter,
		"blendworks_sales_order_created_total",
		"Total number of sales orders created",
		"{orders}",
	)
	if err != nil {
		return nil, err
	}

	bm.orderAmountTotal, err = NewCounter(
		cfg.Meter,
		"blendworks_sales_order_amount_total",
		"Total sales order amount in pence",
		"{pence}",
	)
	if err != nil {
		return nil, err
	}

	// Production metrics
	bm.batchStartedTotal, err = NewCounter(
		cfg.Meter,
		"blendworks_batch_started_total",
		"Total number of manufacturing batches started",
		"{batches}",
	)
	if err != nil {
		return nil, err
	}

	bm.batchCompletedTotal, err = NewCounter(
		cfg.Meter,
		"blendworks_batch_completed_total",
		"Total number of manufacturing batches completed",
		"{batches}",
	)
	if err != nil {
		return nil, err
	}

	bm.wastageTotal, err = NewCounter(
		cfg.Meter,
		"blendworks_wastage_recorded_total",
		"Total number of wastage records logged",
		"{records}",
	)
	if err != nil {
		return nil, err
	}

	// Stock gauge metrics
	bm.stockValueByCategory, err = NewFloatGauge(
		cfg.Meter,
		"blendworks_stock_value",
		"Current stock value per category",
		"{gbp}",
	)
	if err != nil {
		return nil, err
	}

	bm.lowStockCount, err = NewGauge(
		cfg.Meter,
		"blendworks_low_stock_count",
		"Number of items at or below their reorder point",
		"{items}",
	)
	if err != nil {
		return nil, err
	}

	bm.openBatchCount, err = NewGauge(
		cfg.Meter,
		"blendworks_open_batch_count",
		"Number of manufacturing batches not yet finished",
		"{batches}",
	)
	if err != nil {
		return nil, err
	}

	return bm, nil
}

// =============================================================================
// Sales Order Metrics
// =============================================================================

// RecordOrderCreated records a sales order creation event.
// This should be called from the application layer when an order is created.
func (bm *BusinessMetrics) RecordOrderCreated(ctx context.Context, deliveryMethod string) {
	bm.orderCreatedTotal.Inc(ctx,
		AttrDeliveryMethod.String(deliveryMethod),
	)
}

// RecordOrderAmount records the order amount.
// Amount should be in the smallest currency unit (pence).
func (bm *BusinessMetrics) RecordOrderAmount(ctx context.Context, deliveryMethod string, amountPence int64) {
	bm.orderAmountTotal.Add(ctx, amountPence,
		AttrDeliveryMethod.String(deliveryMethod),
	)
}

// RecordOrderWithAmount is a convenience method that records both order count and amount.
func (bm *BusinessMetrics) RecordOrderWithAmount(ctx context.Context, deliveryMethod string, amount decimal.Decimal) {
	bm.RecordOrderCreated(ctx, deliveryMethod)

	// Convert to pence (multiply by 100)
	amountPence := amount.Mul(decimal.NewFromInt(100)).IntPart()
	bm.RecordOrderAmount(ctx, deliveryMethod, amountPence)
}

// =============================================================================
// Production Metrics
// =============================================================================

// RecordBatchStarted records the start of a manufacturing batch.
func (bm *BusinessMetrics) RecordBatchStarted(ctx context.Context, productName string) {
	bm.batchStartedTotal.Inc(ctx,
		AttrProductName.String(productName),
	)
}

// RecordBatchCompleted records the completion of a manufacturing batch.
func (bm *BusinessMetrics) RecordBatchCompleted(ctx context.Context, productName string) {
	bm.batchCompletedTotal.Inc(ctx,
		AttrProductName.String(productName),
	)
}

// RecordWastage records a wastage entry.
func (bm *BusinessMetrics) RecordWastage(ctx context.Context, reason string) {
	bm.wastageTotal.Inc(ctx,
		AttrReason.String(reason),
	)
}

// =============================================================================
// Stock Metrics
// =============================================================================

// RecordStockValue records the current stock value for a category.
// This is a gauge metric that should be updated periodically.
func (bm *BusinessMetrics) RecordStockValue(ctx context.Context, category string, value float64) {
	bm.stockValueByCategory.Record(ctx, value,
		AttrCategory.String(category),
	)
}

// RecordLowStockCount records the number of items at or below their reorder point.
// This is a gauge metric that should be updated periodically.
func (bm *BusinessMetrics) RecordLowStockCount(ctx context.Context, count int64) {
	bm.lowStockCount.Record(ctx, count)
}

// RecordOpenBatchCount records the number of unfinished manufacturing batches.
func (bm *BusinessMetrics) RecordOpenBatchCount(ctx context.Context, count int64) {
	bm.openBatchCount.Record(ctx, count)
}

// =============================================================================
// Periodic Collection
// =============================================================================

// StartPeriodicCollection starts periodic collection of gauge metrics.
// It collects stock metrics every interval (default: 5 minutes).
// This is non-blocking - use Stop() to stop collection.
func (bm *BusinessMetrics) StartPeriodicCollection(ctx context.Context, interval time.Duration) {
	bm.collectOnce.Do(func() {
		if interval <= 0 {
			interval = 5 * time.Minute
		}

		go bm.runPeriodicCollection(ctx, interval)
	})
}

// runPeriodicCollection runs the periodic collection loop.
func (bm *BusinessMetrics) runPeriodicCollection(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Collect immediately on start
	bm.collectStockMetrics(ctx)

	for {
		select {
		case <-bm.stopChan:
			bm.logger.Info("Stopping periodic business metrics collection")
			return
		case <-ctx.Done():
			bm.logger.Info("Context cancelled, stopping periodic business metrics collection")
			return
		case <-ticker.C:
			bm.collectStockMetrics(ctx)
		}
	}
}

// collectStockMetrics collects stock gauge metrics.
func (bm *BusinessMetrics) collectStockMetrics(ctx context.Context) {
	if bm.stockProvider == nil {
		bm.logger.Debug("No stock provider configured, skipping stock metrics collection")
		return
	}

	// Collect stock value by category
	valueByCategory, err := bm.stockProvider.GetStockValueByCategory(ctx)
	if err != nil {
		bm.logger.Warn("Failed to get stock value by category", zap.Error(err))
	} else {
		for category, value := range valueByCategory {
			bm.RecordStockValue(ctx, category, value)
		}
	}

	// Collect low stock count
	lowStockCount, err := bm.stockProvider.GetLowStockCount(ctx)
	if err != nil {
		bm.logger.Warn("Failed to get low stock count", zap.Error(err))
	} else {
		bm.RecordLowStockCount(ctx, lowStockCount)
	}

	// Collect open batch count
	openBatches, err := bm.stockProvider.GetOpenBatchCount(ctx)
	if err != nil {
		bm.logger.Warn("Failed to get open batch count", zap.Error(err))
	} else {
		bm.RecordOpenBatchCount(ctx, openBatches)
	}
}

// Stop stops the periodic collection.
func (bm *BusinessMetrics) Stop() {
	bm.stopOnce.Do(func() {
		close(bm.stopChan)
	})
}

// =============================================================================
// Error Types
// =============================================================================

// ErrMeterNil is returned when meter is nil.
var ErrMeterNil = &MetricsError{Op: "NewBusinessMetrics", Err: "meter cannot be nil"}

// MetricsError represents a metrics-related error.
type MetricsError struct {
	Op  string
	Err string
}

func (e *MetricsError) Error() string {
	return e.Op + ": " + e.Err
}
