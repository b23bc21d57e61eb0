package inventory

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/blendworks/backend/internal/domain/inventory"
	"github.com/blendworks/backend/internal/domain/shared"
)

// ReorderAlertHandler reacts to StockBelowReorderPoint events by logging a
// warning and, when a notifier is configured, sending a restock alert.
type ReorderAlertHandler struct {
	logger   *zap.Logger
	notifier ReorderNotifier
}

// ReorderNotifier is the interface for sending restock alerts.
// Implementations can support different channels (in-app, email, etc.)
type ReorderNotifier interface {
	// SendAlert sends a restock alert notification
	SendAlert(ctx context.Context, alert ReorderAlert) error
}

// ReorderAlert describes an item that has fallen under its reorder point
type ReorderAlert struct {
	InventoryItemID string `json:"inventory_item_id"`
	ProductName     string `json:"product_name"`
	SKU             string `json:"sku"`
	StockLevel      string `json:"stock_level"`
	ReorderPoint    string `json:"reorder_point"`
}

// NewReorderAlertHandler creates a new handler for reorder point events
func NewReorderAlertHandler(logger *zap.Logger) *ReorderAlertHandler {
	return &ReorderAlertHandler{logger: logger}
}

// WithNotifier sets the notifier for sending alerts
func (h *ReorderAlertHandler) WithNotifier(notifier ReorderNotifier) *ReorderAlertHandler {
	h.notifier = notifier
	return h
}

// EventTypes returns the event types this handler is interested in
func (h *ReorderAlertHandler) EventTypes() []string {
	return []string{inventory.EventTypeStockBelowReorderPoint}
}

// Handle processes a StockBelowReorderPointEvent
func (h *ReorderAlertHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	reorderEvent, ok := event.(*inventory.StockBelowReorderPointEvent)
	if !ok {
		h.logger.Error("unexpected event type",
			zap.String("expected", inventory.EventTypeStockBelowReorderPoint),
			zap.String("actual", event.EventType()),
		)
		return fmt.Errorf("unexpected event type: expected %s, got %s",
			inventory.EventTypeStockBelowReorderPoint, event.EventType())
	}

	h.logger.Warn("stock below reorder point",
		zap.String("inventory_item_id", reorderEvent.InventoryItemID.String()),
		zap.String("product_name", reorderEvent.ProductName),
		zap.String("stock_level", reorderEvent.StockLevel.String()),
		zap.String("reorder_point", reorderEvent.ReorderPoint.String()),
	)

	if h.notifier == nil {
		return nil
	}

	alert := ReorderAlert{
		InventoryItemID: reorderEvent.InventoryItemID.String(),
		ProductName:     reorderEvent.ProductName,
		SKU:             reorderEvent.SKU,
		StockLevel:      reorderEvent.StockLevel.String(),
		ReorderPoint:    reorderEvent.ReorderPoint.String(),
	}
	if err := h.notifier.SendAlert(ctx, alert); err != nil {
		h.logger.Error("failed to send reorder alert",
			zap.String("product_name", alert.ProductName),
			zap.Error(err),
		)
		return err
	}

	return nil
}

var _ shared.EventHandler = (*ReorderAlertHandler)(nil)
