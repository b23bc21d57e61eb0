package trade

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/blendworks/backend/internal/domain/shared"
)

// SalesOrderRepository defines the interface for sales order persistence
type SalesOrderRepository interface {
	// FindByID finds an order by its ID, including its lines
	FindByID(ctx context.Context, id uuid.UUID) (*SalesOrder, error)

	// FindByOrderNumber finds an order by its (unique) order number
	FindByOrderNumber(ctx context.Context, orderNumber string) (*SalesOrder, error)

	// FindAll finds orders matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]SalesOrder, error)

	// FindByStatus finds orders in a given status
	FindByStatus(ctx context.Context, status OrderStatus, filter shared.Filter) ([]SalesOrder, error)

	// FindByDateRange finds orders within a date range
	FindByDateRange(ctx context.Context, start, end time.Time, filter shared.Filter) ([]SalesOrder, error)

	// Save creates or updates an order together with its lines
	Save(ctx context.Context, order *SalesOrder) error

	// SaveWithLock saves with optimistic locking (checks version)
	SaveWithLock(ctx context.Context, order *SalesOrder) error

	// Delete deletes an order and its lines
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts orders matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// ExistsByOrderNumber checks whether an order number is already used
	ExistsByOrderNumber(ctx context.Context, orderNumber string) (bool, error)
}

// DeliveryMethodRepository defines the interface for delivery methods
type DeliveryMethodRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*DeliveryMethod, error)
	FindByName(ctx context.Context, name string) (*DeliveryMethod, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]DeliveryMethod, error)
	FindActive(ctx context.Context) ([]DeliveryMethod, error)
	Save(ctx context.Context, method *DeliveryMethod) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
