package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/blendworks/backend/internal/domain/shared"
	"github.com/blendworks/backend/internal/domain/trade"
)

// GormSalesOrderRepository implements SalesOrderRepository using GORM
type GormSalesOrderRepository struct {
	db *gorm.DB
}

// NewGormSalesOrderRepository creates a new GormSalesOrderRepository
func NewGormSalesOrderRepository(db *gorm.DB) *GormSalesOrderRepository {
	return &GormSalesOrderRepository{db: db}
}

// FindByID finds an order with its lines
func (r *GormSalesOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.SalesOrder, error) {
	var order trade.SalesOrder
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	order.MarkLoaded()
	return &order, nil
}

// FindByOrderNumber finds an order by its order number
func (r *GormSalesOrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*trade.SalesOrder, error) {
	var order trade.SalesOrder
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&order, "order_number = ?", orderNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	order.MarkLoaded()
	return &order, nil
}

// FindAll finds orders matching the filter
func (r *GormSalesOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.SalesOrder, error) {
	return r.findWhere(ctx, filter, nil)
}

// FindByStatus finds orders in a given status
func (r *GormSalesOrderRepository) FindByStatus(ctx context.Context, status trade.OrderStatus, filter shared.Filter) ([]trade.SalesOrder, error) {
	return r.findWhere(ctx, filter, func(q *gorm.DB) *gorm.DB {
		return q.Where("status = ?", status)
	})
}

// FindByDateRange finds orders within a date range
func (r *GormSalesOrderRepository) FindByDateRange(ctx context.Context, start, end time.Time, filter shared.Filter) ([]trade.SalesOrder, error) {
	return r.findWhere(ctx, filter, func(q *gorm.DB) *gorm.DB {
		return q.Where("order_date >= ? AND order_date <= ?", start, end)
	})
}

func (r *GormSalesOrderRepository) findWhere(ctx context.Context, filter shared.Filter, scope func(*gorm.DB) *gorm.DB) ([]trade.SalesOrder, error) {
	var orders []trade.SalesOrder
	query := r.db.WithContext(ctx).Model(&trade.SalesOrder{}).Preload("Items")
	if scope != nil {
		query = scope(query)
	}
	query = r.applyFilters(query, filter)
	query = applyPaginationAndOrder(query, filter, SalesOrderSortFields)
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].MarkLoaded()
	}
	return orders, nil
}

// Save persists the order together with its lines
func (r *GormSalesOrderRepository) Save(ctx context.Context, order *trade.SalesOrder) error {
	if err := r.db.WithContext(ctx).Save(order).Error; err != nil {
		return err
	}
	order.MarkLoaded()
	return nil
}

// SaveWithLock saves with optimistic locking. The version check uses the
// version the row was read with, since one edit may step the in-memory
// version more than once before it is persisted. Lines are replaced in
// full so the stored rows mirror the aggregate.
func (r *GormSalesOrderRepository) SaveWithLock(ctx context.Context, order *trade.SalesOrder) error {
	result := r.db.WithContext(ctx).
		Model(order).
		Where("id = ? AND version = ?", order.ID, order.LoadedVersion()).
		Updates(map[string]interface{}{
			"order_number":       order.OrderNumber,
			"customer_name":      order.CustomerName,
			"customer_email":     order.CustomerEmail,
			"order_date":         order.OrderDate,
			"status":             order.Status,
			"delivery_method_id": order.DeliveryMethodID,
			"delivery_charge":    order.DeliveryCharge,
			"items_total":        order.ItemsTotal,
			"order_total":        order.OrderTotal,
			"notes":              order.Notes,
			"confirmed_at":       order.ConfirmedAt,
			"delivered_at":       order.DeliveredAt,
			"cancelled_at":       order.CancelledAt,
			"cancel_reason":      order.CancelReason,
			"version":            order.Version,
			"updated_at":         order.UpdatedAt,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError("OPTIMISTIC_LOCK_FAILED", "Sales order was modified by another transaction")
	}

	if err := r.db.WithContext(ctx).
		Where("order_id = ?", order.ID).
		Delete(&trade.SalesItem{}).Error; err != nil {
		return err
	}
	if len(order.Items) > 0 {
		for i := range order.Items {
			order.Items[i].OrderID = order.ID
		}
		if err := r.db.WithContext(ctx).Create(&order.Items).Error; err != nil {
			return err
		}
	}
	order.MarkLoaded()
	return nil
}

// Delete deletes an order and its lines
func (r *GormSalesOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", id).
		Delete(&trade.SalesItem{}).Error; err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&trade.SalesOrder{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts orders matching the filter
func (r *GormSalesOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilters(r.db.WithContext(ctx).Model(&trade.SalesOrder{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByOrderNumber checks whether an order number is already used
func (r *GormSalesOrderRepository) ExistsByOrderNumber(ctx context.Context, orderNumber string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&trade.SalesOrder{}).
		Where("order_number = ?", orderNumber).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormSalesOrderRepository) applyFilters(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("order_number ILIKE ? OR customer_name ILIKE ?",
			"%"+filter.Search+"%", "%"+filter.Search+"%")
	}
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "customer_name":
			query = query.Where("LOWER(customer_name) = LOWER(?)", value)
		}
	}
	return query
}

// Ensure GormSalesOrderRepository implements SalesOrderRepository
var _ trade.SalesOrderRepository = (*GormSalesOrderRepository)(nil)

// GormDeliveryMethodRepository implements DeliveryMethodRepository using GORM
type GormDeliveryMethodRepository struct {
	db *gorm.DB
}

// NewGormDeliveryMethodRepository creates a new GormDeliveryMethodRepository
func NewGormDeliveryMethodRepository(db *gorm.DB) *GormDeliveryMethodRepository {
	return &GormDeliveryMethodRepository{db: db}
}

// FindByID finds a delivery method by its ID
func (r *GormDeliveryMethodRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.DeliveryMethod, error) {
	var method trade.DeliveryMethod
	if err := r.db.WithContext(ctx).First(&method, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	method.MarkLoaded()
	return &method, nil
}

// FindByName finds a delivery method by name
func (r *GormDeliveryMethodRepository) FindByName(ctx context.Context, name string) (*trade.DeliveryMethod, error) {
	var method trade.DeliveryMethod
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		First(&method).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	method.MarkLoaded()
	return &method, nil
}

// FindAll finds delivery methods matching the filter
func (r *GormDeliveryMethodRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.DeliveryMethod, error) {
	var methods []trade.DeliveryMethod
	query := r.db.WithContext(ctx).Model(&trade.DeliveryMethod{})
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	if active, ok := filter.Filters["is_active"]; ok {
		query = query.Where("is_active = ?", active)
	}
	query = applyPaginationAndOrder(query, filter, CommonSortFields)
	if err := query.Find(&methods).Error; err != nil {
		return nil, err
	}
	for i := range methods {
		methods[i].MarkLoaded()
	}
	return methods, nil
}

// FindActive finds active delivery methods in display order
func (r *GormDeliveryMethodRepository) FindActive(ctx context.Context) ([]trade.DeliveryMethod, error) {
	var methods []trade.DeliveryMethod
	if err := r.db.WithContext(ctx).
		Where("is_active = true").
		Order("sort_order ASC, name ASC").
		Find(&methods).Error; err != nil {
		return nil, err
	}
	for i := range methods {
		methods[i].MarkLoaded()
	}
	return methods, nil
}

// Save creates or updates a delivery method
func (r *GormDeliveryMethodRepository) Save(ctx context.Context, method *trade.DeliveryMethod) error {
	if err := r.db.WithContext(ctx).Save(method).Error; err != nil {
		return err
	}
	method.MarkLoaded()
	return nil
}

// Delete deletes a delivery method
func (r *GormDeliveryMethodRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&trade.DeliveryMethod{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts delivery methods matching the filter
func (r *GormDeliveryMethodRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&trade.DeliveryMethod{})
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	if active, ok := filter.Filters["is_active"]; ok {
		query = query.Where("is_active = ?", active)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormDeliveryMethodRepository implements DeliveryMethodRepository
var _ trade.DeliveryMethodRepository = (*GormDeliveryMethodRepository)(nil)
