package trade

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/blendworks/backend/internal/domain/shared/valueobject"
	"github.com/blendworks/backend/internal/domain/trade"
)

type serviceMocks struct {
	orderRepo  *MockSalesOrderRepository
	methodRepo *MockDeliveryMethodRepository
}

func newTestService(t *testing.T) (*SalesOrderService, *serviceMocks) {
	t.Helper()
	mocks := &serviceMocks{
		orderRepo:  new(MockSalesOrderRepository),
		methodRepo: new(MockDeliveryMethodRepository),
	}
	service := NewSalesOrderService(mocks.orderRepo, mocks.methodRepo)
	return service, mocks
}

func draftOrder(t *testing.T) *trade.SalesOrder {
	t.Helper()
	order, err := trade.NewSalesOrder("SO-2026-0101", "The Corner Cafe", time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = order.AddItem("Earl Grey 100g", "EG-100", decimal.NewFromInt(12), valueobject.NewMoneyGBPFromFloat(3.00))
	require.NoError(t, err)
	order.ClearDomainEvents()
	return order
}

func TestSalesOrderService_CreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a draft with lines and totals", func(t *testing.T) {
		service, mocks := newTestService(t)

		mocks.orderRepo.On("ExistsByOrderNumber", ctx, "SO-2026-0101").Return(false, nil)
		mocks.orderRepo.On("Save", ctx, mock.AnythingOfType("*trade.SalesOrder")).Return(nil)

		resp, err := service.CreateOrder(ctx, CreateOrderRequest{
			OrderNumber:  "SO-2026-0101",
			CustomerName: "The Corner Cafe",
			Items: []OrderItemRequest{
				{ProductName: "Earl Grey 100g", SKU: "EG-100", Quantity: decimal.NewFromInt(12), UnitPrice: decimal.RequireFromString("3.00")},
				{ProductName: "Breakfast Blend 100g", Quantity: decimal.NewFromInt(8), UnitPrice: decimal.RequireFromString("2.50")},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "draft", resp.Status)
		require.Len(t, resp.Items, 2)
		assert.Equal(t, "56.00", resp.OrderTotal.StringFixed(2))
	})

	t.Run("rejects duplicate order number", func(t *testing.T) {
		service, mocks := newTestService(t)
		mocks.orderRepo.On("ExistsByOrderNumber", ctx, "SO-2026-0101").Return(true, nil)

		_, err := service.CreateOrder(ctx, CreateOrderRequest{
			OrderNumber:  "SO-2026-0101",
			CustomerName: "The Corner Cafe",
		})

		require.Error(t, err)
		mocks.orderRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestSalesOrderService_Delivery(t *testing.T) {
	ctx := context.Background()

	t.Run("applies the method default charge", func(t *testing.T) {
		service, mocks := newTestService(t)

		order := draftOrder(t)
		method, err := trade.NewDeliveryMethod("Courier", decimal.RequireFromString("6.95"))
		require.NoError(t, err)

		mocks.methodRepo.On("FindByID", ctx, method.ID).Return(method, nil)
		mocks.orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)
		mocks.orderRepo.On("SaveWithLock", ctx, order).Return(nil)

		resp, err := service.SetDelivery(ctx, order.ID, SetDeliveryRequest{DeliveryMethodID: method.ID})

		require.NoError(t, err)
		assert.Equal(t, "6.95", resp.DeliveryCharge.StringFixed(2))
		assert.Equal(t, "42.95", resp.OrderTotal.StringFixed(2))
	})

	t.Run("an explicit charge overrides the default", func(t *testing.T) {
		service, mocks := newTestService(t)

		order := draftOrder(t)
		method, err := trade.NewDeliveryMethod("Courier", decimal.RequireFromString("6.95"))
		require.NoError(t, err)

		mocks.methodRepo.On("FindByID", ctx, method.ID).Return(method, nil)
		mocks.orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)
		mocks.orderRepo.On("SaveWithLock", ctx, order).Return(nil)

		override := decimal.RequireFromString("0.00")
		resp, err := service.SetDelivery(ctx, order.ID, SetDeliveryRequest{
			DeliveryMethodID: method.ID,
			Charge:           &override,
		})

		require.NoError(t, err)
		assert.Equal(t, "0.00", resp.DeliveryCharge.StringFixed(2))
	})
}

func TestSalesOrderService_Lifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("confirm then deliver", func(t *testing.T) {
		service, mocks := newTestService(t)

		order := draftOrder(t)
		mocks.orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)
		mocks.orderRepo.On("SaveWithLock", ctx, order).Return(nil)

		resp, err := service.ConfirmOrder(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, "confirmed", resp.Status)

		resp, err = service.MarkDelivered(ctx, order.ID, time.Date(2026, 4, 4, 10, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, "delivered", resp.Status)
		require.NotNil(t, resp.DeliveredAt)
	})

	t.Run("cannot confirm an empty order", func(t *testing.T) {
		service, mocks := newTestService(t)

		order, err := trade.NewSalesOrder("SO-2026-0102", "The Corner Cafe", time.Now())
		require.NoError(t, err)
		order.ClearDomainEvents()

		mocks.orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)

		_, err = service.ConfirmOrder(ctx, order.ID)

		require.Error(t, err)
		mocks.orderRepo.AssertNotCalled(t, "SaveWithLock", mock.Anything, mock.Anything)
	})

	t.Run("cancel records the reason", func(t *testing.T) {
		service, mocks := newTestService(t)

		order := draftOrder(t)
		mocks.orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)
		mocks.orderRepo.On("SaveWithLock", ctx, order).Return(nil)

		resp, err := service.CancelOrder(ctx, order.ID, CancelOrderRequest{Reason: "customer closed"})

		require.NoError(t, err)
		assert.Equal(t, "cancelled", resp.Status)
		assert.Equal(t, "customer closed", resp.CancelReason)
	})
}

func TestSalesOrderService_Items(t *testing.T) {
	ctx := context.Background()

	t.Run("adding and removing lines recalculates totals", func(t *testing.T) {
		service, mocks := newTestService(t)

		order := draftOrder(t)
		mocks.orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)
		mocks.orderRepo.On("SaveWithLock", ctx, order).Return(nil)

		resp, err := service.AddItem(ctx, order.ID, AddItemRequest{
			ProductName: "Breakfast Blend 100g",
			Quantity:    decimal.NewFromInt(4),
			UnitPrice:   decimal.RequireFromString("2.50"),
		})
		require.NoError(t, err)
		assert.Equal(t, "46.00", resp.OrderTotal.StringFixed(2))

		resp, err = service.RemoveItem(ctx, order.ID, resp.Items[1].ID)
		require.NoError(t, err)
		assert.Equal(t, "36.00", resp.OrderTotal.StringFixed(2))
	})
}
