package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beorn/internal/domain"
	apperrors "beorn/internal/errors"
)

func TestGetOrder_Success(t *testing.T) {
	orderRepo := &mockOrderRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Order, error) {
			return &domain.Order{
				ID:           id,
				CustomerID:   1,
				RestaurantID: 10,
				TotalPrice:   decimal.RequireFromString("17.00"),
				Status:       domain.OrderStatusPlaced,
				CreatedAt:    time.Now(),
			}, nil
		},
	}
	itemRepo := &mockOrderItemRepository{
		FindByOrderIDFunc: func(ctx context.Context, orderID uint) ([]domain.OrderItem, error) {
			return []domain.OrderItem{
				{ID: 1, OrderID: orderID, MenuItemID: 5, Quantity: 2, UnitPrice: decimal.RequireFromString("8.50")},
			}, nil
		},
	}
	uc := NewGetOrderUseCase(orderRepo, itemRepo)

	resp, err := uc.GetOrder(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, uint(42), resp.ID)
	assert.Equal(t, "17.00", resp.TotalPrice)
	assert.Equal(t, "Placed", resp.Status)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "8.50", resp.Items[0].UnitPrice)
	assert.Equal(t, 2, resp.Items[0].Quantity)
}

func TestGetOrder_NotFound(t *testing.T) {
	orderRepo := &mockOrderRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Order, error) {
			return nil, apperrors.NewNotFoundError("order with id 99 not found")
		},
	}
	uc := NewGetOrderUseCase(orderRepo, &mockOrderItemRepository{})

	resp, err := uc.GetOrder(context.Background(), 99)

	assert.Nil(t, resp)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}
