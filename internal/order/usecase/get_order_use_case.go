package usecase

import (
	"context"

	"beorn/internal/dto"
)

type GetOrderUseCase struct {
	orderRepo     OrderRepository
	orderItemRepo OrderItemRepository
}

func NewGetOrderUseCase(orderRepo OrderRepository, orderItemRepo OrderItemRepository) *GetOrderUseCase {
	return &GetOrderUseCase{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
	}
}

func (uc *GetOrderUseCase) GetOrder(ctx context.Context, orderID uint) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	items, err := uc.orderItemRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return dto.NewOrderResponse(*order, items), nil
}
