package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"beorn/internal/domain"
	"beorn/internal/dto"
	apperrors "beorn/internal/errors"
)

// OrderStatusUseCase governs status transitions on existing orders. The
// transition table lives on domain.OrderStatus: terminal states are frozen,
// backward moves are rejected, forward skips are allowed, and Cancelled is
// reachable from any non-terminal state.
type OrderStatusUseCase struct {
	orderRepo     OrderRepository
	orderItemRepo OrderItemRepository
	logger        *zap.Logger
}

func NewOrderStatusUseCase(
	orderRepo OrderRepository,
	orderItemRepo OrderItemRepository,
	logger *zap.Logger,
) *OrderStatusUseCase {
	return &OrderStatusUseCase{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		logger:        logger,
	}
}

func (uc *OrderStatusUseCase) SetStatus(ctx context.Context, orderID uint, status string) (*dto.OrderResponse, error) {
	newStatus, ok := domain.ParseOrderStatus(status)
	if !ok {
		return nil, apperrors.NewInvalidStatusError(status)
	}

	order, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(newStatus) {
		return nil, apperrors.NewConflictError(
			fmt.Sprintf("cannot transition order from %s to %s", order.Status, newStatus),
		)
	}

	// Compare-and-set against the status we checked; a concurrent
	// transition surfaces as a conflict instead of silently winning.
	if err := uc.orderRepo.UpdateStatus(ctx, orderID, order.Status, newStatus); err != nil {
		return nil, err
	}

	uc.logger.Info("order status updated",
		zap.Uint("orderId", orderID),
		zap.String("from", string(order.Status)),
		zap.String("to", string(newStatus)),
	)

	updated, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	items, err := uc.orderItemRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return dto.NewOrderResponse(*updated, items), nil
}
