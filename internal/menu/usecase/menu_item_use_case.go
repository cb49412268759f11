package usecase

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"beorn/internal/domain"
	"beorn/internal/dto"
	apperrors "beorn/internal/errors"
)

const topMenuItemsLimit = 5

type MenuItemRepository interface {
	FindByID(ctx context.Context, id int) (*domain.MenuItem, error)
	Update(ctx context.Context, id int, price *decimal.Decimal, isAvailable *bool) error
	TopOrdered(ctx context.Context, limit int) ([]domain.TopMenuItem, error)
}

type MenuItemUseCase struct {
	menuItemRepo MenuItemRepository
	logger       *zap.Logger
}

func NewMenuItemUseCase(menuItemRepo MenuItemRepository, logger *zap.Logger) *MenuItemUseCase {
	return &MenuItemUseCase{
		menuItemRepo: menuItemRepo,
		logger:       logger,
	}
}

// UpdateMenuItem mutates price and/or availability of an existing item. At
// least one field must be provided; a negative price is rejected.
func (uc *MenuItemUseCase) UpdateMenuItem(ctx context.Context, id int, req dto.UpdateMenuItemRequest) (*dto.MenuItemResponse, error) {
	if req.Price == nil && req.IsAvailable == nil {
		return nil, apperrors.NewValidationError("no fields to update provided", apperrors.ValidationDetail{
			Field:   "body",
			Message: "at least one of price or isAvailable is required",
		})
	}

	if req.Price != nil && req.Price.IsNegative() {
		return nil, apperrors.NewValidationError("invalid price", apperrors.ValidationDetail{
			Field:   "price",
			Message: "price must be non-negative",
		})
	}

	if _, err := uc.menuItemRepo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	if err := uc.menuItemRepo.Update(ctx, id, req.Price, req.IsAvailable); err != nil {
		return nil, err
	}

	uc.logger.Info("menu item updated",
		zap.Int("menuItemId", id),
		zap.Bool("priceChanged", req.Price != nil),
		zap.Bool("availabilityChanged", req.IsAvailable != nil),
	)

	item, err := uc.menuItemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return dto.NewMenuItemResponse(*item), nil
}

func (uc *MenuItemUseCase) TopItems(ctx context.Context) ([]dto.TopMenuItemResponse, error) {
	top, err := uc.menuItemRepo.TopOrdered(ctx, topMenuItemsLimit)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.TopMenuItemResponse, len(top))
	for i, t := range top {
		responses[i] = dto.TopMenuItemResponse{
			ID:           t.ID,
			Name:         t.Name,
			Price:        t.Price.StringFixed(2),
			Restaurant:   t.Restaurant,
			TotalOrdered: t.TotalOrdered,
		}
	}

	return responses, nil
}
