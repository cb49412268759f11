package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"beorn/internal/domain"
	"beorn/internal/dto"
	apperrors "beorn/internal/errors"
)

type RestaurantRepository interface {
	FindByID(ctx context.Context, id int) (*domain.Restaurant, error)
	Insert(ctx context.Context, restaurant domain.Restaurant) (int, error)
}

type MenuItemRepository interface {
	FindByRestaurant(ctx context.Context, restaurantID int) ([]domain.MenuItem, error)
}

type RestaurantUseCase struct {
	restaurantRepo RestaurantRepository
	menuItemRepo   MenuItemRepository
	logger         *zap.Logger
}

func NewRestaurantUseCase(
	restaurantRepo RestaurantRepository,
	menuItemRepo MenuItemRepository,
	logger *zap.Logger,
) *RestaurantUseCase {
	return &RestaurantUseCase{
		restaurantRepo: restaurantRepo,
		menuItemRepo:   menuItemRepo,
		logger:         logger,
	}
}

func (uc *RestaurantUseCase) Create(ctx context.Context, req dto.CreateRestaurantRequest) (*dto.RestaurantResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewValidationError("missing required fields", apperrors.ValidationDetail{
			Field:   "name",
			Message: "name is required",
		})
	}

	id, err := uc.restaurantRepo.Insert(ctx, domain.Restaurant{Name: req.Name})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("restaurant created", zap.Int("restaurantId", id))

	restaurant, err := uc.restaurantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return dto.NewRestaurantResponse(*restaurant), nil
}

func (uc *RestaurantUseCase) GetRestaurant(ctx context.Context, id int) (*dto.RestaurantResponse, error) {
	restaurant, err := uc.restaurantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return dto.NewRestaurantResponse(*restaurant), nil
}

// Menu lists the restaurant's menu items, available or not.
func (uc *RestaurantUseCase) Menu(ctx context.Context, restaurantID int) ([]dto.MenuItemResponse, error) {
	if _, err := uc.restaurantRepo.FindByID(ctx, restaurantID); err != nil {
		return nil, err
	}

	items, err := uc.menuItemRepo.FindByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.MenuItemResponse, len(items))
	for i, item := range items {
		responses[i] = *dto.NewMenuItemResponse(item)
	}

	return responses, nil
}
