package restaurant

import (
	"database/sql"

	"go.uber.org/zap"

	menurepo "beorn/internal/menu/repository"
	"beorn/internal/restaurant/controller"
	restaurantrepo "beorn/internal/restaurant/repository"
	"beorn/internal/restaurant/usecase"
)

func NewModule(db *sql.DB, logger *zap.Logger) *controller.RestaurantController {
	restaurantRepo := restaurantrepo.NewMySQLRestaurantRepository(db)
	menuItemRepo := menurepo.NewMySQLMenuItemRepository(db)

	uc := usecase.NewRestaurantUseCase(restaurantRepo, menuItemRepo, logger)

	return controller.NewRestaurantController(uc, logger)
}
