package order

import (
	"database/sql"

	"go.uber.org/zap"

	"beorn/internal/config"
	customerrepo "beorn/internal/customer/repository"
	menurepo "beorn/internal/menu/repository"
	"beorn/internal/order/controller"
	orderrepo "beorn/internal/order/repository"
	"beorn/internal/order/service"
	"beorn/internal/order/usecase"
	restaurantrepo "beorn/internal/restaurant/repository"
)

func NewModule(db *sql.DB, cfg *config.Config, logger *zap.Logger) *controller.OrderController {
	orderRepo := orderrepo.NewMySQLOrderRepository(db)
	orderItemRepo := orderrepo.NewMySQLOrderItemRepository(db)
	customerRepo := customerrepo.NewMySQLCustomerRepository(db)
	restaurantRepo := restaurantrepo.NewMySQLRestaurantRepository(db)
	menuItemRepo := menurepo.NewMySQLMenuItemRepository(db)

	pricingSvc := service.NewPricingService(menuItemRepo, logger)

	placeOrderUC := usecase.NewPlaceOrderUseCase(
		db,
		customerRepo,
		restaurantRepo,
		pricingSvc,
		orderRepo,
		orderItemRepo,
		logger,
		cfg.Order.TxTimeout,
	)
	getOrderUC := usecase.NewGetOrderUseCase(orderRepo, orderItemRepo)
	statusUC := usecase.NewOrderStatusUseCase(orderRepo, orderItemRepo, logger)

	return controller.NewOrderController(placeOrderUC, getOrderUC, statusUC, logger)
}
