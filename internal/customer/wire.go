package customer

import (
	"database/sql"

	"go.uber.org/zap"

	"beorn/internal/customer/controller"
	customerrepo "beorn/internal/customer/repository"
	"beorn/internal/customer/usecase"
	orderrepo "beorn/internal/order/repository"
)

func NewModule(db *sql.DB, logger *zap.Logger) *controller.CustomerController {
	customerRepo := customerrepo.NewMySQLCustomerRepository(db)
	orderRepo := orderrepo.NewMySQLOrderRepository(db)
	orderItemRepo := orderrepo.NewMySQLOrderItemRepository(db)

	uc := usecase.NewCustomerUseCase(customerRepo, orderRepo, orderItemRepo, logger)

	return controller.NewCustomerController(uc, logger)
}
