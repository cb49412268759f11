package menu

import (
	"database/sql"

	"go.uber.org/zap"

	"beorn/internal/menu/controller"
	menurepo "beorn/internal/menu/repository"
	"beorn/internal/menu/usecase"
)

func NewModule(db *sql.DB, logger *zap.Logger) *controller.MenuController {
	menuItemRepo := menurepo.NewMySQLMenuItemRepository(db)

	uc := usecase.NewMenuItemUseCase(menuItemRepo, logger)

	return controller.NewMenuController(uc, logger)
}
