package usecase

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"beorn/internal/domain"
	"beorn/internal/dto"
	apperrors "beorn/internal/errors"
)

type TransactionManager interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type CustomerRepository interface {
	FindByID(ctx context.Context, id int) (*domain.Customer, error)
}

type RestaurantRepository interface {
	FindByID(ctx context.Context, id int) (*domain.Restaurant, error)
}

type PricingService interface {
	ResolvePrices(ctx context.Context, restaurantID int, items []dto.OrderLineRequest) (*dto.PriceQuote, error)
}

type OrderRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, order domain.Order) (uint, error)
	FindByID(ctx context.Context, id uint) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id uint, from, to domain.OrderStatus) error
}

type OrderItemRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, item domain.OrderItem) (uint, error)
	FindByOrderID(ctx context.Context, orderID uint) ([]domain.OrderItem, error)
}

// PlaceOrderUseCase assembles an order: it validates the request, checks that
// the customer and restaurant exist, resolves prices, and persists the order
// with all its lines in one transaction.
type PlaceOrderUseCase struct {
	db             TransactionManager
	customerRepo   CustomerRepository
	restaurantRepo RestaurantRepository
	pricingSvc     PricingService
	orderRepo      OrderRepository
	orderItemRepo  OrderItemRepository
	logger         *zap.Logger
	txTimeout      time.Duration
}

func NewPlaceOrderUseCase(
	db TransactionManager,
	customerRepo CustomerRepository,
	restaurantRepo RestaurantRepository,
	pricingSvc PricingService,
	orderRepo OrderRepository,
	orderItemRepo OrderItemRepository,
	logger *zap.Logger,
	txTimeout time.Duration,
) *PlaceOrderUseCase {
	return &PlaceOrderUseCase{
		db:             db,
		customerRepo:   customerRepo,
		restaurantRepo: restaurantRepo,
		pricingSvc:     pricingSvc,
		orderRepo:      orderRepo,
		orderItemRepo:  orderItemRepo,
		logger:         logger,
		txTimeout:      txTimeout,
	}
}

func (uc *PlaceOrderUseCase) PlaceOrder(ctx context.Context, req dto.PlaceOrderRequest) (*dto.OrderResponse, error) {
	// Input validation happens before any store access.
	if err := validatePlaceOrderRequest(req); err != nil {
		return nil, err
	}

	uc.logger.Info("place-order started",
		zap.Int("customerId", req.CustomerID),
		zap.Int("restaurantId", req.RestaurantID),
		zap.Int("itemCount", len(req.Items)),
	)

	// The two existence checks are independent, so they run concurrently.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := uc.customerRepo.FindByID(gctx, req.CustomerID)
		return err
	})
	g.Go(func() error {
		_, err := uc.restaurantRepo.FindByID(gctx, req.RestaurantID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	quote, err := uc.pricingSvc.ResolvePrices(ctx, req.RestaurantID, req.Items)
	if err != nil {
		return nil, err
	}

	uc.logger.Debug("prices resolved",
		zap.Int("restaurantId", req.RestaurantID),
		zap.String("total", quote.Total.String()),
	)

	orderID, err := uc.persistOrder(ctx, req, quote)
	if err != nil {
		return nil, err
	}

	// Re-read the committed rows so ids and timestamp are authoritative.
	order, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	items, err := uc.orderItemRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("order placed",
		zap.Uint("orderId", orderID),
		zap.String("totalPrice", order.TotalPrice.StringFixed(2)),
		zap.Int("itemCount", len(items)),
	)

	return dto.NewOrderResponse(*order, items), nil
}

// persistOrder writes the order and all its lines as one atomic unit. Either
// every row commits or none does; a reader never observes an order without
// its full line set.
func (uc *PlaceOrderUseCase) persistOrder(ctx context.Context, req dto.PlaceOrderRequest, quote *dto.PriceQuote) (uint, error) {
	txCtx, cancel := context.WithTimeout(ctx, uc.txTimeout)
	defer cancel()

	tx, err := uc.db.BeginTx(txCtx, nil)
	if err != nil {
		uc.logger.Error("failed to begin transaction", zap.Error(err))
		return 0, apperrors.NewInternalError("failed to begin transaction", err)
	}
	// Rollback is a no-op once the transaction has committed.
	defer tx.Rollback()

	orderID, err := uc.orderRepo.Insert(txCtx, tx, domain.Order{
		CustomerID:   req.CustomerID,
		RestaurantID: req.RestaurantID,
		TotalPrice:   quote.Total,
		Status:       domain.OrderStatusPlaced,
	})
	if err != nil {
		uc.logger.Error("failed to insert order", zap.Error(err))
		return 0, apperrors.NewInternalError("failed to create order", err)
	}

	for _, line := range req.Items {
		_, err := uc.orderItemRepo.Insert(txCtx, tx, domain.OrderItem{
			OrderID:    orderID,
			MenuItemID: line.MenuItemID,
			Quantity:   line.Quantity,
			UnitPrice:  quote.UnitPrices[line.MenuItemID],
		})
		if err != nil {
			uc.logger.Error("failed to insert order item",
				zap.Uint("orderId", orderID),
				zap.Int("menuItemId", line.MenuItemID),
				zap.Error(err),
			)
			return 0, apperrors.NewInternalError("failed to create order items", err)
		}
	}

	if err := tx.Commit(); err != nil {
		uc.logger.Error("failed to commit transaction", zap.Uint("orderId", orderID), zap.Error(err))
		return 0, apperrors.NewInternalError("failed to commit order", err)
	}

	return orderID, nil
}

func validatePlaceOrderRequest(req dto.PlaceOrderRequest) error {
	var details []apperrors.ValidationDetail

	if req.CustomerID <= 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "customerId",
			Message: "customerId is required and must be a positive integer",
		})
	}

	if req.RestaurantID <= 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "restaurantId",
			Message: "restaurantId is required and must be a positive integer",
		})
	}

	if len(req.Items) == 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "items",
			Message: "items must not be empty",
		})
	}

	for idx, line := range req.Items {
		if line.MenuItemID <= 0 {
			details = append(details, apperrors.ValidationDetail{
				Field:   "items[" + strconv.Itoa(idx) + "].menuItemId",
				Message: "menuItemId must be a positive integer",
			})
		}
		if line.Quantity < 1 {
			details = append(details, apperrors.ValidationDetail{
				Field:   "items[" + strconv.Itoa(idx) + "].quantity",
				Message: "quantity must be at least 1",
			})
		}
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("missing required fields", details...)
	}

	return nil
}
