package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"beorn/internal/domain"
	"beorn/internal/dto"
	apperrors "beorn/internal/errors"
)

// topCustomersLimit matches the reporting endpoint's fixed page size.
const topCustomersLimit = 5

type CustomerRepository interface {
	FindByID(ctx context.Context, id int) (*domain.Customer, error)
	Insert(ctx context.Context, customer domain.Customer) (int, error)
	TopByOrderCount(ctx context.Context, limit int) ([]domain.TopCustomer, error)
}

type OrderRepository interface {
	FindByCustomer(ctx context.Context, customerID int) ([]domain.Order, error)
}

type OrderItemRepository interface {
	FindByOrderID(ctx context.Context, orderID uint) ([]domain.OrderItem, error)
}

type CustomerUseCase struct {
	customerRepo  CustomerRepository
	orderRepo     OrderRepository
	orderItemRepo OrderItemRepository
	logger        *zap.Logger
}

func NewCustomerUseCase(
	customerRepo CustomerRepository,
	orderRepo OrderRepository,
	orderItemRepo OrderItemRepository,
	logger *zap.Logger,
) *CustomerUseCase {
	return &CustomerUseCase{
		customerRepo:  customerRepo,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		logger:        logger,
	}
}

func (uc *CustomerUseCase) Register(ctx context.Context, req dto.RegisterCustomerRequest) (*dto.CustomerResponse, error) {
	if err := validateRegisterRequest(req); err != nil {
		return nil, err
	}

	id, err := uc.customerRepo.Insert(ctx, domain.Customer{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("customer registered", zap.Int("customerId", id))

	customer, err := uc.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return dto.NewCustomerResponse(*customer), nil
}

func (uc *CustomerUseCase) GetCustomer(ctx context.Context, id int) (*dto.CustomerResponse, error) {
	customer, err := uc.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return dto.NewCustomerResponse(*customer), nil
}

// Orders returns the customer's order history, newest first, each order with
// its full line set.
func (uc *CustomerUseCase) Orders(ctx context.Context, customerID int) ([]dto.OrderResponse, error) {
	if _, err := uc.customerRepo.FindByID(ctx, customerID); err != nil {
		return nil, err
	}

	orders, err := uc.orderRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		items, err := uc.orderItemRepo.FindByOrderID(ctx, order.ID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *dto.NewOrderResponse(order, items))
	}

	return responses, nil
}

func (uc *CustomerUseCase) TopCustomers(ctx context.Context) ([]dto.TopCustomerResponse, error) {
	top, err := uc.customerRepo.TopByOrderCount(ctx, topCustomersLimit)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.TopCustomerResponse, len(top))
	for i, t := range top {
		responses[i] = dto.TopCustomerResponse{
			ID:         t.ID,
			Name:       t.Name,
			Email:      t.Email,
			OrderCount: t.OrderCount,
		}
	}

	return responses, nil
}

func validateRegisterRequest(req dto.RegisterCustomerRequest) error {
	var details []apperrors.ValidationDetail

	required := []struct {
		field string
		value string
	}{
		{"name", req.Name},
		{"email", req.Email},
		{"phoneNumber", req.PhoneNumber},
		{"address", req.Address},
	}

	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			details = append(details, apperrors.ValidationDetail{
				Field:   f.field,
				Message: f.field + " is required",
			})
		}
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("missing required fields", details...)
	}

	return nil
}
