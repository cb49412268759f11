package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"beorn/internal/dto"
	apperrors "beorn/internal/errors"
)

type CustomerUseCase interface {
	Register(ctx context.Context, req dto.RegisterCustomerRequest) (*dto.CustomerResponse, error)
	GetCustomer(ctx context.Context, id int) (*dto.CustomerResponse, error)
	Orders(ctx context.Context, customerID int) ([]dto.OrderResponse, error)
	TopCustomers(ctx context.Context) ([]dto.TopCustomerResponse, error)
}

type CustomerController struct {
	useCase CustomerUseCase
	logger  *zap.Logger
}

func NewCustomerController(useCase CustomerUseCase, logger *zap.Logger) *CustomerController {
	return &CustomerController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *CustomerController) Register(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.RegisterCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	resp, err := c.useCase.Register(r.Context(), req)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, resp)
}

func (c *CustomerController) GetCustomer(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id, ok := c.parseCustomerID(w, r, logger)
	if !ok {
		return
	}

	resp, err := c.useCase.GetCustomer(r.Context(), id)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *CustomerController) Orders(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id, ok := c.parseCustomerID(w, r, logger)
	if !ok {
		return
	}

	resp, err := c.useCase.Orders(r.Context(), id)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *CustomerController) TopCustomers(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	resp, err := c.useCase.TopCustomers(r.Context())
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *CustomerController) parseCustomerID(w http.ResponseWriter, r *http.Request, logger *zap.Logger) (int, bool) {
	idStr := chi.URLParam(r, "customerId")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		logger.Warn("invalid customerId in path", zap.String("customerId", idStr))
		c.writeValidationError(w, "invalid customerId", apperrors.ValidationDetail{
			Field:   "customerId",
			Message: "customerId must be a positive integer",
		})
		return 0, false
	}
	return id, true
}

func (c *CustomerController) handleError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, errorResponse{
			Error:   "NOT_FOUND",
			Message: nfe.Message,
		})
		return
	}

	if ce, ok := apperrors.IsConflictError(err); ok {
		c.writeJSON(w, http.StatusConflict, errorResponse{
			Error:   "CONFLICT",
			Message: ce.Message,
		})
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, errorResponse{
		Error:   "INTERNAL_ERROR",
		Message: "an unexpected error occurred",
	})
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *CustomerController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *CustomerController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
