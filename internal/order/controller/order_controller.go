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

type PlaceOrderUseCase interface {
	PlaceOrder(ctx context.Context, req dto.PlaceOrderRequest) (*dto.OrderResponse, error)
}

type GetOrderUseCase interface {
	GetOrder(ctx context.Context, orderID uint) (*dto.OrderResponse, error)
}

type OrderStatusUseCase interface {
	SetStatus(ctx context.Context, orderID uint, status string) (*dto.OrderResponse, error)
}

type OrderController struct {
	placeOrder  PlaceOrderUseCase
	getOrder    GetOrderUseCase
	orderStatus OrderStatusUseCase
	logger      *zap.Logger
}

func NewOrderController(
	placeOrder PlaceOrderUseCase,
	getOrder GetOrderUseCase,
	orderStatus OrderStatusUseCase,
	logger *zap.Logger,
) *OrderController {
	return &OrderController{
		placeOrder:  placeOrder,
		getOrder:    getOrder,
		orderStatus: orderStatus,
		logger:      logger,
	}
}

func (c *OrderController) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	resp, err := c.placeOrder.PlaceOrder(r.Context(), req)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, resp)
}

func (c *OrderController) GetOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderID, ok := c.parseOrderID(w, r, logger)
	if !ok {
		return
	}

	resp, err := c.getOrder.GetOrder(r.Context(), orderID)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderID, ok := c.parseOrderID(w, r, logger)
	if !ok {
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if req.Status == "" {
		c.writeValidationError(w, "status is required", apperrors.ValidationDetail{
			Field:   "status",
			Message: "status is required",
		})
		return
	}

	resp, err := c.orderStatus.SetStatus(r.Context(), orderID, req.Status)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *OrderController) parseOrderID(w http.ResponseWriter, r *http.Request, logger *zap.Logger) (uint, bool) {
	idStr := chi.URLParam(r, "orderId")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		logger.Warn("invalid orderId in path", zap.String("orderId", idStr))
		c.writeValidationError(w, "invalid orderId", apperrors.ValidationDetail{
			Field:   "orderId",
			Message: "orderId must be a positive integer",
		})
		return 0, false
	}
	return uint(id), true
}

func (c *OrderController) handleError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	if me, ok := apperrors.IsMenuItemMismatchError(err); ok {
		c.writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "MENU_ITEM_MISMATCH",
			Message: me.Message,
		})
		return
	}

	if ise, ok := apperrors.IsInvalidStatusError(err); ok {
		c.writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "INVALID_STATUS",
			Message: ise.Message,
		})
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

func (c *OrderController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *OrderController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
