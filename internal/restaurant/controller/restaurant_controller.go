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

type RestaurantUseCase interface {
	Create(ctx context.Context, req dto.CreateRestaurantRequest) (*dto.RestaurantResponse, error)
	GetRestaurant(ctx context.Context, id int) (*dto.RestaurantResponse, error)
	Menu(ctx context.Context, restaurantID int) ([]dto.MenuItemResponse, error)
}

type RestaurantController struct {
	useCase RestaurantUseCase
	logger  *zap.Logger
}

func NewRestaurantController(useCase RestaurantUseCase, logger *zap.Logger) *RestaurantController {
	return &RestaurantController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *RestaurantController) Create(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CreateRestaurantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	resp, err := c.useCase.Create(r.Context(), req)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, resp)
}

func (c *RestaurantController) GetRestaurant(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id, ok := c.parseRestaurantID(w, r, logger)
	if !ok {
		return
	}

	resp, err := c.useCase.GetRestaurant(r.Context(), id)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *RestaurantController) Menu(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id, ok := c.parseRestaurantID(w, r, logger)
	if !ok {
		return
	}

	resp, err := c.useCase.Menu(r.Context(), id)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *RestaurantController) parseRestaurantID(w http.ResponseWriter, r *http.Request, logger *zap.Logger) (int, bool) {
	idStr := chi.URLParam(r, "restaurantId")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		logger.Warn("invalid restaurantId in path", zap.String("restaurantId", idStr))
		c.writeValidationError(w, "invalid restaurantId", apperrors.ValidationDetail{
			Field:   "restaurantId",
			Message: "restaurantId must be a positive integer",
		})
		return 0, false
	}
	return id, true
}

func (c *RestaurantController) handleError(w http.ResponseWriter, err error, logger *zap.Logger) {
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

func (c *RestaurantController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *RestaurantController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
