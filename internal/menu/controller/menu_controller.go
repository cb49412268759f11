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

type MenuItemUseCase interface {
	UpdateMenuItem(ctx context.Context, id int, req dto.UpdateMenuItemRequest) (*dto.MenuItemResponse, error)
	TopItems(ctx context.Context) ([]dto.TopMenuItemResponse, error)
}

type MenuController struct {
	useCase MenuItemUseCase
	logger  *zap.Logger
}

func NewMenuController(useCase MenuItemUseCase, logger *zap.Logger) *MenuController {
	return &MenuController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *MenuController) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	idStr := chi.URLParam(r, "menuItemId")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		logger.Warn("invalid menuItemId in path", zap.String("menuItemId", idStr))
		c.writeValidationError(w, "invalid menuItemId", apperrors.ValidationDetail{
			Field:   "menuItemId",
			Message: "menuItemId must be a positive integer",
		})
		return
	}

	var req dto.UpdateMenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	resp, err := c.useCase.UpdateMenuItem(r.Context(), id, req)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *MenuController) TopItems(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	resp, err := c.useCase.TopItems(r.Context())
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *MenuController) handleError(w http.ResponseWriter, err error, logger *zap.Logger) {
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

func (c *MenuController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *MenuController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
