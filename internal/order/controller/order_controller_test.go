package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"beorn/internal/dto"
	apperrors "beorn/internal/errors"
)

// Mock implementations

type mockPlaceOrderUseCase struct {
	PlaceOrderFunc func(ctx context.Context, req dto.PlaceOrderRequest) (*dto.OrderResponse, error)
}

func (m *mockPlaceOrderUseCase) PlaceOrder(ctx context.Context, req dto.PlaceOrderRequest) (*dto.OrderResponse, error) {
	return m.PlaceOrderFunc(ctx, req)
}

type mockGetOrderUseCase struct {
	GetOrderFunc func(ctx context.Context, orderID uint) (*dto.OrderResponse, error)
}

func (m *mockGetOrderUseCase) GetOrder(ctx context.Context, orderID uint) (*dto.OrderResponse, error) {
	return m.GetOrderFunc(ctx, orderID)
}

type mockOrderStatusUseCase struct {
	SetStatusFunc func(ctx context.Context, orderID uint, status string) (*dto.OrderResponse, error)
}

func (m *mockOrderStatusUseCase) SetStatus(ctx context.Context, orderID uint, status string) (*dto.OrderResponse, error) {
	return m.SetStatusFunc(ctx, orderID, status)
}

func sampleOrderResponse() *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:           42,
		CustomerID:   1,
		RestaurantID: 10,
		TotalPrice:   "17.00",
		Status:       "Placed",
		CreatedAt:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Items: []dto.OrderItemResponse{
			{ID: 1, MenuItemID: 5, Quantity: 2, UnitPrice: "8.50"},
		},
	}
}

func newTestRouter(ctrl *OrderController) http.Handler {
	r := chi.NewRouter()
	r.Post("/orders", ctrl.PlaceOrder)
	r.Get("/orders/{orderId}", ctrl.GetOrder)
	r.Patch("/orders/{orderId}/status", ctrl.UpdateStatus)
	return r
}

func TestPlaceOrderHandler_Success(t *testing.T) {
	var captured dto.PlaceOrderRequest
	ctrl := NewOrderController(
		&mockPlaceOrderUseCase{
			PlaceOrderFunc: func(ctx context.Context, req dto.PlaceOrderRequest) (*dto.OrderResponse, error) {
				captured = req
				return sampleOrderResponse(), nil
			},
		},
		nil, nil, zap.NewNop(),
	)

	body := `{"customerId":1,"restaurantId":10,"items":[{"menuItemId":5,"quantity":2}]}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()

	newTestRouter(ctrl).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, 1, captured.CustomerID)
	assert.Equal(t, 10, captured.RestaurantID)
	require.Len(t, captured.Items, 1)
	assert.Equal(t, 5, captured.Items[0].MenuItemID)

	var resp dto.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "17.00", resp.TotalPrice)
	assert.Equal(t, "Placed", resp.Status)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "8.50", resp.Items[0].UnitPrice)
}

func TestPlaceOrderHandler_MalformedJSON(t *testing.T) {
	ctrl := NewOrderController(
		&mockPlaceOrderUseCase{
			PlaceOrderFunc: func(ctx context.Context, req dto.PlaceOrderRequest) (*dto.OrderResponse, error) {
				t.Fatal("use case must not run on a malformed body")
				return nil, nil
			},
		},
		nil, nil, zap.NewNop(),
	)

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	newTestRouter(ctrl).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestPlaceOrderHandler_ValidationError(t *testing.T) {
	ctrl := NewOrderController(
		&mockPlaceOrderUseCase{
			PlaceOrderFunc: func(ctx context.Context, req dto.PlaceOrderRequest) (*dto.OrderResponse, error) {
				return nil, apperrors.NewValidationError("missing required fields", apperrors.ValidationDetail{
					Field:   "items",
					Message: "items must not be empty",
				})
			},
		},
		nil, nil, zap.NewNop(),
	)

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"customerId":1,"restaurantId":10,"items":[]}`))
	rec := httptest.NewRecorder()

	newTestRouter(ctrl).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Error   string                       `json:"error"`
		Message string                       `json:"message"`
		Details []apperrors.ValidationDetail `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "VALIDATION_ERROR", resp.Error)
	assert.Equal(t, "missing required fields", resp.Message)
	require.Len(t, resp.Details, 1)
	assert.Equal(t, "items", resp.Details[0].Field)
}

func TestPlaceOrderHandler_MenuItemMismatch(t *testing.T) {
	ctrl := NewOrderController(
		&mockPlaceOrderUseCase{
			PlaceOrderFunc: func(ctx context.Context, req dto.PlaceOrderRequest) (*dto.OrderResponse, error) {
				return nil, apperrors.NewMenuItemMismatchError(
					"one or more menu items not found or don't belong to the restaurant",
					[]int{7},
				)
			},
		},
		nil, nil, zap.NewNop(),
	)

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"customerId":1,"restaurantId":10,"items":[{"menuItemId":7,"quantity":1}]}`))
	rec := httptest.NewRecorder()

	newTestRouter(ctrl).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "MENU_ITEM_MISMATCH")
}

func TestPlaceOrderHandler_CustomerNotFound(t *testing.T) {
	ctrl := NewOrderController(
		&mockPlaceOrderUseCase{
			PlaceOrderFunc: func(ctx context.Context, req dto.PlaceOrderRequest) (*dto.OrderResponse, error) {
				return nil, apperrors.NewNotFoundError("customer with id 999 not found")
			},
		},
		nil, nil, zap.NewNop(),
	)

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"customerId":999,"restaurantId":10,"items":[{"menuItemId":5,"quantity":1}]}`))
	rec := httptest.NewRecorder()

	newTestRouter(ctrl).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
}

func TestPlaceOrderHandler_UnexpectedError(t *testing.T) {
	ctrl := NewOrderController(
		&mockPlaceOrderUseCase{
			PlaceOrderFunc: func(ctx context.Context, req dto.PlaceOrderRequest) (*dto.OrderResponse, error) {
				return nil, apperrors.NewInternalError("failed to commit order", assert.AnError)
			},
		},
		nil, nil, zap.NewNop(),
	)

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"customerId":1,"restaurantId":10,"items":[{"menuItemId":5,"quantity":1}]}`))
	rec := httptest.NewRecorder()

	newTestRouter(ctrl).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
	assert.NotContains(t, rec.Body.String(), "commit", "internal detail must not leak")
}

func TestGetOrderHandler_Success(t *testing.T) {
	ctrl := NewOrderController(
		nil,
		&mockGetOrderUseCase{
			GetOrderFunc: func(ctx context.Context, orderID uint) (*dto.OrderResponse, error) {
				assert.Equal(t, uint(42), orderID)
				return sampleOrderResponse(), nil
			},
		},
		nil, zap.NewNop(),
	)

	req := httptest.NewRequest(http.MethodGet, "/orders/42", nil)
	rec := httptest.NewRecorder()

	newTestRouter(ctrl).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint(42), resp.ID)
}

func TestGetOrderHandler_InvalidID(t *testing.T) {
	ctrl := NewOrderController(nil, &mockGetOrderUseCase{
		GetOrderFunc: func(ctx context.Context, orderID uint) (*dto.OrderResponse, error) {
			t.Fatal("use case must not run on a bad path param")
			return nil, nil
		},
	}, nil, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/orders/abc", nil)
	rec := httptest.NewRecorder()

	newTestRouter(ctrl).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "orderId")
}

func TestGetOrderHandler_NotFound(t *testing.T) {
	ctrl := NewOrderController(nil, &mockGetOrderUseCase{
		GetOrderFunc: func(ctx context.Context, orderID uint) (*dto.OrderResponse, error) {
			return nil, apperrors.NewNotFoundError("order with id 404 not found")
		},
	}, nil, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/orders/404", nil)
	rec := httptest.NewRecorder()

	newTestRouter(ctrl).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateStatusHandler_Success(t *testing.T) {
	ctrl := NewOrderController(nil, nil, &mockOrderStatusUseCase{
		SetStatusFunc: func(ctx context.Context, orderID uint, status string) (*dto.OrderResponse, error) {
			assert.Equal(t, uint(42), orderID)
			assert.Equal(t, "Preparing", status)
			resp := sampleOrderResponse()
			resp.Status = "Preparing"
			return resp, nil
		},
	}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPatch, "/orders/42/status", strings.NewReader(`{"status":"Preparing"}`))
	rec := httptest.NewRecorder()

	newTestRouter(ctrl).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Preparing", resp.Status)
}

func TestUpdateStatusHandler_UnknownStatus(t *testing.T) {
	ctrl := NewOrderController(nil, nil, &mockOrderStatusUseCase{
		SetStatusFunc: func(ctx context.Context, orderID uint, status string) (*dto.OrderResponse, error) {
			return nil, apperrors.NewInvalidStatusError(status)
		},
	}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPatch, "/orders/42/status", strings.NewReader(`{"status":"Shipped"}`))
	rec := httptest.NewRecorder()

	newTestRouter(ctrl).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_STATUS", resp.Error)
	assert.Contains(t, resp.Message, `"Shipped"`)
}

func TestUpdateStatusHandler_EmptyStatus(t *testing.T) {
	ctrl := NewOrderController(nil, nil, &mockOrderStatusUseCase{
		SetStatusFunc: func(ctx context.Context, orderID uint, status string) (*dto.OrderResponse, error) {
			t.Fatal("use case must not run on an empty status")
			return nil, nil
		},
	}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPatch, "/orders/42/status", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	newTestRouter(ctrl).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "status is required")
}

func TestUpdateStatusHandler_IllegalTransition(t *testing.T) {
	ctrl := NewOrderController(nil, nil, &mockOrderStatusUseCase{
		SetStatusFunc: func(ctx context.Context, orderID uint, status string) (*dto.OrderResponse, error) {
			return nil, apperrors.NewConflictError("cannot transition order from Completed to Preparing")
		},
	}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPatch, "/orders/42/status", strings.NewReader(`{"status":"Preparing"}`))
	rec := httptest.NewRecorder()

	newTestRouter(ctrl).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "CONFLICT")
}
