package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"beorn/internal/domain"
)

type PlaceOrderRequest struct {
	CustomerID   int                `json:"customerId"`
	RestaurantID int                `json:"restaurantId"`
	Items        []OrderLineRequest `json:"items"`
}

type OrderLineRequest struct {
	MenuItemID int `json:"menuItemId"`
	Quantity   int `json:"quantity"`
}

// PriceQuote is the pricing resolver's result: the exact order total and the
// unit price that was authoritative for every requested menu item.
type PriceQuote struct {
	Total      decimal.Decimal
	UnitPrices map[int]decimal.Decimal
}

type OrderResponse struct {
	ID           uint                `json:"id"`
	CustomerID   int                 `json:"customerId"`
	RestaurantID int                 `json:"restaurantId"`
	TotalPrice   string              `json:"totalPrice"`
	Status       string              `json:"status"`
	CreatedAt    time.Time           `json:"createdAt"`
	Items        []OrderItemResponse `json:"items"`
}

type OrderItemResponse struct {
	ID         uint   `json:"id"`
	MenuItemID int    `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
	UnitPrice  string `json:"unitPrice"`
}

// NewOrderResponse maps a persisted order and its lines to the API shape.
// Money fields are rendered with two decimal places.
func NewOrderResponse(order domain.Order, items []domain.OrderItem) *OrderResponse {
	itemDTOs := make([]OrderItemResponse, len(items))
	for i, item := range items {
		itemDTOs[i] = OrderItemResponse{
			ID:         item.ID,
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice.StringFixed(2),
		}
	}

	return &OrderResponse{
		ID:           order.ID,
		CustomerID:   order.CustomerID,
		RestaurantID: order.RestaurantID,
		TotalPrice:   order.TotalPrice.StringFixed(2),
		Status:       string(order.Status),
		CreatedAt:    order.CreatedAt,
		Items:        itemDTOs,
	}
}
