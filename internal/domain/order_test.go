package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrder_Creation(t *testing.T) {
	createdAt := time.Now()

	order := Order{
		ID:           1,
		CustomerID:   10,
		RestaurantID: 20,
		TotalPrice:   decimal.RequireFromString("17.00"),
		Status:       OrderStatusPlaced,
		CreatedAt:    createdAt,
	}

	assert.Equal(t, uint(1), order.ID)
	assert.Equal(t, 10, order.CustomerID)
	assert.Equal(t, 20, order.RestaurantID)
	assert.True(t, order.TotalPrice.Equal(decimal.RequireFromString("17.00")))
	assert.Equal(t, OrderStatusPlaced, order.Status)
	assert.Equal(t, createdAt, order.CreatedAt)
}

func TestOrderStatus_Constants(t *testing.T) {
	assert.Equal(t, OrderStatus("Placed"), OrderStatusPlaced)
	assert.Equal(t, OrderStatus("Preparing"), OrderStatusPreparing)
	assert.Equal(t, OrderStatus("Completed"), OrderStatusCompleted)
	assert.Equal(t, OrderStatus("Cancelled"), OrderStatusCancelled)
}

func TestParseOrderStatus(t *testing.T) {
	for _, s := range []string{"Placed", "Preparing", "Completed", "Cancelled"} {
		status, ok := ParseOrderStatus(s)
		assert.True(t, ok)
		assert.Equal(t, OrderStatus(s), status)
	}

	for _, s := range []string{"Shipped", "placed", "PLACED", ""} {
		_, ok := ParseOrderStatus(s)
		assert.False(t, ok, "status %q should not parse", s)
	}
}

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderStatusPlaced, OrderStatusPreparing, true},
		{OrderStatusPlaced, OrderStatusCompleted, true},
		{OrderStatusPlaced, OrderStatusCancelled, true},
		{OrderStatusPlaced, OrderStatusPlaced, false},
		{OrderStatusPreparing, OrderStatusCompleted, true},
		{OrderStatusPreparing, OrderStatusCancelled, true},
		{OrderStatusPreparing, OrderStatusPlaced, false},
		{OrderStatusCompleted, OrderStatusCancelled, false},
		{OrderStatusCompleted, OrderStatusPlaced, false},
		{OrderStatusCancelled, OrderStatusPlaced, false},
		{OrderStatusCancelled, OrderStatusCompleted, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"transition %s -> %s", tc.from, tc.to)
	}
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	assert.False(t, OrderStatusPlaced.IsTerminal())
	assert.False(t, OrderStatusPreparing.IsTerminal())
	assert.True(t, OrderStatusCompleted.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())
}

func TestOrderItem_LineTotal(t *testing.T) {
	item := OrderItem{
		ID:         1,
		OrderID:    7,
		MenuItemID: 5,
		Quantity:   2,
		UnitPrice:  decimal.RequireFromString("8.50"),
	}

	assert.True(t, item.LineTotal().Equal(decimal.RequireFromString("17.00")))
}

func TestOrderItem_LineTotal_NoFloatDrift(t *testing.T) {
	// 0.10 * 3 must be exactly 0.30, not 0.30000000000000004.
	item := OrderItem{MenuItemID: 1, Quantity: 3, UnitPrice: decimal.RequireFromString("0.10")}
	assert.Equal(t, "0.3", item.LineTotal().String())
}
