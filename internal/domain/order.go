package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "Placed"
	OrderStatusPreparing OrderStatus = "Preparing"
	OrderStatusCompleted OrderStatus = "Completed"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// statusRank orders the forward path Placed -> Preparing -> Completed.
// Cancelled sits outside the path and is handled separately.
var statusRank = map[OrderStatus]int{
	OrderStatusPlaced:    1,
	OrderStatusPreparing: 2,
	OrderStatusCompleted: 3,
}

// ParseOrderStatus returns the recognized status for s, or false when s is
// not one of the four order statuses.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case OrderStatusPlaced, OrderStatusPreparing, OrderStatusCompleted, OrderStatusCancelled:
		return OrderStatus(s), true
	}
	return "", false
}

// IsTerminal reports whether no further transitions are allowed out of s.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// CanTransitionTo reports whether an order may move from s to next. Terminal
// states admit no exits, backward and same-state moves are rejected, forward
// skips are allowed, and Cancelled is reachable from any non-terminal state.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if next == OrderStatusCancelled {
		return true
	}
	return statusRank[next] > statusRank[s]
}

type Order struct {
	ID           uint
	CustomerID   int
	RestaurantID int
	TotalPrice   decimal.Decimal
	Status       OrderStatus
	CreatedAt    time.Time
}

type OrderItem struct {
	ID         uint
	OrderID    uint
	MenuItemID int
	Quantity   int
	UnitPrice  decimal.Decimal
}

// LineTotal is the unit price at order time multiplied by the quantity.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
