package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type MenuItem struct {
	ID           int
	RestaurantID int
	Name         string
	Price        decimal.Decimal
	IsAvailable  bool
	CreatedAt    time.Time
}

// TopMenuItem is the aggregate row behind the most-ordered-items report.
type TopMenuItem struct {
	ID           int
	Name         string
	Price        decimal.Decimal
	Restaurant   string
	TotalOrdered int
}
