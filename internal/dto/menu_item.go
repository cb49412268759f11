package dto

import (
	"github.com/shopspring/decimal"

	"beorn/internal/domain"
)

// UpdateMenuItemRequest carries a partial update: nil fields are untouched.
type UpdateMenuItemRequest struct {
	Price       *decimal.Decimal `json:"price"`
	IsAvailable *bool            `json:"isAvailable"`
}

type MenuItemResponse struct {
	ID           int    `json:"id"`
	RestaurantID int    `json:"restaurantId"`
	Name         string `json:"name"`
	Price        string `json:"price"`
	IsAvailable  bool   `json:"isAvailable"`
}

func NewMenuItemResponse(item domain.MenuItem) *MenuItemResponse {
	return &MenuItemResponse{
		ID:           item.ID,
		RestaurantID: item.RestaurantID,
		Name:         item.Name,
		Price:        item.Price.StringFixed(2),
		IsAvailable:  item.IsAvailable,
	}
}

type TopMenuItemResponse struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Price        string `json:"price"`
	Restaurant   string `json:"restaurant"`
	TotalOrdered int    `json:"totalOrdered"`
}
