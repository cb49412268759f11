package dto

import (
	"time"

	"beorn/internal/domain"
)

type CreateRestaurantRequest struct {
	Name string `json:"name"`
}

type RestaurantResponse struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewRestaurantResponse(restaurant domain.Restaurant) *RestaurantResponse {
	return &RestaurantResponse{
		ID:        restaurant.ID,
		Name:      restaurant.Name,
		CreatedAt: restaurant.CreatedAt,
	}
}
