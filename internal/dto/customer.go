package dto

import (
	"time"

	"beorn/internal/domain"
)

type RegisterCustomerRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

type CustomerResponse struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Address     string    `json:"address"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewCustomerResponse(customer domain.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:          customer.ID,
		Name:        customer.Name,
		Email:       customer.Email,
		PhoneNumber: customer.PhoneNumber,
		Address:     customer.Address,
		CreatedAt:   customer.CreatedAt,
	}
}

type TopCustomerResponse struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	OrderCount int    `json:"orderCount"`
}
