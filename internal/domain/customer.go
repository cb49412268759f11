package domain

import "time"

type Customer struct {
	ID          int
	Name        string
	Email       string
	PhoneNumber string
	Address     string
	CreatedAt   time.Time
}

// TopCustomer is the aggregate row behind the most-active-customers report.
type TopCustomer struct {
	ID         int
	Name       string
	Email      string
	OrderCount int
}
