package domain

import "time"

type Restaurant struct {
	ID        int
	Name      string
	CreatedAt time.Time
}
