package domain

import "time"

// Customer represents a client that places orders.
type Customer struct {
	CustomerID string    `json:"customerID"` // Primary Key (UUID)
	Name       string    `json:"name"`
	Email      *string   `json:"email"` // Optional contact address
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
}
