package models

import "time"

// Customer is the database representation of a customer.
type Customer struct {
	CustomerID string    `json:"customerID"`
	Name       string    `json:"name"`
	Email      *string   `json:"email"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
}
