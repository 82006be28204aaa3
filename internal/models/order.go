package models

import "time"

// Order is the database representation of an order.
type Order struct {
	OrderID    string    `json:"orderID"`
	CustomerID string    `json:"customerID"`
	Folio      string    `json:"folio"`
	CreatedAt  time.Time `json:"createdAt"`
}
