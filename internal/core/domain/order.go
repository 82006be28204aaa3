package domain

import "time"

// Order represents a purchase order placed by a customer.
// The folio is the human-facing business key, unique across orders.
type Order struct {
	OrderID    string    `json:"orderID"` // Primary Key (UUID)
	CustomerID string    `json:"customerID"`
	Folio      string    `json:"folio"`
	CreatedAt  time.Time `json:"createdAt"`
}
