package models

import "time"

// RemissionStatus indicates the lifecycle state of a remission row.
type RemissionStatus string

const (
	RemissionOpen   RemissionStatus = "open"
	RemissionClosed RemissionStatus = "closed"
)

// Remission is the database representation of a remission.
type Remission struct {
	RemissionID string          `json:"remissionID"`
	OrderID     string          `json:"orderID"`
	Folio       string          `json:"folio"`
	Status      RemissionStatus `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
}
