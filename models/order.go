package models

import "time"

type Order struct {
	ID        int         `json:"id"`
	UserID    int         `json:"user_id"`
	AddressID int         `json:"address_id"`
	Items     []OrderItem `json:"items,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

// OrderItem links an order to a purchased pet. Nothing is frozen at
// purchase time; order views read name and price from the live catalog
// row, so catalog edits show through in history.
type OrderItem struct {
	ID      int `json:"id"`
	OrderID int `json:"order_id"`
	PetID   int `json:"pet_id"`
}
