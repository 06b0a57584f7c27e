package models

import "time"

type Cart struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type CartItem struct {
	ID        int       `json:"id"`
	CartID    int       `json:"cart_id"`
	PetID     int       `json:"pet_id"`
	Pet       *Pet      `json:"pet,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
