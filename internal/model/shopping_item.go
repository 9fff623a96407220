package model

import "time"

// ShoppingItem is an entry on a user's grocery list. Purchased plays the
// same role Completed does for the other record kinds.
type ShoppingItem struct {
	ID        uint64    `json:"id"`         // shopping_items.id
	UserID    uint64    `json:"user_id"`    // shopping_items.user_id
	Date      string    `json:"date"`       // shopping_items.date
	Name      string    `json:"name"`       // shopping_items.name
	Quantity  uint32    `json:"quantity"`   // shopping_items.quantity
	Purchased bool      `json:"purchased"`  // shopping_items.purchased
	CreatedAt time.Time `json:"created_at"` // shopping_items.created_at
}
