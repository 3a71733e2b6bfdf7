package models

import (
	"time"
)

// CartItem holds one (user, product) line of a shopping cart. The composite
// unique index keeps at most one line per pair; quantity updates always go
// through the existing line.
type CartItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex:idx_user_product"`
	ProductID uint      `json:"product_id" gorm:"uniqueIndex:idx_user_product"`
	Product   Product   `json:"product" gorm:"foreignKey:ProductID"`
	Quantity  int       `json:"quantity" gorm:"default:1"`
	CreatedAt time.Time `json:"created_at"`
}

// Subtotal is the line's contribution to the cart total at current catalog price.
func (ci *CartItem) Subtotal() float64 {
	return ci.Product.Price * float64(ci.Quantity)
}
