package models

import "time"

// CartItem is one line of a user's cart. One row per (user, product).
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index;uniqueIndex:idx_cart_user_product;not null" json:"user_id"`
	ProductID uint      `gorm:"uniqueIndex:idx_cart_user_product;not null" json:"product_id"`
	Product   *Product  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

// Subtotal is computed at read time from the current product price.
func (ci *CartItem) Subtotal() float64 {
	if ci.Product == nil {
		return 0
	}
	return float64(ci.Quantity) * ci.Product.Price
}
