package models

import "time"

type WishlistItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index;uniqueIndex:idx_wishlist_user_product;not null" json:"user_id"`
	ProductID uint      `gorm:"uniqueIndex:idx_wishlist_user_product;not null" json:"product_id"`
	Product   *Product  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`
	AddedAt   time.Time `json:"added_at"`
}
