package models

import "time"

// Review is one user's opinion on one product. Text and rating are each
// optional, but at least one must be present. One review per (user, product).
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"index;uniqueIndex:idx_review_user_product;not null" json:"product_id"`
	UserID    string    `gorm:"uniqueIndex:idx_review_user_product;not null" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Text      string    `json:"text"`
	Rating    *int      `json:"rating"` // 1-5 when set
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
