package models

import "time"

type ProductStatus string

const (
	ProductStatusPending  ProductStatus = "pending"  // Awaiting admin review
	ProductStatusApproved ProductStatus = "approved" // Visible in the public catalog
	ProductStatusRejected ProductStatus = "rejected" // Hidden, reason kept for the owner
)

type Product struct {
	ID              uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	Title           string        `gorm:"not null" json:"title"`
	Description     string        `json:"description"`
	ImagePath       string        `gorm:"not null" json:"image_path"`
	Price           float64       `gorm:"not null" json:"price"`
	Stock           int           `gorm:"not null;default:0" json:"stock"`
	Status          ProductStatus `gorm:"type:VARCHAR(20);default:'pending';index" json:"status"`
	Rating          *float64      `json:"rating"` // nil until a rated review exists
	RejectionReason string        `json:"rejection_reason,omitempty"`
	CategoryID      uint          `gorm:"not null;index" json:"category_id"`
	Category        *Category     `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	CreatedByUserID string        `gorm:"index" json:"created_by_user_id,omitempty"`
	Reviews         []Review      `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
	FAQs            []FAQ         `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"faqs,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// DefaultProductImage is used when no image file is uploaded.
const DefaultProductImage = "/uploads/products/default.jpg"
