package models

import "time"

// FAQ is a question/answer pair authored by the product's collaborator owner.
type FAQ struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"index;not null" json:"product_id"`
	Question  string    `gorm:"not null" json:"question"`
	Answer    string    `gorm:"not null" json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}
