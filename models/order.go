package models

import "time"

type OrderStatus string

const (
	OrderStatusPlaced     OrderStatus = "placed"     // Initial state after checkout
	OrderStatusProcessing OrderStatus = "processing" // Being prepared
	OrderStatusShipped    OrderStatus = "shipped"    // Out for delivery
	OrderStatusDelivered  OrderStatus = "delivered"  // Customer received the items
	OrderStatusCancelled  OrderStatus = "cancelled"  // Cancelled before shipping
)

type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	UserID          string      `gorm:"not null;index" json:"user_id"`
	User            *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount     float64     `json:"total_amount"`
	Status          OrderStatus `gorm:"type:VARCHAR(20);default:'placed'" json:"status"`
	ShippingAddress string      `json:"shipping_address"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// OrderItem snapshots quantity and unit price at checkout time.
// Later product price changes never touch existing orders.
type OrderItem struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	OrderID   uint     `gorm:"index;not null" json:"order_id"`
	ProductID uint     `gorm:"not null" json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`
	Quantity  int      `gorm:"not null" json:"quantity"`
	UnitPrice float64  `gorm:"not null" json:"unit_price"`
}
