package models

import (
	"github.com/google/uuid"
)

// OrderStatusConfirmed is the only status orders are created with.
const OrderStatusConfirmed = "confirmed"

// Order is an immutable ticket purchase record.
type Order struct {
	BaseModel
	OrderNumber string      `gorm:"uniqueIndex" json:"order_number"`
	FullName    string      `json:"full_name"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	TotalAmount float64     `json:"total_amount"`
	Status      string      `json:"status"`
	Items       []OrderItem `json:"items,omitempty"`
}

// OrderItem is one cart line, fixed at order-creation time.
type OrderItem struct {
	BaseModel
	OrderID    uuid.UUID `gorm:"type:uuid;index" json:"order_id"`
	EventTitle string    `json:"event_title"`
	TicketType string    `json:"ticket_type"`
	Price      float64   `json:"price"`
	Quantity   int       `json:"quantity"`
}
