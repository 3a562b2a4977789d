package handlers

import (
	"fmt"
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/eventhub/internal/models"
	"github.com/example/eventhub/internal/monitoring"
	"github.com/example/eventhub/internal/services"
)

// OrderHandler manages order placement.
type OrderHandler struct {
	db     *gorm.DB
	mailer services.Mailer
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(db *gorm.DB, mailer services.Mailer) *OrderHandler {
	return &OrderHandler{db: db, mailer: mailer}
}

type cartItemRequest struct {
	EventTitle string  `json:"eventTitle"`
	TicketType string  `json:"ticketType"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

type createOrderRequest struct {
	FullName    string            `json:"full_name"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone"`
	CartItems   []cartItemRequest `json:"cart_items"`
	TotalAmount float64           `json:"total_amount"`
}

// Create places an order and sends the ticket confirmation email.
// The order is committed before the email attempt; a failed send never
// rolls it back.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var req createOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.FullName == "" || req.Email == "" || req.Phone == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing required fields")
	}

	if len(req.CartItems) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "cart is empty")
	}

	var subtotal float64
	items := make([]models.OrderItem, 0, len(req.CartItems))
	for _, item := range req.CartItems {
		subtotal += item.Price * float64(item.Quantity)
		items = append(items, models.OrderItem{
			EventTitle: item.EventTitle,
			TicketType: item.TicketType,
			Price:      item.Price,
			Quantity:   item.Quantity,
		})
	}

	total := req.TotalAmount
	if total == 0 {
		total = subtotal
	} else if math.Abs(total-subtotal) > 0.01 {
		return fiber.NewError(fiber.StatusBadRequest, "total amount does not match cart items")
	}

	order := models.Order{
		OrderNumber: generateOrderNumber(),
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		TotalAmount: total,
		Status:      models.OrderStatusConfirmed,
		Items:       items,
	}

	if err := h.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&order).Error
	}); err != nil {
		return err
	}
	monitoring.RecordOrderCreated()

	subject, body := services.OrderConfirmationEmail(order)
	emailSent := h.sendEmail("order_confirmation", req.Email, subject, body)

	message := "tickets sent to email"
	if !emailSent {
		message = "order placed, but email not sent"
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"order_number": order.OrderNumber,
		"email_sent":   emailSent,
		"message":      message,
	})
}

func generateOrderNumber() string {
	return fmt.Sprintf("ORD-%s", time.Now().Format("20060102150405"))
}
