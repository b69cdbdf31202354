package dto

import "time"

type OrderResponseDTO struct {
	ID          int        `json:"id" example:"1"`
	OrderNumber string     `json:"order_number" example:"ORD-2025-0001"`
	Status      string     `json:"status" example:"paid"`
	Currency    string     `json:"currency" example:"PKR"`
	Subtotal    float64    `json:"subtotal" example:"1000"`
	Discount    float64    `json:"discount" example:"50"`
	Tax         float64    `json:"tax" example:"170"`
	ShippingFee float64    `json:"shipping_fee" example:"200"`
	Total       float64    `json:"total" example:"1320"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
	FulfilledAt *time.Time `json:"fulfilled_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}
