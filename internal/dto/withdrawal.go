package dto

import "time"

type WithdrawalRequestDTO struct {
	Method      string  `json:"method" validate:"required" example:"easypaisa"`
	PhoneNumber string  `json:"phone_number" validate:"required" example:"03001234567"`
	Amount      float64 `json:"amount" example:"100"`
	Currency    string  `json:"currency" example:"PKR"`
}

type WithdrawalResponseDTO struct {
	ID            int       `json:"id" example:"1"`
	Method        string    `json:"method" example:"easypaisa"`
	PhoneNumber   string    `json:"phone_number" example:"03001234567"`
	Amount        float64   `json:"amount" example:"100"`
	Currency      string    `json:"currency" example:"PKR"`
	Status        string    `json:"status" example:"pending"`
	TransactionID string    `json:"transaction_id" example:"TXN20250101120000ABCD1234"`
	CreatedAt     time.Time `json:"created_at"`
}
