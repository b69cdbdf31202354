package dto

import "time"

type SignupRequestDTO struct {
	Username    string `json:"username" validate:"required,min=3,max=50" example:"alice"`
	Email       string `json:"email" validate:"required,email" example:"alice@example.com"`
	PhoneNumber string `json:"phone_number" validate:"required" example:"03001234567"`
	Password    string `json:"password" validate:"required,min=6"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required" example:"alice@example.com"`
	Password string `json:"password" validate:"required"`
}

type TokenResponseDTO struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"bearer"`
	ExpiresIn   int    `json:"expires_in" example:"86400"`
}

type UserInfoDTO struct {
	ID          int       `json:"id" example:"1"`
	Username    string    `json:"username" example:"alice"`
	Email       string    `json:"email" example:"alice@example.com"`
	PhoneNumber string    `json:"phone_number" example:"03001234567"`
	CreatedAt   time.Time `json:"created_at"`
}
