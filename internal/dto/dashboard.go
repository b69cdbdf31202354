package dto

import "time"

type DashboardResponseDTO struct {
	Balance        float64   `json:"balance" example:"500"`
	ProductsSold   int       `json:"products_sold" example:"12"`
	Profit         float64   `json:"profit" example:"150.5"`
	TotalRevenue   float64   `json:"total_revenue" example:"2000"`
	TotalOrders    int       `json:"total_orders" example:"34"`
	TotalSales     float64   `json:"total_sales" example:"1800"`
	ProfitForecast float64   `json:"profit_forecast" example:"300"`
	ShopFollowers  int       `json:"shop_followers" example:"128"`
	ShopRating     float64   `json:"shop_rating" example:"4.5"`
	CreditScore    int       `json:"credit_score" example:"720"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// DashboardUpdateDTO is a partial patch: only fields present in the request
// overwrite stored values.
type DashboardUpdateDTO struct {
	Balance        *float64 `json:"balance,omitempty"`
	ProductsSold   *int     `json:"products_sold,omitempty"`
	Profit         *float64 `json:"profit,omitempty"`
	TotalRevenue   *float64 `json:"total_revenue,omitempty"`
	TotalOrders    *int     `json:"total_orders,omitempty"`
	TotalSales     *float64 `json:"total_sales,omitempty"`
	ProfitForecast *float64 `json:"profit_forecast,omitempty"`
	ShopFollowers  *int     `json:"shop_followers,omitempty"`
	ShopRating     *float64 `json:"shop_rating,omitempty"`
	CreditScore    *int     `json:"credit_score,omitempty"`
}
