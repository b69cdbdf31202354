package domain

import "time"

type User struct {
	ID           int       `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PhoneNumber  string    `db:"phone_number"`
	PasswordHash string    `db:"password_hash"`
	IsActive     bool      `db:"is_active"`
	CreatedAt    time.Time `db:"created_at"`
}

type Dashboard struct {
	ID             int       `db:"id"`
	UserID         int       `db:"user_id"`
	Balance        float64   `db:"balance"`
	ProductsSold   int       `db:"products_sold"`
	Profit         float64   `db:"profit"`
	TotalRevenue   float64   `db:"total_revenue"`
	TotalOrders    int       `db:"total_orders"`
	TotalSales     float64   `db:"total_sales"`
	ProfitForecast float64   `db:"profit_forecast"`
	ShopFollowers  int       `db:"shop_followers"`
	ShopRating     float64   `db:"shop_rating"`
	CreditScore    int       `db:"credit_score"`
	UpdatedAt      time.Time `db:"updated_at"`
}

type Withdrawal struct {
	ID            int        `db:"id"`
	UserID        int        `db:"user_id"`
	Method        string     `db:"method"`
	PhoneNumber   string     `db:"phone_number"`
	Amount        float64    `db:"amount"`
	Currency      string     `db:"currency"`
	Status        string     `db:"status"`
	TransactionID string     `db:"transaction_id"`
	CreatedAt     time.Time  `db:"created_at"`
	ProcessedAt   *time.Time `db:"processed_at"`
}

type Order struct {
	ID          int        `db:"id"`
	UserID      int        `db:"user_id"`
	OrderNumber string     `db:"order_number"`
	Status      string     `db:"status"`
	Currency    string     `db:"currency"`
	Subtotal    float64    `db:"subtotal"`
	Discount    float64    `db:"discount"`
	Tax         float64    `db:"tax"`
	ShippingFee float64    `db:"shipping_fee"`
	Total       float64    `db:"total"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	PaidAt      *time.Time `db:"paid_at"`
	FulfilledAt *time.Time `db:"fulfilled_at"`
	CancelledAt *time.Time `db:"cancelled_at"`
}
