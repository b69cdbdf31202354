package orderrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/sellerboard/sellerboard/internal/domain"
	"github.com/sellerboard/sellerboard/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindOrdersByUserID(ctx context.Context, userID int) ([]domain.Order, error) {
	query := `
        SELECT id, user_id, order_number, status, currency, subtotal, discount, tax,
               shipping_fee, total, created_at, updated_at, paid_at, fulfilled_at, cancelled_at
        FROM orders
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		err := rows.Scan(&order.ID, &order.UserID, &order.OrderNumber, &order.Status, &order.Currency,
			&order.Subtotal, &order.Discount, &order.Tax, &order.ShippingFee, &order.Total,
			&order.CreatedAt, &order.UpdatedAt, &order.PaidAt, &order.FulfilledAt, &order.CancelledAt)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}
