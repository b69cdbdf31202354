package dashboardrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/sellerboard/sellerboard/internal/domain"
	"github.com/sellerboard/sellerboard/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const dashboardColumns = `id, user_id, balance, products_sold, profit, total_revenue,
		total_orders, total_sales, profit_forecast, shop_followers, shop_rating, credit_score, updated_at`

func scanDashboard(row pgx.Row) (*domain.Dashboard, error) {
	var d domain.Dashboard
	err := row.Scan(&d.ID, &d.UserID, &d.Balance, &d.ProductsSold, &d.Profit, &d.TotalRevenue,
		&d.TotalOrders, &d.TotalSales, &d.ProfitForecast, &d.ShopFollowers, &d.ShopRating, &d.CreditScore, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *Repository) GetByUserID(ctx context.Context, userID int) (*domain.Dashboard, error) {
	query := `
        SELECT ` + dashboardColumns + `
        FROM dashboards
        WHERE user_id = $1
    `
	dashboard, err := scanDashboard(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get dashboard", zap.Error(err))
		return nil, err
	}
	return dashboard, nil
}

func (r *Repository) Create(ctx context.Context, userID int) (*domain.Dashboard, error) {
	query := `
        INSERT INTO dashboards (user_id)
        VALUES ($1)
        RETURNING ` + dashboardColumns + `
    `
	dashboard, err := scanDashboard(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		zap.L().Error("failed to create dashboard", zap.Error(err))
		return nil, err
	}
	return dashboard, nil
}

func (r *Repository) Update(ctx context.Context, dashboard *domain.Dashboard) (*domain.Dashboard, error) {
	query := `
		UPDATE dashboards
		SET balance = $1, products_sold = $2, profit = $3, total_revenue = $4,
			total_orders = $5, total_sales = $6, profit_forecast = $7,
			shop_followers = $8, shop_rating = $9, credit_score = $10, updated_at = $11
		WHERE user_id = $12
		RETURNING ` + dashboardColumns + `
	`
	var updated *domain.Dashboard
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		updated, err = scanDashboard(r.db.QueryRow(ctx, query,
			dashboard.Balance, dashboard.ProductsSold, dashboard.Profit, dashboard.TotalRevenue,
			dashboard.TotalOrders, dashboard.TotalSales, dashboard.ProfitForecast,
			dashboard.ShopFollowers, dashboard.ShopRating, dashboard.CreditScore, time.Now().UTC(),
			dashboard.UserID))
		if err != nil {
			zap.L().Error("failed to update dashboard", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
