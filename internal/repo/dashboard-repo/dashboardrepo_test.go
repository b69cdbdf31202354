package dashboardrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/sellerboard/sellerboard/internal/domain"
	"github.com/sellerboard/sellerboard/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	txManager := pg.NewMockTXManager(ctrl)
	repo := New(mockDB, txManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, txManager
}

func dashboardRows(d *domain.Dashboard) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "user_id", "balance", "products_sold", "profit", "total_revenue",
		"total_orders", "total_sales", "profit_forecast", "shop_followers",
		"shop_rating", "credit_score", "updated_at",
	}).AddRow(d.ID, d.UserID, d.Balance, d.ProductsSold, d.Profit, d.TotalRevenue,
		d.TotalOrders, d.TotalSales, d.ProfitForecast, d.ShopFollowers,
		d.ShopRating, d.CreditScore, d.UpdatedAt)
}

func TestRepository_GetByUserID(t *testing.T) {
	repo, mock, _ := NewMock(t)

	updatedAt := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Dashboard
	}{
		{
			name: "Dashboard found",
			mockSetup: func() {
				rows := dashboardRows(&domain.Dashboard{
					ID: 1, UserID: 1, Balance: 500, ShopRating: 4.5, CreditScore: 720, UpdatedAt: updatedAt,
				})
				mock.ExpectQuery("SELECT (.+) FROM dashboards WHERE user_id = \\$1").
					WithArgs(1).
					WillReturnRows(rows)
			},
			result: &domain.Dashboard{
				ID: 1, UserID: 1, Balance: 500, ShopRating: 4.5, CreditScore: 720, UpdatedAt: updatedAt,
			},
		},
		{
			name: "Dashboard not found",
			mockSetup: func() {
				mock.ExpectQuery("SELECT (.+) FROM dashboards WHERE user_id = \\$1").
					WithArgs(1).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery("SELECT (.+) FROM dashboards WHERE user_id = \\$1").
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			dashboard, err := repo.GetByUserID(context.Background(), 1)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, dashboard)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successful creation",
			mockSetup: func() {
				rows := dashboardRows(&domain.Dashboard{ID: 1, UserID: 1})
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO dashboards (user_id)")).
					WithArgs(1).
					WillReturnRows(rows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO dashboards (user_id)")).
					WithArgs(1).
					WillReturnError(errors.New("insert error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			dashboard, err := repo.Create(context.Background(), 1)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, dashboard)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, dashboard.UserID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Update(t *testing.T) {
	repo, mock, txManager := NewMock(t)

	dashboard := &domain.Dashboard{
		ID: 1, UserID: 1, Balance: 750, ProductsSold: 20, ShopRating: 4.8, CreditScore: 800,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successful update",
			mockSetup: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				rows := dashboardRows(dashboard)
				mock.ExpectQuery("UPDATE dashboards").
					WithArgs(float64(750), 20, float64(0), float64(0), 0, float64(0), float64(0),
						0, 4.8, 800, pgxmock.AnyArg(), 1).
					WillReturnRows(rows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				mock.ExpectQuery("UPDATE dashboards").
					WithArgs(float64(750), 20, float64(0), float64(0), 0, float64(0), float64(0),
						0, 4.8, 800, pgxmock.AnyArg(), 1).
					WillReturnError(errors.New("update error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			updated, err := repo.Update(context.Background(), dashboard)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, updated)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, dashboard.Balance, updated.Balance)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
