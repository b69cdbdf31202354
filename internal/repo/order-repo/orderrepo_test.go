package orderrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindOrdersByUserID(t *testing.T) {
	repo, mock := NewMock(t)

	createdAt := time.Date(2025, 4, 10, 8, 0, 0, 0, time.UTC)
	paidAt := createdAt.Add(2 * time.Hour)

	orderColumns := []string{
		"id", "user_id", "order_number", "status", "currency", "subtotal", "discount",
		"tax", "shipping_fee", "total", "created_at", "updated_at", "paid_at", "fulfilled_at", "cancelled_at",
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Orders returned",
			mockSetup: func() {
				rows := pgxmock.NewRows(orderColumns).
					AddRow(2, 1, "ORD-2025-0002", "paid", "PKR", float64(1000), float64(50),
						float64(170), float64(200), float64(1320), createdAt, createdAt, &paidAt, nil, nil).
					AddRow(1, 1, "ORD-2025-0001", "pending", "PKR", float64(500), float64(0),
						float64(85), float64(150), float64(735), createdAt, createdAt, nil, nil, nil)
				mock.ExpectQuery("SELECT (.+) FROM orders WHERE user_id = \\$1 ORDER BY created_at DESC").
					WithArgs(1).
					WillReturnRows(rows)
			},
			count: 2,
		},
		{
			name: "No orders",
			mockSetup: func() {
				rows := pgxmock.NewRows(orderColumns)
				mock.ExpectQuery("SELECT (.+) FROM orders WHERE user_id = \\$1 ORDER BY created_at DESC").
					WithArgs(1).
					WillReturnRows(rows)
			},
			count: 0,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery("SELECT (.+) FROM orders WHERE user_id = \\$1 ORDER BY created_at DESC").
					WithArgs(1).
					WillReturnError(errors.New("select error"))
			},
			expectErr: true,
		},
		{
			name: "Scan error",
			mockSetup: func() {
				rows := pgxmock.NewRows(orderColumns).
					AddRow("not-an-int", 1, "ORD-2025-0001", "pending", "PKR", float64(500), float64(0),
						float64(85), float64(150), float64(735), createdAt, createdAt, nil, nil, nil)
				mock.ExpectQuery("SELECT (.+) FROM orders WHERE user_id = \\$1 ORDER BY created_at DESC").
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			orders, err := repo.FindOrdersByUserID(context.Background(), 1)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, orders, tt.count)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
