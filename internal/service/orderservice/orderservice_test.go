package orderservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/sellerboard/sellerboard/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestGetOrders(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expected      []domain.Order
		expectedError error
	}{
		{
			name: "Orders returned",
			prepareMock: func() {
				repo.EXPECT().FindOrdersByUserID(context.Background(), 1).Return([]domain.Order{
					{ID: 2, UserID: 1, OrderNumber: "ORD-2025-0002", Status: StatusPaid},
					{ID: 1, UserID: 1, OrderNumber: "ORD-2025-0001", Status: StatusDelivered},
				}, nil)
			},
			expected: []domain.Order{
				{ID: 2, UserID: 1, OrderNumber: "ORD-2025-0002", Status: StatusPaid},
				{ID: 1, UserID: 1, OrderNumber: "ORD-2025-0001", Status: StatusDelivered},
			},
		},
		{
			name: "No orders",
			prepareMock: func() {
				repo.EXPECT().FindOrdersByUserID(context.Background(), 1).Return(nil, nil)
			},
			expected: nil,
		},
		{
			name: "Repository error",
			prepareMock: func() {
				repo.EXPECT().FindOrdersByUserID(context.Background(), 1).Return(nil, errors.New("select error"))
			},
			expectedError: errors.New("select error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			orders, err := service.GetOrders(context.Background(), 1)

			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, orders)
		})
	}
}
