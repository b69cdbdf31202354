package orders

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/sellerboard/sellerboard/internal/domain"
	"github.com/sellerboard/sellerboard/pkg/auth"
)

func setup(t *testing.T) (*MockService, *OrderHandler) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockService := NewMockService(ctrl)
	handler := New(mockService)
	return mockService, handler
}

func TestOrderHandler_List(t *testing.T) {
	mockService, handler := setup(t)

	createdAt := time.Date(2025, 4, 10, 8, 0, 0, 0, time.UTC)
	paidAt := createdAt.Add(2 * time.Hour)

	tests := []struct {
		name       string
		mockSetup  func()
		wantStatus int
		wantBody   string
	}{
		{
			name: "orders returned",
			mockSetup: func() {
				mockService.EXPECT().
					GetOrders(gomock.Any(), 1).
					Return([]domain.Order{
						{
							ID:          3,
							UserID:      1,
							OrderNumber: "ORD-2025-0003",
							Status:      "paid",
							Currency:    "PKR",
							Subtotal:    1000,
							Discount:    50,
							Tax:         170,
							ShippingFee: 200,
							Total:       1320,
							CreatedAt:   createdAt,
							UpdatedAt:   createdAt,
							PaidAt:      &paidAt,
						},
					}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody: `[{"id":3,"order_number":"ORD-2025-0003","status":"paid","currency":"PKR",` +
				`"subtotal":1000,"discount":50,"tax":170,"shipping_fee":200,"total":1320,` +
				`"created_at":"2025-04-10T08:00:00Z","updated_at":"2025-04-10T08:00:00Z",` +
				`"paid_at":"2025-04-10T10:00:00Z"}]`,
		},
		{
			name: "no orders",
			mockSetup: func() {
				mockService.EXPECT().GetOrders(gomock.Any(), 1).Return(nil, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name: "service failure",
			mockSetup: func() {
				mockService.EXPECT().GetOrders(gomock.Any(), 1).Return(nil, assert.AnError)
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"message":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/orders", nil)
			ctx := context.WithValue(req.Context(), auth.UserIDKey, 1)
			w := httptest.NewRecorder()

			handler.List(w, req.WithContext(ctx))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
