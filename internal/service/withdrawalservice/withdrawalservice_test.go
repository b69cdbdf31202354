package withdrawalservice

import (
	"context"
	"errors"
	"regexp"
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

func TestCreate(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		method        string
		phoneNumber   string
		amount        float64
		currency      string
		prepareMock   func()
		check         func(t *testing.T, w *domain.Withdrawal)
		expectedError error
	}{
		{
			name:        "Successful easypaisa withdrawal",
			method:      "easypaisa",
			phoneNumber: "03001234567",
			amount:      100,
			currency:    "",
			prepareMock: func() {
				repo.EXPECT().CreateWithdrawal(context.Background(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, w *domain.Withdrawal) (*domain.Withdrawal, error) {
						w.ID = 1
						w.Status = "pending"
						return w, nil
					})
			},
			check: func(t *testing.T, w *domain.Withdrawal) {
				assert.Equal(t, MethodEasypaisa, w.Method)
				assert.Equal(t, "PKR", w.Currency)
				assert.Equal(t, "pending", w.Status)
				assert.Regexp(t, regexp.MustCompile(`^TXN\d{14}[0-9A-F]{8}$`), w.TransactionID)
			},
		},
		{
			name:        "Method is case-insensitive",
			method:      "JazzCash",
			phoneNumber: "03007654321",
			amount:      50,
			currency:    "pkr",
			prepareMock: func() {
				repo.EXPECT().CreateWithdrawal(context.Background(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, w *domain.Withdrawal) (*domain.Withdrawal, error) {
						w.ID = 2
						w.Status = "pending"
						return w, nil
					})
			},
			check: func(t *testing.T, w *domain.Withdrawal) {
				assert.Equal(t, MethodJazzcash, w.Method)
				assert.Equal(t, "PKR", w.Currency)
			},
		},
		{
			name:          "Unsupported method",
			method:        "paypal",
			phoneNumber:   "03001234567",
			amount:        100,
			prepareMock:   func() {},
			expectedError: ErrInvalidMethod,
		},
		{
			name:          "Zero amount",
			method:        "easypaisa",
			phoneNumber:   "03001234567",
			amount:        0,
			prepareMock:   func() {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:          "Negative amount",
			method:        "easypaisa",
			phoneNumber:   "03001234567",
			amount:        -5,
			prepareMock:   func() {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:        "Insufficient balance",
			method:      "easypaisa",
			phoneNumber: "03001234567",
			amount:      100000,
			prepareMock: func() {
				repo.EXPECT().CreateWithdrawal(context.Background(), gomock.Any()).Return(nil, domain.ErrInsufficientBalance)
			},
			expectedError: domain.ErrInsufficientBalance,
		},
		{
			name:        "Repository error",
			method:      "jazzcash",
			phoneNumber: "03001234567",
			amount:      100,
			prepareMock: func() {
				repo.EXPECT().CreateWithdrawal(context.Background(), gomock.Any()).Return(nil, errors.New("insert error"))
			},
			expectedError: errors.New("insert error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			withdrawal, err := service.Create(context.Background(), 1, tt.method, tt.phoneNumber, tt.amount, tt.currency)

			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, withdrawal)
			} else {
				assert.NoError(t, err)
				tt.check(t, withdrawal)
			}
		})
	}
}

func TestGetHistory(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expected      []domain.Withdrawal
		expectedError error
	}{
		{
			name: "History returned",
			prepareMock: func() {
				repo.EXPECT().GetByUserID(context.Background(), 1).Return([]domain.Withdrawal{
					{ID: 2, UserID: 1, Amount: 200},
					{ID: 1, UserID: 1, Amount: 100},
				}, nil)
			},
			expected: []domain.Withdrawal{
				{ID: 2, UserID: 1, Amount: 200},
				{ID: 1, UserID: 1, Amount: 100},
			},
		},
		{
			name: "Repository error",
			prepareMock: func() {
				repo.EXPECT().GetByUserID(context.Background(), 1).Return(nil, errors.New("select error"))
			},
			expectedError: errors.New("select error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			withdrawals, err := service.GetHistory(context.Background(), 1)

			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, withdrawals)
		})
	}
}

func TestGet(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		id            int
		prepareMock   func()
		expected      *domain.Withdrawal
		expectedError error
	}{
		{
			name: "Withdrawal found",
			id:   7,
			prepareMock: func() {
				repo.EXPECT().GetByID(context.Background(), 1, 7).Return(&domain.Withdrawal{ID: 7, UserID: 1}, nil)
			},
			expected: &domain.Withdrawal{ID: 7, UserID: 1},
		},
		{
			name: "Withdrawal not found",
			id:   99,
			prepareMock: func() {
				repo.EXPECT().GetByID(context.Background(), 1, 99).Return(nil, nil)
			},
			expectedError: domain.ErrWithdrawalNotFound,
		},
		{
			name: "Repository error",
			id:   7,
			prepareMock: func() {
				repo.EXPECT().GetByID(context.Background(), 1, 7).Return(nil, errors.New("select error"))
			},
			expectedError: errors.New("select error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			withdrawal, err := service.Get(context.Background(), 1, tt.id)

			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, withdrawal)
		})
	}
}

func TestGenerateTransactionID(t *testing.T) {
	id1 := generateTransactionID()
	id2 := generateTransactionID()

	assert.Regexp(t, regexp.MustCompile(`^TXN\d{14}[0-9A-F]{8}$`), id1)
	assert.NotEqual(t, id1, id2)
}
