package withdrawalservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sellerboard/sellerboard/internal/domain"
)

type Repo interface {
	CreateWithdrawal(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error)
	GetByUserID(ctx context.Context, userID int) ([]domain.Withdrawal, error)
	GetByID(ctx context.Context, userID, id int) (*domain.Withdrawal, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

const (
	MethodEasypaisa = "easypaisa"
	MethodJazzcash  = "jazzcash"

	defaultCurrency = "PKR"
)

var (
	ErrInvalidMethod = errors.New("invalid withdrawal method. Use 'easypaisa' or 'jazzcash'")
	ErrInvalidAmount = errors.New("withdrawal amount must be greater than 0")
)

func (s *Service) Create(ctx context.Context, userID int, method, phoneNumber string, amount float64, currency string) (*domain.Withdrawal, error) {
	method = strings.ToLower(method)
	if method != MethodEasypaisa && method != MethodJazzcash {
		return nil, ErrInvalidMethod
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if currency == "" {
		currency = defaultCurrency
	}

	withdrawal := &domain.Withdrawal{
		UserID:        userID,
		Method:        method,
		PhoneNumber:   phoneNumber,
		Amount:        amount,
		Currency:      strings.ToUpper(currency),
		TransactionID: generateTransactionID(),
	}

	withdrawal, err := s.repo.CreateWithdrawal(ctx, withdrawal)
	if err != nil {
		if !errors.Is(err, domain.ErrInsufficientBalance) {
			zap.L().Error("failed to create withdrawal", zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("withdrawal created",
		zap.Int("user_id", userID),
		zap.String("transaction_id", withdrawal.TransactionID),
		zap.Float64("amount", amount),
	)
	return withdrawal, nil
}

func (s *Service) GetHistory(ctx context.Context, userID int) ([]domain.Withdrawal, error) {
	withdrawals, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}

func (s *Service) Get(ctx context.Context, userID, id int) (*domain.Withdrawal, error) {
	withdrawal, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		zap.L().Error("failed to get withdrawal", zap.Error(err))
		return nil, err
	}
	if withdrawal == nil {
		return nil, domain.ErrWithdrawalNotFound
	}
	return withdrawal, nil
}

// generateTransactionID builds an external-facing id: a TXN prefix, the
// current UTC timestamp to the second, and 8 uppercase characters of a
// random uuid. The withdrawals table enforces uniqueness as a backstop.
func generateTransactionID() string {
	ts := time.Now().UTC().Format("20060102150405")
	entropy := strings.ToUpper(uuid.NewString()[:8])
	return fmt.Sprintf("TXN%s%s", ts, entropy)
}
