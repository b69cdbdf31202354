package orderservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/sellerboard/sellerboard/internal/domain"
)

type Repo interface {
	FindOrdersByUserID(ctx context.Context, userID int) ([]domain.Order, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// Order status values. Orders are recorded by an external fulfillment
// process; this service only reads them and never advances the status.
// The constants enumerate the full set that process writes, so consumers
// can filter or group without hardcoding strings.
const (
	StatusPending   = "pending"
	StatusPaid      = "paid"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
	StatusRefunded  = "refunded"
)

func (s *Service) GetOrders(ctx context.Context, userID int) ([]domain.Order, error) {
	orders, err := s.repo.FindOrdersByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}
