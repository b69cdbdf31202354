package dashboardservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/sellerboard/sellerboard/internal/domain"
	"github.com/sellerboard/sellerboard/internal/dto"
)

type Repo interface {
	GetByUserID(ctx context.Context, userID int) (*domain.Dashboard, error)
	Create(ctx context.Context, userID int) (*domain.Dashboard, error)
	Update(ctx context.Context, dashboard *domain.Dashboard) (*domain.Dashboard, error)
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
	maxShopRating  = 5.0
	maxCreditScore = 850
)

func (s *Service) CreateDashboard(ctx context.Context, userID int) (*domain.Dashboard, error) {
	dashboard, err := s.repo.Create(ctx, userID)
	if err != nil {
		zap.L().Error("failed to create dashboard", zap.Error(err))
		return nil, err
	}
	return dashboard, nil
}

// GetOrCreate is the single entry point for the lazy-create behavior: every
// read path that can encounter a missing dashboard goes through here.
func (s *Service) GetOrCreate(ctx context.Context, userID int) (*domain.Dashboard, error) {
	dashboard, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get dashboard", zap.Error(err))
		return nil, err
	}
	if dashboard != nil {
		return dashboard, nil
	}
	return s.CreateDashboard(ctx, userID)
}

// Update applies a partial patch: only fields present in the request
// overwrite stored values. shop_rating and credit_score are clamped rather
// than rejected.
func (s *Service) Update(ctx context.Context, userID int, patch *dto.DashboardUpdateDTO) error {
	dashboard, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return err
	}

	if patch.Balance != nil {
		dashboard.Balance = *patch.Balance
	}
	if patch.ProductsSold != nil {
		dashboard.ProductsSold = *patch.ProductsSold
	}
	if patch.Profit != nil {
		dashboard.Profit = *patch.Profit
	}
	if patch.TotalRevenue != nil {
		dashboard.TotalRevenue = *patch.TotalRevenue
	}
	if patch.TotalOrders != nil {
		dashboard.TotalOrders = *patch.TotalOrders
	}
	if patch.TotalSales != nil {
		dashboard.TotalSales = *patch.TotalSales
	}
	if patch.ProfitForecast != nil {
		dashboard.ProfitForecast = *patch.ProfitForecast
	}
	if patch.ShopFollowers != nil {
		dashboard.ShopFollowers = *patch.ShopFollowers
	}
	if patch.ShopRating != nil {
		dashboard.ShopRating = clampFloat(*patch.ShopRating, 0, maxShopRating)
	}
	if patch.CreditScore != nil {
		dashboard.CreditScore = clampInt(*patch.CreditScore, 0, maxCreditScore)
	}

	if _, err := s.repo.Update(ctx, dashboard); err != nil {
		zap.L().Error("failed to update dashboard", zap.Error(err))
		return err
	}
	return nil
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
