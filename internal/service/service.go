package service

import (
	"time"

	"github.com/sellerboard/sellerboard/internal/handlers/auth"
	"github.com/sellerboard/sellerboard/internal/handlers/dashboard"
	"github.com/sellerboard/sellerboard/internal/handlers/orders"
	"github.com/sellerboard/sellerboard/internal/handlers/withdrawal"

	pkgauth "github.com/sellerboard/sellerboard/pkg/auth"

	"github.com/sellerboard/sellerboard/internal/config"
	"github.com/sellerboard/sellerboard/internal/repo"
	authservice "github.com/sellerboard/sellerboard/internal/service/authservice"
	dashboardservice "github.com/sellerboard/sellerboard/internal/service/dashboardservice"
	orderservice "github.com/sellerboard/sellerboard/internal/service/orderservice"
	withdrawalservice "github.com/sellerboard/sellerboard/internal/service/withdrawalservice"
)

type Services struct {
	AuthService       auth.Service
	DashboardService  dashboard.Service
	WithdrawalService withdrawal.Service
	OrderService      orders.Service

	// JWTService and UserProvider back the bearer-token middleware.
	JWTService   pkgauth.JWTServiceInterface
	UserProvider pkgauth.UserProvider
}

func New(repo *repo.Repositories, cfg *config.Config) *Services {
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret, time.Duration(cfg.TokenTTLMin)*time.Minute)

	dashboardService := dashboardservice.New(repo.DashboardRepo)
	withdrawalService := withdrawalservice.New(repo.WithdrawalRepo)
	orderService := orderservice.New(repo.OrderRepo)
	authService := authservice.New(repo.UserRepo, dashboardService, &pkgauth.HashService{}, jwtService)

	return &Services{
		AuthService:       authService,
		DashboardService:  dashboardService,
		WithdrawalService: withdrawalService,
		OrderService:      orderService,
		JWTService:        jwtService,
		UserProvider:      authService,
	}
}
