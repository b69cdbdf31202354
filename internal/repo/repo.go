package repo

import (
	"github.com/sellerboard/sellerboard/internal/pg"
	dashboardrepo "github.com/sellerboard/sellerboard/internal/repo/dashboard-repo"
	orderrepo "github.com/sellerboard/sellerboard/internal/repo/order-repo"
	userrepo "github.com/sellerboard/sellerboard/internal/repo/user-repo"
	withdrawalrepo "github.com/sellerboard/sellerboard/internal/repo/withdrawal-repo"
	"github.com/sellerboard/sellerboard/internal/service/authservice"
	"github.com/sellerboard/sellerboard/internal/service/dashboardservice"
	"github.com/sellerboard/sellerboard/internal/service/orderservice"
	"github.com/sellerboard/sellerboard/internal/service/withdrawalservice"
)

type Repositories struct {
	UserRepo       authservice.Repo
	DashboardRepo  dashboardservice.Repo
	WithdrawalRepo withdrawalservice.Repo
	OrderRepo      orderservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	dashboardRepo := dashboardrepo.New(conn, txManager)
	withdrawalRepo := withdrawalrepo.New(conn, txManager)
	orderRepo := orderrepo.New(conn)

	return &Repositories{
		UserRepo:       userRepo,
		DashboardRepo:  dashboardRepo,
		WithdrawalRepo: withdrawalRepo,
		OrderRepo:      orderRepo,
	}
}
