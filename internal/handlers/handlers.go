package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sellerboard/sellerboard/docs"
	authhandlers "github.com/sellerboard/sellerboard/internal/handlers/auth"
	dashboardhandlers "github.com/sellerboard/sellerboard/internal/handlers/dashboard"
	ordershandlers "github.com/sellerboard/sellerboard/internal/handlers/orders"
	withdrawalhandlers "github.com/sellerboard/sellerboard/internal/handlers/withdrawal"
	"github.com/sellerboard/sellerboard/internal/service"
	"github.com/sellerboard/sellerboard/pkg/auth"
	"github.com/sellerboard/sellerboard/pkg/metrics"
	"github.com/sellerboard/sellerboard/pkg/utils"
)

type AuthHandler interface {
	Signup(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type DashboardHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type WithdrawalHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler       AuthHandler
	DashboardHandler  DashboardHandler
	WithdrawalHandler WithdrawalHandler
	OrderHandler      OrderHandler

	authMiddleware func(http.Handler) http.Handler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:       authhandlers.New(s.AuthService),
		DashboardHandler:  dashboardhandlers.New(s.DashboardService),
		WithdrawalHandler: withdrawalhandlers.New(s.WithdrawalService),
		OrderHandler:      ordershandlers.New(s.OrderService),
		authMiddleware:    auth.Middleware(s.JWTService, s.UserProvider),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		metrics.Middleware,
	)
	r.Get("/", root)
	r.Get("/health", health)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", h.AuthHandler.Signup)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(h.authMiddleware)
			r.Get("/me", h.AuthHandler.Me)
		})
	})
	r.Group(func(r chi.Router) {
		r.Use(h.authMiddleware)
		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/", h.DashboardHandler.Get)
			r.Put("/update", h.DashboardHandler.Update)
		})
		r.Route("/withdraw", func(r chi.Router) {
			r.Post("/", h.WithdrawalHandler.Create)
			r.Get("/history", h.WithdrawalHandler.History)
			r.Get("/{id}", h.WithdrawalHandler.GetByID)
		})
		r.Get("/order", h.OrderHandler.List)
		r.Get("/orders", h.OrderHandler.List)
	})

	return r
}

// root lists the public API surface for anyone poking the base URL.
func root(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"service": "sellerboard",
		"endpoints": map[string]string{
			"signup":            "POST /auth/signup",
			"login":             "POST /auth/login",
			"me":                "GET /auth/me",
			"dashboard":         "GET /dashboard",
			"dashboard_update":  "PUT /dashboard/update",
			"withdraw":          "POST /withdraw",
			"withdraw_history":  "GET /withdraw/history",
			"withdraw_by_id":    "GET /withdraw/{id}",
			"orders":            "GET /orders",
			"health":            "GET /health",
			"metrics":           "GET /metrics",
			"api_documentation": "GET /swagger/index.html",
		},
	})
}

func health(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
