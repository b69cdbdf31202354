package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sellerboard/sellerboard/internal/domain"
	"github.com/sellerboard/sellerboard/internal/dto"
	"github.com/sellerboard/sellerboard/pkg/auth"
	"github.com/sellerboard/sellerboard/pkg/utils"
)

type Service interface {
	CreateDashboard(ctx context.Context, userID int) (*domain.Dashboard, error)
	GetOrCreate(ctx context.Context, userID int) (*domain.Dashboard, error)
	Update(ctx context.Context, userID int, patch *dto.DashboardUpdateDTO) error
}

type DashboardHandler struct {
	dashboardService Service
}

func New(dashboardService Service) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Get godoc
//
//	@Summary		Get seller dashboard metrics
//	@Description	Return the caller's dashboard, creating a zero-valued one on first access
//	@Tags			Dashboard
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.DashboardResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/dashboard [get]
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	dashboard, err := h.dashboardService.GetOrCreate(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(dashboard))
}

// Update godoc
//
//	@Summary		Update seller dashboard metrics
//	@Description	Partially update dashboard fields from the JSON body and query parameters; query parameters take precedence
//	@Tags			Dashboard
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DashboardUpdateDTO	false	"Fields to update"
//	@Success		200		{object}	dto.APIResponse
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/dashboard/update [put]
func (h *DashboardHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var patch dto.DashboardUpdateDTO
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}
	if err := applyQueryParams(r, &patch); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.dashboardService.Update(r.Context(), userID, &patch); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.APIResponse{
		Success: true,
		Message: "Dashboard successfully updated",
	})
}

// applyQueryParams overlays query string values onto the patch. A value given
// both in the body and the query keeps the query value.
func applyQueryParams(r *http.Request, patch *dto.DashboardUpdateDTO) error {
	query := r.URL.Query()

	floatFields := map[string]**float64{
		"balance":         &patch.Balance,
		"profit":          &patch.Profit,
		"total_revenue":   &patch.TotalRevenue,
		"total_sales":     &patch.TotalSales,
		"profit_forecast": &patch.ProfitForecast,
		"shop_rating":     &patch.ShopRating,
	}
	for name, field := range floatFields {
		if !query.Has(name) {
			continue
		}
		value, err := strconv.ParseFloat(query.Get(name), 64)
		if err != nil {
			return &queryParamError{name: name}
		}
		*field = &value
	}

	intFields := map[string]**int{
		"products_sold":  &patch.ProductsSold,
		"total_orders":   &patch.TotalOrders,
		"shop_followers": &patch.ShopFollowers,
		"credit_score":   &patch.CreditScore,
	}
	for name, field := range intFields {
		if !query.Has(name) {
			continue
		}
		value, err := strconv.Atoi(query.Get(name))
		if err != nil {
			return &queryParamError{name: name}
		}
		*field = &value
	}
	return nil
}

type queryParamError struct {
	name string
}

func (e *queryParamError) Error() string {
	return "Invalid query parameter: " + e.name
}

func toResponseDTO(d *domain.Dashboard) dto.DashboardResponseDTO {
	return dto.DashboardResponseDTO{
		Balance:        d.Balance,
		ProductsSold:   d.ProductsSold,
		Profit:         d.Profit,
		TotalRevenue:   d.TotalRevenue,
		TotalOrders:    d.TotalOrders,
		TotalSales:     d.TotalSales,
		ProfitForecast: d.ProfitForecast,
		ShopFollowers:  d.ShopFollowers,
		ShopRating:     d.ShopRating,
		CreditScore:    d.CreditScore,
		UpdatedAt:      d.UpdatedAt,
	}
}
