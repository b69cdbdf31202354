package orders

import (
	"context"
	"net/http"

	"github.com/sellerboard/sellerboard/internal/domain"
	"github.com/sellerboard/sellerboard/internal/dto"
	"github.com/sellerboard/sellerboard/pkg/auth"
	"github.com/sellerboard/sellerboard/pkg/utils"
)

type Service interface {
	GetOrders(ctx context.Context, userID int) ([]domain.Order, error)
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// List godoc
//
//	@Summary		List seller orders
//	@Description	Return the caller's orders, newest first
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.OrderResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/orders [get]
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	orders, err := h.orderService.GetOrders(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.OrderResponseDTO, 0, len(orders))
	for i := range orders {
		response = append(response, toResponseDTO(&orders[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toResponseDTO(o *domain.Order) dto.OrderResponseDTO {
	return dto.OrderResponseDTO{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		Status:      o.Status,
		Currency:    o.Currency,
		Subtotal:    o.Subtotal,
		Discount:    o.Discount,
		Tax:         o.Tax,
		ShippingFee: o.ShippingFee,
		Total:       o.Total,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
		PaidAt:      o.PaidAt,
		FulfilledAt: o.FulfilledAt,
		CancelledAt: o.CancelledAt,
	}
}
