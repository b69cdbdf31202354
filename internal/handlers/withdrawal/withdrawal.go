package withdrawal

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sellerboard/sellerboard/internal/domain"
	"github.com/sellerboard/sellerboard/internal/dto"
	"github.com/sellerboard/sellerboard/internal/service/withdrawalservice"
	"github.com/sellerboard/sellerboard/pkg/auth"
	"github.com/sellerboard/sellerboard/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, userID int, method, phoneNumber string, amount float64, currency string) (*domain.Withdrawal, error)
	GetHistory(ctx context.Context, userID int) ([]domain.Withdrawal, error)
	Get(ctx context.Context, userID, id int) (*domain.Withdrawal, error)
}

type WithdrawalHandler struct {
	withdrawalService Service
}

func New(withdrawalService Service) *WithdrawalHandler {
	return &WithdrawalHandler{
		withdrawalService: withdrawalService,
	}
}

// Create godoc
//
//	@Summary		Request a withdrawal
//	@Description	Debit the caller's balance and record a pending payout to easypaisa or jazzcash
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawalRequestDTO	true	"Withdrawal request body"
//	@Success		200		{object}	dto.WithdrawalResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid method, amount or insufficient balance"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/withdraw [post]
func (h *WithdrawalHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.WithdrawalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	withdrawal, err := h.withdrawalService.Create(r.Context(), userID, req.Method, req.PhoneNumber, req.Amount, req.Currency)
	if err != nil {
		switch {
		case errors.Is(err, withdrawalservice.ErrInvalidMethod),
			errors.Is(err, withdrawalservice.ErrInvalidAmount),
			errors.Is(err, domain.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(withdrawal))
}

// History godoc
//
//	@Summary		List withdrawal history
//	@Description	Return the caller's withdrawals, newest first
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WithdrawalResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/withdraw/history [get]
func (h *WithdrawalHandler) History(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	withdrawals, err := h.withdrawalService.GetHistory(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.WithdrawalResponseDTO, 0, len(withdrawals))
	for i := range withdrawals {
		response = append(response, toResponseDTO(&withdrawals[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetByID godoc
//
//	@Summary		Get a single withdrawal
//	@Description	Return one of the caller's withdrawals by id
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Withdrawal ID"
//	@Success		200	{object}	dto.WithdrawalResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid withdrawal id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Withdrawal not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/withdraw/{id} [get]
func (h *WithdrawalHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid withdrawal id")
		return
	}

	withdrawal, err := h.withdrawalService.Get(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, domain.ErrWithdrawalNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(withdrawal))
}

func toResponseDTO(wd *domain.Withdrawal) dto.WithdrawalResponseDTO {
	return dto.WithdrawalResponseDTO{
		ID:            wd.ID,
		Method:        wd.Method,
		PhoneNumber:   wd.PhoneNumber,
		Amount:        wd.Amount,
		Currency:      wd.Currency,
		Status:        wd.Status,
		TransactionID: wd.TransactionID,
		CreatedAt:     wd.CreatedAt,
	}
}
