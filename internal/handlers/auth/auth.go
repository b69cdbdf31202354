package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sellerboard/sellerboard/internal/domain"
	"github.com/sellerboard/sellerboard/internal/dto"
	"github.com/sellerboard/sellerboard/internal/service/authservice"
	"github.com/sellerboard/sellerboard/pkg/auth"
	"github.com/sellerboard/sellerboard/pkg/utils"
)

type Service interface {
	Register(ctx context.Context, username, email, phoneNumber, password string) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	GenerateToken(username string) (string, error)
	TokenTTLSeconds() int
	GetUserByID(ctx context.Context, id int) (*domain.User, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Signup godoc
//
//	@Summary		Register a new seller account
//	@Description	Create a new user with a zero-valued dashboard
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SignupRequestDTO	true	"Signup request body"
//	@Success		200		{object}	dto.APIResponse
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Username or email already registered"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/auth/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.authService.Register(r.Context(), req.Username, req.Email, req.PhoneNumber, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserExists):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, authservice.ErrInvalidEmail):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.APIResponse{
		Success: true,
		Message: "User successfully registered",
		Data: map[string]any{
			"user_id":  user.ID,
			"username": user.Username,
		},
	})
}

// Login godoc
//
//	@Summary		Authenticate a seller
//	@Description	Log in with email and password and get a bearer token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.TokenResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Incorrect email or password"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.authService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		w.Header().Set("WWW-Authenticate", "Bearer")
		utils.RespondWithError(w, http.StatusUnauthorized, authservice.ErrInvalidCredentials.Error())
		return
	}
	token, err := h.authService.GenerateToken(user.Username)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TokenResponseDTO{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   h.authService.TokenTTLSeconds(),
	})
}

// Me godoc
//
//	@Summary		Get current user profile
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.UserInfoDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	user, err := h.authService.GetUserByID(r.Context(), userID)
	if err != nil || user == nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UserInfoDTO{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		CreatedAt:   user.CreatedAt,
	})
}
