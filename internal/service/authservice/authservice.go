package authservice

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/sellerboard/sellerboard/internal/domain"
	"github.com/sellerboard/sellerboard/internal/handlers/dashboard"
	"github.com/sellerboard/sellerboard/pkg/auth"
)

type Repo interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type Service struct {
	userRepo         Repo
	dashboardService dashboard.Service
	hashService      auth.HashServiceInterface
	jwtService       auth.JWTServiceInterface
	validate         *validator.Validate
}

func New(repo Repo, dashboardService dashboard.Service, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:         repo,
		dashboardService: dashboardService,
		hashService:      hashService,
		jwtService:       jwtService,
		validate:         validator.New(),
	}
}

var (
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrInvalidEmail       = errors.New("invalid email address")
)

// Register creates the user and their zero-valued dashboard. Credentials are
// always stored as a bcrypt hash.
func (s *Service) Register(ctx context.Context, username, email, phoneNumber, password string) (*domain.User, error) {
	if err := s.validate.Var(email, "required,email"); err != nil {
		return nil, ErrInvalidEmail
	}

	existingUser, err := s.userRepo.FindByUsernameOrEmail(ctx, username, email)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("username", username))
		return nil, domain.ErrUserExists
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		Username:     username,
		Email:        email,
		PhoneNumber:  phoneNumber,
		PasswordHash: hashedPassword,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	_, err = s.dashboardService.CreateDashboard(ctx, newUser.ID)
	if err != nil {
		zap.L().Error("can't create dashboard: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("username", username))
	return newUser, nil
}

// Authenticate is keyed by email. The same error is returned whether the
// email is unknown or the password is wrong.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil || user == nil {
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("username", user.Username))
	return user, nil
}

func (s *Service) GenerateToken(username string) (string, error) {
	token, err := s.jwtService.GenerateJWT(username)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

func (s *Service) TokenTTLSeconds() int {
	return int(s.jwtService.TTL().Seconds())
}

func (s *Service) GetUserByID(ctx context.Context, id int) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// FindByUsername satisfies the auth middleware's UserProvider.
func (s *Service) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.userRepo.FindByUsername(ctx, username)
}
