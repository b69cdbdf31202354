package userrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/sellerboard/sellerboard/internal/domain"
	"github.com/sellerboard/sellerboard/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const userColumns = "id, username, email, phone_number, password_hash, is_active, created_at"

func (repo *Repository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PhoneNumber, &user.PasswordHash, &user.IsActive, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := repo.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE username = $1", username)
	return repo.scanUser(row)
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := repo.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE email = $1", email)
	return repo.scanUser(row)
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	row := repo.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id)
	return repo.scanUser(row)
}

func (repo *Repository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error) {
	row := repo.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE username = $1 OR email = $2", username, email)
	return repo.scanUser(row)
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (username, email, phone_number, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_active, created_at
	`
	err := repo.db.QueryRow(ctx, query, user.Username, user.Email, user.PhoneNumber, user.PasswordHash).
		Scan(&user.ID, &user.IsActive, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrUserExists
		}
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}
