package withdrawalrepo

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
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const withdrawalColumns = "id, user_id, method, phone_number, amount, currency, status, transaction_id, created_at, processed_at"

// CreateWithdrawal decrements the owner's dashboard balance and records the
// withdrawal in one transaction. The balance check and decrement are a single
// conditional UPDATE, so concurrent withdrawals cannot overdraw.
func (r *Repository) CreateWithdrawal(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error) {
	debitQuery := `
		UPDATE dashboards
		SET balance = balance - $1, updated_at = now()
		WHERE user_id = $2 AND balance >= $1
	`
	insertQuery := `
		INSERT INTO withdrawals (user_id, method, phone_number, amount, currency, transaction_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, status, created_at
	`
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, debitQuery, withdrawal.Amount, withdrawal.UserID)
		if err != nil {
			zap.L().Error("can't debit dashboard balance", zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrInsufficientBalance
		}

		err = r.db.QueryRow(ctx, insertQuery,
			withdrawal.UserID, withdrawal.Method, withdrawal.PhoneNumber,
			withdrawal.Amount, withdrawal.Currency, withdrawal.TransactionID).
			Scan(&withdrawal.ID, &withdrawal.Status, &withdrawal.CreatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				return domain.ErrDuplicateTransactionID
			}
			zap.L().Error("can't save withdrawal", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return withdrawal, nil
}

func (r *Repository) GetByUserID(ctx context.Context, userID int) ([]domain.Withdrawal, error) {
	query := `
        SELECT ` + withdrawalColumns + `
        FROM withdrawals
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.Withdrawal
	for rows.Next() {
		var wd domain.Withdrawal
		err := rows.Scan(&wd.ID, &wd.UserID, &wd.Method, &wd.PhoneNumber, &wd.Amount,
			&wd.Currency, &wd.Status, &wd.TransactionID, &wd.CreatedAt, &wd.ProcessedAt)
		if err != nil {
			zap.L().Error("failed to scan withdrawal row", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, wd)
	}

	return withdrawals, nil
}

// GetByID is scoped to the owner: a withdrawal belonging to another user is
// indistinguishable from one that does not exist.
func (r *Repository) GetByID(ctx context.Context, userID, id int) (*domain.Withdrawal, error) {
	query := `
        SELECT ` + withdrawalColumns + `
        FROM withdrawals
        WHERE id = $1 AND user_id = $2
    `
	var wd domain.Withdrawal
	err := r.db.QueryRow(ctx, query, id, userID).
		Scan(&wd.ID, &wd.UserID, &wd.Method, &wd.PhoneNumber, &wd.Amount,
			&wd.Currency, &wd.Status, &wd.TransactionID, &wd.CreatedAt, &wd.ProcessedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find withdrawal", zap.Error(err))
		return nil, err
	}
	return &wd, nil
}
