package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sudeep845/Raktsewa-sub001/internal/pkg/database"
	"github.com/Sudeep845/Raktsewa-sub001/internal/rewards/domain"
	"github.com/jackc/pgx/v5"
)

type LedgerRepository struct {
	db database.QueryExecuter
}

func NewLedgerRepository(db database.QueryExecuter) *LedgerRepository {
	return &LedgerRepository{
		db: db,
	}
}

func (lr *LedgerRepository) GetBalance(ctx context.Context, accountId int64) (uint32, error) {
	selectBalanceSQL := `SELECT points_balance FROM accounts WHERE id = $1`

	var balance uint32
	err := lr.db.QueryRow(ctx, selectBalanceSQL, accountId).Scan(&balance)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, &domain.AccountNotFoundError{Msg: fmt.Sprintf("account %d not found", accountId)}
		}

		return 0, classifyError(err, "failed to read account balance")
	}

	return balance, nil
}

// TryDebit is a single conditional statement: the balance check and the
// decrement happen atomically in the store, so concurrent debits on the same
// account serialize there.
func (lr *LedgerRepository) TryDebit(ctx context.Context, accountId int64, amount uint32) (uint32, error) {
	debitSQL := `UPDATE accounts SET points_balance = points_balance - $1
WHERE id = $2 AND points_balance >= $1
RETURNING points_balance`

	var remaining uint32
	err := lr.db.QueryRow(ctx, debitSQL, amount, accountId).Scan(&remaining)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Validation has already established the account exists, so no
			// matching row means the balance did not cover the amount.
			return 0, &domain.InsufficientPointsError{Msg: fmt.Sprintf("account %d cannot cover %d points", accountId, amount)}
		}

		return 0, classifyError(err, "failed to debit points")
	}

	return remaining, nil
}

func (lr *LedgerRepository) Credit(ctx context.Context, accountId int64, amount uint32) error {
	creditSQL := `UPDATE accounts SET points_balance = points_balance + $1 WHERE id = $2`

	tag, err := lr.db.Exec(ctx, creditSQL, amount, accountId)
	if err != nil {
		return classifyError(err, "failed to credit points")
	}

	if tag.RowsAffected() == 0 {
		return &domain.AccountNotFoundError{Msg: fmt.Sprintf("account %d not found", accountId)}
	}

	return nil
}
