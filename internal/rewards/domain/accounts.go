package domain

import "context"

type Account struct {
	Id            int64
	PointsBalance uint32
}

// AccountLedger owns donor point balances. TryDebit is the only conditional
// mutation; the balance check and the decrement must be a single atomic step
// with respect to other callers on the same account.
type AccountLedger interface {
	GetBalance(ctx context.Context, accountId int64) (uint32, error)

	// TryDebit decrements the balance by amount only if the current balance
	// covers it, returning the remaining balance. Reports
	// InsufficientPointsError without mutating otherwise.
	TryDebit(ctx context.Context, accountId int64, amount uint32) (uint32, error)

	// Credit is the compensating increment for a debit whose sibling
	// mutation failed after the debit already went through.
	Credit(ctx context.Context, accountId int64, amount uint32) error
}
