package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Sudeep845/Raktsewa-sub001/internal/pkg/logging"
	"github.com/Sudeep845/Raktsewa-sub001/internal/rewards/domain"
	"github.com/google/uuid"
)

const (
	defaultRedeemTimeout = 5 * time.Second
	appendTimeout        = 3 * time.Second
	releaseTimeout       = 3 * time.Second

	maxConflictRetries  = 3
	conflictBackoffBase = 20 * time.Millisecond
)

type RedeemResult struct {
	RedemptionId    string
	PointsSpent     uint32
	PointsRemaining uint32
}

// RedeemCase orchestrates one redemption attempt: validate item and account,
// reserve stock, debit points, append the outcome record. Stock is reserved
// before the debit; a reservation whose debit does not go through is always
// released, on every exit path.
type RedeemCase struct {
	catalog domain.RewardCatalog
	ledger  domain.AccountLedger
	txLog   domain.TransactionLog
	audit   *domain.AuditBroadcaster
	logger  logging.Logger

	timeout time.Duration
}

func NewRedeemCase(
	catalog domain.RewardCatalog,
	ledger domain.AccountLedger,
	txLog domain.TransactionLog,
	audit *domain.AuditBroadcaster,
	logger logging.Logger,
) *RedeemCase {
	return &RedeemCase{
		catalog: catalog,
		ledger:  ledger,
		txLog:   txLog,
		audit:   audit,
		logger:  logger,
		timeout: defaultRedeemTimeout,
	}
}

func (rc *RedeemCase) Redeem(ctx context.Context, accountId, itemId int64) (RedeemResult, error) {
	ctx, cancel := context.WithTimeout(ctx, rc.timeout)
	defer cancel()

	redemptionId := uuid.NewString()

	item, err := rc.catalog.GetItem(ctx, itemId)
	if err != nil {
		return rc.abort(ctx, redemptionId, accountId, itemId, 0, err)
	}

	if !item.Active {
		return rc.abort(ctx, redemptionId, accountId, itemId, item.PointsCost,
			&domain.ItemInactiveError{Msg: fmt.Sprintf("item %d is not redeemable", itemId)})
	}

	if _, err := rc.ledger.GetBalance(ctx, accountId); err != nil {
		return rc.abort(ctx, redemptionId, accountId, itemId, item.PointsCost, err)
	}

	err = rc.withConflictRetries(ctx, func() error {
		return rc.catalog.TryReserveStock(ctx, itemId)
	})
	if err != nil {
		return rc.abort(ctx, redemptionId, accountId, itemId, item.PointsCost, err)
	}

	// The reservation is held until the debit resolves or the release
	// completes, even if the debit panics.
	reserved := true
	defer func() {
		if reserved {
			rc.releaseStock(ctx, itemId, redemptionId)
		}
	}()

	var remaining uint32
	err = rc.withConflictRetries(ctx, func() error {
		var debitErr error
		remaining, debitErr = rc.ledger.TryDebit(ctx, accountId, item.PointsCost)
		return debitErr
	})
	if err != nil {
		rc.releaseStock(ctx, itemId, redemptionId)
		reserved = false
		return rc.abort(ctx, redemptionId, accountId, itemId, item.PointsCost, err)
	}
	reserved = false

	record := domain.RedemptionRecord{
		RedemptionId: redemptionId,
		AccountId:    accountId,
		ItemId:       itemId,
		PointsSpent:  item.PointsCost,
		Outcome:      domain.OutcomeCommitted,
		CreatedAt:    time.Now().UTC(),
	}

	if err := rc.append(ctx, record); err != nil {
		// Both mutations are already visible but there is no durable record.
		// The caller must treat this as a reconciliation condition, not a
		// silent success.
		rc.logger.Error("redemption mutations applied but record append failed, reconciliation required",
			"redemptionId", redemptionId, "accountId", accountId, "itemId", itemId, "error", err)
		return RedeemResult{}, &domain.InternalError{Msg: "failed to append redemption record", Err: err}
	}

	rc.audit.Publish(record)

	return RedeemResult{
		RedemptionId:    redemptionId,
		PointsSpent:     item.PointsCost,
		PointsRemaining: remaining,
	}, nil
}

// abort appends the failure record for an attempt that made no net mutation
// and hands the typed cause back to the caller.
func (rc *RedeemCase) abort(ctx context.Context, redemptionId string, accountId, itemId int64, pointsCost uint32, cause error) (RedeemResult, error) {
	reason := failReasonFor(cause)
	if reason == domain.ReasonInternal && !errors.Is(cause, &domain.InternalError{}) {
		cause = &domain.InternalError{Msg: "redemption failed", Err: cause}
	}

	record := domain.RedemptionRecord{
		RedemptionId: redemptionId,
		AccountId:    accountId,
		ItemId:       itemId,
		PointsSpent:  pointsCost,
		Outcome:      domain.OutcomeFailed,
		FailReason:   reason,
		CreatedAt:    time.Now().UTC(),
	}

	if err := rc.append(ctx, record); err != nil {
		rc.logger.Error("failed to append redemption failure record",
			"redemptionId", redemptionId, "cause", cause, "error", err)
		return RedeemResult{}, &domain.InternalError{Msg: "failed to record redemption outcome", Err: err}
	}

	rc.audit.Publish(record)

	return RedeemResult{}, cause
}

// append writes the record detached from the caller's cancellation: once the
// attempt has an outcome, losing the record because the request context
// expired would leave the attempt unaccounted for.
func (rc *RedeemCase) append(ctx context.Context, record domain.RedemptionRecord) error {
	appendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), appendTimeout)
	defer cancel()

	return rc.txLog.Append(appendCtx, record)
}

func (rc *RedeemCase) releaseStock(ctx context.Context, itemId int64, redemptionId string) {
	releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
	defer cancel()

	if err := rc.catalog.ReleaseStock(releaseCtx, itemId); err != nil {
		rc.logger.Error("failed to release reserved stock, reconciliation required",
			"redemptionId", redemptionId, "itemId", itemId, "error", err)
	}
}

func (rc *RedeemCase) withConflictRetries(ctx context.Context, op func() error) error {
	for attempt := 0; ; attempt++ {
		err := op()
		if err == nil || !errors.Is(err, &domain.ConflictError{}) || attempt >= maxConflictRetries {
			return err
		}

		select {
		case <-ctx.Done():
			return &domain.ConflictError{Msg: "redemption timed out during contention retries"}
		case <-time.After(conflictBackoffBase << attempt):
		}
	}
}

func failReasonFor(err error) domain.FailReason {
	switch {
	case errors.Is(err, &domain.AccountNotFoundError{}), errors.Is(err, &domain.ItemNotFoundError{}):
		return domain.ReasonNotFound
	case errors.Is(err, &domain.ItemInactiveError{}):
		return domain.ReasonInactive
	case errors.Is(err, &domain.OutOfStockError{}):
		return domain.ReasonOutOfStock
	case errors.Is(err, &domain.InsufficientPointsError{}):
		return domain.ReasonInsufficientPoints
	case errors.Is(err, &domain.ConflictError{}):
		return domain.ReasonConflict
	default:
		return domain.ReasonInternal
	}
}
