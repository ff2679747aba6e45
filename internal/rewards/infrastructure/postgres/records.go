package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Sudeep845/Raktsewa-sub001/internal/pkg/database"
	"github.com/Sudeep845/Raktsewa-sub001/internal/rewards/domain"
)

// RedemptionLog persists redemption outcome records. Each append also queues
// the record on the audit outbox so external audit consumers pick it up; the
// two inserts share one transaction so no outbox entry can exist without its
// record or the other way round.
type RedemptionLog struct {
	txManager database.TxManager
}

func NewRedemptionLog(txManager database.TxManager) *RedemptionLog {
	return &RedemptionLog{
		txManager: txManager,
	}
}

func (rl *RedemptionLog) Append(ctx context.Context, record domain.RedemptionRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal redemption record: %w", err)
	}

	return rl.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		insertRecordSQL := `INSERT INTO redemptions (id, account_id, item_id, points_spent, outcome, fail_reason, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
		_, err := executor.Exec(ctx, insertRecordSQL,
			record.RedemptionId, record.AccountId, record.ItemId,
			record.PointsSpent, string(record.Outcome), string(record.FailReason), record.CreatedAt)
		if err != nil {
			return classifyError(err, "failed to insert redemption record")
		}

		insertOutboxSQL := `INSERT INTO audit_outbox (redemption_id, payload) VALUES ($1, $2)`
		_, err = executor.Exec(ctx, insertOutboxSQL, record.RedemptionId, payload)
		if err != nil {
			return classifyError(err, "failed to insert audit outbox entry")
		}

		return nil
	})
}
