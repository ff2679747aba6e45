package domain

import (
	"context"
	"time"
)

type RedemptionOutcome string

const (
	OutcomeCommitted RedemptionOutcome = "committed"
	OutcomeFailed    RedemptionOutcome = "failed"
)

type FailReason string

const (
	ReasonNone               FailReason = ""
	ReasonNotFound           FailReason = "not_found"
	ReasonInactive           FailReason = "inactive"
	ReasonOutOfStock         FailReason = "out_of_stock"
	ReasonInsufficientPoints FailReason = "insufficient_points"
	ReasonConflict           FailReason = "conflict"
	ReasonInternal           FailReason = "internal"
)

// RedemptionRecord is the immutable outcome of one redemption attempt.
// PointsSpent is the item's cost snapshotted at redemption time, so later
// price changes never affect a past record.
type RedemptionRecord struct {
	RedemptionId string            `json:"redemptionId"`
	AccountId    int64             `json:"accountId"`
	ItemId       int64             `json:"itemId"`
	PointsSpent  uint32            `json:"pointsSpent"`
	Outcome      RedemptionOutcome `json:"outcome"`
	FailReason   FailReason        `json:"failReason,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
}

// TransactionLog is the append-only record of redemption attempts. A
// committed record may only be appended after both the stock decrement and
// the balance debit have succeeded; the append is the durable commit marker.
type TransactionLog interface {
	Append(ctx context.Context, record RedemptionRecord) error
}
