package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditBroadcaster_DeliversToAllSubscribers(t *testing.T) {
	t.Parallel()

	b := NewAuditBroadcaster()

	first, cancelFirst := b.Subscribe(1)
	defer cancelFirst()
	second, cancelSecond := b.Subscribe(1)
	defer cancelSecond()

	record := RedemptionRecord{
		RedemptionId: "r-1",
		AccountId:    1,
		ItemId:       2,
		PointsSpent:  300,
		Outcome:      OutcomeCommitted,
		CreatedAt:    time.Now(),
	}
	b.Publish(record)

	select {
	case got := <-first:
		assert.Equal(t, record, got)
	default:
		t.Fatal("first subscriber did not receive the record")
	}

	select {
	case got := <-second:
		assert.Equal(t, record, got)
	default:
		t.Fatal("second subscriber did not receive the record")
	}

	assert.Zero(t, b.Dropped())
}

func TestAuditBroadcaster_FullSubscriberDoesNotBlock(t *testing.T) {
	t.Parallel()

	b := NewAuditBroadcaster()

	ch, cancel := b.Subscribe(1)
	defer cancel()

	b.Publish(RedemptionRecord{RedemptionId: "r-1"})
	b.Publish(RedemptionRecord{RedemptionId: "r-2"})

	got := <-ch
	assert.Equal(t, "r-1", got.RedemptionId)
	assert.Equal(t, uint64(1), b.Dropped())
}

func TestAuditBroadcaster_CancelStopsDelivery(t *testing.T) {
	t.Parallel()

	b := NewAuditBroadcaster()

	ch, cancel := b.Subscribe(1)
	cancel()
	// double cancel is safe
	cancel()

	b.Publish(RedemptionRecord{RedemptionId: "r-1"})

	_, open := <-ch
	require.False(t, open)
	assert.Zero(t, b.Dropped())
}
