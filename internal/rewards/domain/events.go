package domain

import (
	"sync"
	"sync/atomic"
)

// AuditBroadcaster fans appended redemption records out to in-process
// subscribers (the portal's audit views). Publish never blocks a redemption:
// a subscriber whose buffer is full misses the record and the drop is
// counted instead.
type AuditBroadcaster struct {
	mu      sync.RWMutex
	subs    map[chan RedemptionRecord]struct{}
	dropped atomic.Uint64
}

func NewAuditBroadcaster() *AuditBroadcaster {
	return &AuditBroadcaster{
		subs: make(map[chan RedemptionRecord]struct{}),
	}
}

// Subscribe registers a buffered subscription channel. The returned cancel
// function unregisters it and closes the channel.
func (b *AuditBroadcaster) Subscribe(buffer int) (<-chan RedemptionRecord, func()) {
	ch := make(chan RedemptionRecord, buffer)

	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		if _, ok := b.subs[ch]; ok {
			delete(b.subs, ch)
			close(ch)
		}
	}

	return ch, cancel
}

func (b *AuditBroadcaster) Publish(record RedemptionRecord) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for ch := range b.subs {
		select {
		case ch <- record:
		default:
			b.dropped.Add(1)
		}
	}
}

// Dropped reports how many deliveries were skipped because a subscriber
// buffer was full.
func (b *AuditBroadcaster) Dropped() uint64 {
	return b.dropped.Load()
}
