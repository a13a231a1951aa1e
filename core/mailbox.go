package core

import (
	"context"
	"sync"
)

// mailboxEntry pairs an envelope with the tracker that resolves once it is
// handled.
type mailboxEntry struct {
	envelope *Envelope
	tracker  *EnvelopeTracker
}

// mailbox is an unbounded, FIFO, single-consumer queue. Per spec.md §3
// ("unbounded mailbox") posting never blocks; Dequeue blocks (respecting a
// context) until an entry is available.
type mailbox struct {
	mu      sync.Mutex
	entries []mailboxEntry
	notify  chan struct{}
}

func newMailbox() *mailbox {
	return &mailbox{notify: make(chan struct{}, 1)}
}

// Push enqueues entry without blocking.
func (m *mailbox) Push(entry mailboxEntry) {
	m.mu.Lock()
	m.entries = append(m.entries, entry)
	m.mu.Unlock()

	select {
	case m.notify <- struct{}{}:
	default:
	}
}

// Dequeue blocks until an entry is available or ctx is cancelled.
func (m *mailbox) Dequeue(ctx context.Context) (mailboxEntry, error) {
	for {
		m.mu.Lock()
		if len(m.entries) > 0 {
			entry := m.entries[0]
			m.entries = m.entries[1:]
			m.mu.Unlock()
			return entry, nil
		}
		m.mu.Unlock()

		select {
		case <-ctx.Done():
			return mailboxEntry{}, ctx.Err()
		case <-m.notify:
		}
	}
}
