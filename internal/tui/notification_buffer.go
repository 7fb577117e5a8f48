package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/forkrul/toast/internal/core/notify"
)

type drainSnapshotMsg struct{}

// NotificationBuffer bridges store subscriptions into the Bubble Tea
// loop. Expiry timers push snapshots from their own goroutines;
// pushes are coalesced so the Update loop always drains the latest
// snapshot exactly once per signal.
type NotificationBuffer struct {
	mu     sync.Mutex
	latest []notify.Record
	dirty  bool
	signal chan struct{}
}

// NewNotificationBuffer constructs a buffer for async snapshot delivery.
func NewNotificationBuffer() *NotificationBuffer {
	return &NotificationBuffer{
		signal: make(chan struct{}, 1),
	}
}

// Push records the newest snapshot and emits a non-blocking signal.
// Safe to call from any goroutine; suitable as a Store subscriber.
func (b *NotificationBuffer) Push(snapshot []notify.Record) {
	b.mu.Lock()
	b.latest = snapshot
	b.dirty = true
	b.mu.Unlock()

	select {
	case b.signal <- struct{}{}:
	default:
	}
}

// Drain returns the latest snapshot since the previous drain.
func (b *NotificationBuffer) Drain() ([]notify.Record, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.dirty {
		return nil, false
	}
	b.dirty = false
	return b.latest, true
}

// WaitForSignal blocks until there is a snapshot ready to drain.
func (b *NotificationBuffer) WaitForSignal() tea.Cmd {
	return func() tea.Msg {
		<-b.signal
		return drainSnapshotMsg{}
	}
}
