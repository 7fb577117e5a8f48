package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Store is the single source of truth for the active notification
// set. It owns insertion order, per-record expiry timers, and change
// subscriptions. Expiry timers fire on their own goroutines, so all
// state is guarded by a mutex; every mutation dispatches the new
// snapshot to subscribers outside the lock.
type Store struct {
	mu         sync.Mutex
	clock      Clock
	archive    Archive
	defaultDur time.Duration
	errorDur   time.Duration
	records    []Record
	timers     map[string]Timer
	subs       map[int]func([]Record)
	nextSub    int
	seq        uint64 // commit order stamp, guarded by mu

	// dispatchMu serializes subscriber delivery so snapshots arrive
	// in commit order even when a timer goroutine races a caller.
	dispatchMu sync.Mutex
	delivered  uint64 // guarded by dispatchMu
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the system clock. Used by tests to drive expiry
// deterministically.
func WithClock(c Clock) Option {
	return func(s *Store) { s.clock = c }
}

// WithArchive persists every added record to the given archive.
func WithArchive(a Archive) Option {
	return func(s *Store) { s.archive = a }
}

// WithDurationPolicy overrides the default auto-expiry durations.
// The policy lives only here; facades and surfaces never duplicate it.
func WithDurationPolicy(general, errorKind time.Duration) Option {
	return func(s *Store) {
		s.defaultDur = general
		s.errorDur = errorKind
	}
}

// NewStore creates an empty store. Each surface and facade should
// share one instance; independent stores are only useful in tests.
func NewStore(opts ...Option) *Store {
	s := &Store{
		clock:      systemClock{},
		defaultDur: DefaultDuration,
		errorDur:   DefaultErrorDuration,
		timers:     make(map[string]Timer),
		subs:       make(map[int]func([]Record)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add validates the spec, assigns a fresh id, appends the record in
// insertion order, and schedules auto-expiry when the effective
// duration is positive. The returned id is the sole removal key.
func (s *Store) Add(spec Spec) (string, error) {
	if err := spec.Validate(); err != nil {
		return "", err
	}

	r := Record{
		ID:        uuid.NewString(),
		Kind:      spec.Kind,
		Title:     spec.Title,
		Message:   spec.Message,
		Duration:  s.effectiveDuration(spec),
		Actions:   spec.Actions,
		Source:    spec.Source,
		CreatedAt: s.clock.Now(),
	}

	s.mu.Lock()
	s.records = append(s.records, r)
	if r.Duration > 0 {
		id := r.ID
		s.timers[id] = s.clock.AfterFunc(r.Duration, func() {
			s.Remove(id)
		})
	}
	s.seq++
	seq, snap, subs := s.seq, s.snapshotLocked(), s.subscribersLocked()
	s.mu.Unlock()

	if s.archive != nil {
		if err := s.archive.Save(context.Background(), r); err != nil {
			log.Error().Err(err).Str("title", r.Title).Msg("failed to archive notification")
		}
	}

	s.dispatch(seq, subs, snap)
	return r.ID, nil
}

// Remove deletes the record with the given id and cancels its pending
// expiry timer. Removing an absent id is a no-op; a timer that has
// already fired into this path finds the id gone and does nothing.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	idx := -1
	for i, r := range s.records {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return
	}

	if t, ok := s.timers[id]; ok {
		t.Stop()
		delete(s.timers, id)
	}
	s.records = append(s.records[:idx], s.records[idx+1:]...)
	s.seq++
	seq, snap, subs := s.seq, s.snapshotLocked(), s.subscribersLocked()
	s.mu.Unlock()

	s.dispatch(seq, subs, snap)
}

// ClearAll empties the active set and cancels every pending timer.
// Subscribers observe a single transition to the empty snapshot.
func (s *Store) ClearAll() {
	s.mu.Lock()
	if len(s.records) == 0 {
		s.mu.Unlock()
		return
	}

	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
	s.records = nil
	s.seq++
	seq, snap, subs := s.seq, s.snapshotLocked(), s.subscribersLocked()
	s.mu.Unlock()

	s.dispatch(seq, subs, snap)
}

// Snapshot returns a copy of the active set in insertion order,
// oldest first.
func (s *Store) Snapshot() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Get returns the active record with the given id.
func (s *Store) Get(id string) (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.records {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}

// Len returns the number of active records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Subscribe registers fn to receive the new snapshot after every
// change. Delivery is serialized in commit order; a snapshot that has
// been superseded before delivery is dropped. fn runs outside the
// state lock but must not mutate the store synchronously — hand the
// snapshot off to another goroutine instead (see NotificationBuffer).
// The returned function unsubscribes; calling it more than once is
// harmless.
func (s *Store) Subscribe(fn func([]Record)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Invoke runs the indexed action's effect and then removes the
// record. Removal happens after the effect has been attempted,
// regardless of its outcome; the effect's error is returned to the
// caller. Invoking against an absent id is a no-op.
func (s *Store) Invoke(id string, action int) error {
	s.mu.Lock()
	var rec Record
	found := false
	for _, r := range s.records {
		if r.ID == id {
			rec, found = r, true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return nil
	}
	if action < 0 || action >= len(rec.Actions) {
		return fmt.Errorf("notification %s has no action %d", id, action)
	}

	defer s.Remove(id)

	if effect := rec.Actions[action].Effect; effect != nil {
		return effect()
	}
	return nil
}

// effectiveDuration resolves a spec's duration against the store's
// policy. An explicit zero or negative value means sticky.
func (s *Store) effectiveDuration(spec Spec) time.Duration {
	if spec.Duration != nil {
		return *spec.Duration
	}
	if spec.Kind == KindError {
		return s.errorDur
	}
	return s.defaultDur
}

func (s *Store) snapshotLocked() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store) subscribersLocked() []func([]Record) {
	out := make([]func([]Record), 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}

// dispatch delivers a snapshot stamped with its commit sequence. A
// timer goroutine that computed its snapshot first but lost the race
// to a newer mutation would otherwise deliver stale state last; such
// snapshots are dropped here, so subscribers always converge on the
// current one.
func (s *Store) dispatch(seq uint64, subs []func([]Record), snap []Record) {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	if seq < s.delivered {
		return
	}
	s.delivered = seq

	for _, fn := range subs {
		fn(snap)
	}
}
