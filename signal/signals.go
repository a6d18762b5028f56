// Package signal provides a synchronous observable value container with
// ordered observers, read-only mapped views, and opt-in update batching.
package signal

import (
	"fmt"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
)

// Handler observes a value replacement. It receives the new value and the
// value it replaced.
type Handler[T any] func(next, prev T)

type observer[T any] struct {
	id uint64
	fn Handler[T]
}

// Signal holds a single value and runs registered handlers synchronously,
// in registration order, every time the value is replaced. Writing a value
// equal to the current one still notifies; use NewWithEqual to opt into
// skipping those.
//
// All methods are safe for concurrent use. Handlers run outside the
// signal's lock, so they may read or write the signal; ordering across
// goroutines is the callers' concern.
type Signal[T any] struct {
	mu         sync.RWMutex
	value      T
	equal      func(a, b T) bool
	observers  []observer[T]
	live       mapset.Set[uint64]
	nextID     uint64
	batchDepth int
	pending    pendingQueue
}

// New constructs a signal holding initial, with no observers.
func New[T any](initial T) *Signal[T] {
	return &Signal[T]{
		value: initial,
		live:  mapset.NewSet[uint64](),
	}
}

// NewWithEqual constructs a signal that skips notification when equal
// reports the written value and the replaced value as the same. The value
// is still stored.
func NewWithEqual[T any](initial T, equal func(a, b T) bool) *Signal[T] {
	s := New(initial)
	s.equal = equal
	return s
}

// Zero constructs a signal holding the zero value of T.
func Zero[T any]() *Signal[T] {
	var zero T
	return New(zero)
}

// Value returns the current value. It never runs handlers.
func (s *Signal[T]) Value() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// SetValue replaces the current value and runs every live handler with
// (next, prev). A handler panic propagates to the caller and handlers after
// the failing one do not run. Inside an open batch the notification is
// queued instead and flushed by EndBatch.
func (s *Signal[T]) SetValue(next T) {
	s.mu.Lock()
	prev := s.value
	s.value = next
	if s.equal != nil && s.equal(next, prev) {
		s.mu.Unlock()
		return
	}
	if s.batchDepth > 0 {
		s.pending.add(notification[T]{next: next, prev: prev})
		s.mu.Unlock()
		return
	}
	obs := s.snapshotLocked()
	s.mu.Unlock()

	s.dispatch(obs, next, prev)
}

// OnChange appends fn to the observer list and returns a stop function that
// removes it. Stopping is idempotent; a stop issued while a notification
// pass is running takes effect for the remainder of that pass.
func (s *Signal[T]) OnChange(fn Handler[T]) (stop func()) {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.observers = append(s.observers, observer[T]{id: id, fn: fn})
	s.live.Add(id)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if !s.live.Contains(id) {
			return
		}
		s.live.Remove(id)
		for i, ob := range s.observers {
			if ob.id == id {
				s.observers = append(s.observers[:i], s.observers[i+1:]...)
				break
			}
		}
	}
}

// must be called with s.mu held
func (s *Signal[T]) snapshotLocked() []observer[T] {
	obs := make([]observer[T], len(s.observers))
	copy(obs, s.observers)
	return obs
}

func (s *Signal[T]) dispatch(obs []observer[T], next, prev T) {
	for _, ob := range obs {
		// live is consulted per handler so stops take effect mid-pass
		if !s.live.Contains(ob.id) {
			continue
		}
		ob.fn(next, prev)
	}
}

func (s *Signal[T]) String() string {
	return fmt.Sprintf("Signal(%v)", s.Value())
}

func (s *Signal[T]) GoString() string {
	return fmt.Sprintf("Signal(%#v)", s.Value())
}
