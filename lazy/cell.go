// Package lazy provides deferred, at-most-once computed value holders and a
// registry for declaring them by name.
package lazy

import (
	"sync"
	"sync/atomic"
)

const (
	stateUninitialized uint32 = iota
	stateInitializing
	stateReady
	statePoisoned
)

// Cell holds a value computed at most once, on first access. Concurrent
// first readers block until the single winning initializer completes; once
// ready, reads are a lock-free atomic load.
//
// If the initializer panics the cell is poisoned: the panic propagates to
// the first caller and every later Get or Force re-panics with the same
// value, like sync.OnceValue. Use ErrCell for a retryable variant.
type Cell[T any] struct {
	mu    sync.Mutex
	state atomic.Uint32
	val   atomic.Pointer[T]
	init  func() T
	cause any
}

// New stores init without invoking it.
func New[T any](init func() T) *Cell[T] {
	return &Cell[T]{init: init}
}

// Get returns the computed value, running the initializer exactly once on
// first access. When T is a pointer-like type every caller sees the same
// referent.
func (c *Cell[T]) Get() T {
	if c.state.Load() == stateReady {
		return *c.val.Load()
	}
	return c.initialize()
}

func (c *Cell[T]) initialize() T {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state.Load() {
	case stateReady:
		return *c.val.Load()
	case statePoisoned:
		panic(c.cause)
	}

	c.state.Store(stateInitializing)
	done := false
	defer func() {
		if done {
			return
		}
		c.cause = recover()
		c.state.Store(statePoisoned)
		c.init = nil
		panic(c.cause)
	}()

	v := c.init()
	c.val.Store(&v)
	c.state.Store(stateReady)
	c.init = nil
	done = true
	return v
}

// Force runs the initializer if it has not run yet and discards the result.
// Call it from one goroutine before sharing the cell to pay the evaluation
// cost at a controlled point. Idempotent.
func (c *Cell[T]) Force() {
	c.Get()
}

// Ready reports whether the value has been computed. It never triggers
// initialization.
func (c *Cell[T]) Ready() bool {
	return c.state.Load() == stateReady
}

// ErrCell is a Cell whose initializer can fail with an error instead of
// panicking. A failed attempt leaves the cell uninitialized and returns the
// error; the next Get retries. The initializer runs at most once per failed
// attempt and exactly once across all successes.
type ErrCell[T any] struct {
	mu    sync.Mutex
	state atomic.Uint32
	val   atomic.Pointer[T]
	init  func() (T, error)
}

// NewErr stores init without invoking it.
func NewErr[T any](init func() (T, error)) *ErrCell[T] {
	return &ErrCell[T]{init: init}
}

// Get returns the computed value, running the initializer on first access
// and retrying on each call after a failed attempt.
func (c *ErrCell[T]) Get() (T, error) {
	if c.state.Load() == stateReady {
		return *c.val.Load(), nil
	}
	return c.initialize()
}

func (c *ErrCell[T]) initialize() (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Load() == stateReady {
		return *c.val.Load(), nil
	}

	c.state.Store(stateInitializing)
	defer func() {
		// a failed or panicking attempt leaves the cell retryable
		if c.state.Load() == stateInitializing {
			c.state.Store(stateUninitialized)
		}
	}()

	v, err := c.init()
	if err != nil {
		var zero T
		return zero, err
	}
	c.val.Store(&v)
	c.state.Store(stateReady)
	c.init = nil
	return v, nil
}

// Force runs the initializer if the cell is not ready yet, discarding the
// value. Idempotent once a run has succeeded.
func (c *ErrCell[T]) Force() error {
	_, err := c.Get()
	return err
}

// Ready reports whether the value has been computed.
func (c *ErrCell[T]) Ready() bool {
	return c.state.Load() == stateReady
}
