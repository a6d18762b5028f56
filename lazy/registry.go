package lazy

import (
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// CellID returns the stable 64-bit identity of a declared cell name. The
// registry keys its entries by it and generated code embeds it as a
// constant, so tooling can refer to cells without carrying the name.
func CellID(name string) uint64 {
	return xxhash.Sum64String(name)
}

type registryEntry struct {
	name  string
	force func() error
	ready func() bool
}

// Registry holds named cells declared together, preserving declaration
// order. It replaces ambient process-wide lookup: code that needs the cells
// takes the registry (or the cells themselves) by reference, and tests
// construct fresh registries.
type Registry struct {
	mu      sync.RWMutex
	entries map[uint64]*registryEntry
	order   []uint64
}

func NewRegistry() *Registry {
	return &Registry{
		entries: map[uint64]*registryEntry{},
	}
}

// Declare registers a named Cell whose initializer runs on first access or
// force. Declaring a name twice panics.
func Declare[T any](r *Registry, name string, init func() T) *Cell[T] {
	c := New(init)
	r.add(name, &registryEntry{
		name: name,
		force: func() error {
			c.Force()
			return nil
		},
		ready: c.Ready,
	})
	return c
}

// DeclareErr registers a named ErrCell. Declaring a name twice panics.
func DeclareErr[T any](r *Registry, name string, init func() (T, error)) *ErrCell[T] {
	c := NewErr(init)
	r.add(name, &registryEntry{
		name:  name,
		force: c.Force,
		ready: c.Ready,
	})
	return c
}

func (r *Registry) add(name string, e *registryEntry) {
	id := CellID(name)
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.entries[id]; ok {
		if prev.name != name {
			panic(fmt.Sprintf("lazy: cell names %q and %q collide on id %#x", prev.name, name, id))
		}
		panic(fmt.Sprintf("lazy: cell %q declared twice", name))
	}
	r.entries[id] = e
	r.order = append(r.order, id)
}

func (r *Registry) lookup(name string) (*registryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[CellID(name)]
	if !ok || e.name != name {
		return nil, false
	}
	return e, true
}

// Force initializes the named cell eagerly. Unknown names return an error,
// ErrCell initializer errors come back wrapped with the cell name, and Cell
// initializer panics propagate.
func (r *Registry) Force(name string) error {
	e, ok := r.lookup(name)
	if !ok {
		return fmt.Errorf("lazy: unknown cell %q", name)
	}
	if err := e.force(); err != nil {
		return fmt.Errorf("lazy: force %s: %w", name, err)
	}
	return nil
}

// ForceAll initializes every declared cell in declaration order, stopping at
// the first failure. Call it before spawning goroutines that read the cells.
func (r *Registry) ForceAll() error {
	r.mu.RLock()
	entries := make([]*registryEntry, 0, len(r.order))
	for _, id := range r.order {
		entries = append(entries, r.entries[id])
	}
	r.mu.RUnlock()

	for _, e := range entries {
		if err := e.force(); err != nil {
			return fmt.Errorf("lazy: force %s: %w", e.name, err)
		}
	}
	return nil
}

// Names returns the declared names in declaration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.order))
	for _, id := range r.order {
		names = append(names, r.entries[id].name)
	}
	return names
}

// Ready reports whether the named cell has been initialized. Unknown names
// report false.
func (r *Registry) Ready(name string) bool {
	e, ok := r.lookup(name)
	return ok && e.ready()
}

// Len returns the number of declared cells.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
