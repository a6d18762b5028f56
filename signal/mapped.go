package signal

import "fmt"

// Source is any readable value container. Signal and Mapped both satisfy
// it, so mapped views compose.
type Source[T any] interface {
	Value() T
}

// Mapped is a read-only view of a source through f. It re-evaluates
// f(source value) on every read, takes no observers, and cannot be written.
type Mapped[T, U any] struct {
	src Source[T]
	f   func(T) U
}

// Map derives a read-only view of src through f. The view always reflects
// the source's current value; mutating the source never runs f by itself.
func Map[T, U any](src Source[T], f func(T) U) *Mapped[T, U] {
	return &Mapped[T, U]{src: src, f: f}
}

// Value applies f to the source's current value.
func (m *Mapped[T, U]) Value() U {
	return m.f(m.src.Value())
}

// Mapped views present like the signal they derive from.
func (m *Mapped[T, U]) String() string {
	return fmt.Sprintf("Signal(%v)", m.Value())
}

func (m *Mapped[T, U]) GoString() string {
	return fmt.Sprintf("Signal(%#v)", m.Value())
}
