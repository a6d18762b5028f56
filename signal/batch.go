package signal

import "github.com/eapache/queue"

type notification[T any] struct {
	next T
	prev T
}

// pendingQueue defers notifications in FIFO order while a batch is open.
// Allocated on first use so unbatched signals pay nothing.
type pendingQueue struct {
	q *queue.Queue
}

func (p *pendingQueue) add(n any) {
	if p.q == nil {
		p.q = queue.New()
	}
	p.q.Add(n)
}

func (p *pendingQueue) len() int {
	if p.q == nil {
		return 0
	}
	return p.q.Length()
}

func (p *pendingQueue) pop() any {
	return p.q.Remove()
}

// StartBatch opens a batch: until the matching EndBatch, SetValue stores
// values immediately but queues notifications. Batches nest.
func (s *Signal[T]) StartBatch() {
	s.mu.Lock()
	s.batchDepth++
	s.mu.Unlock()
}

// EndBatch closes the innermost batch. Closing the outermost batch flushes
// the queued notifications synchronously, in the order the writes happened,
// with the (next, prev) pair each write captured. Counts, pairs, and order
// match the unbatched equivalent.
func (s *Signal[T]) EndBatch() {
	s.mu.Lock()
	if s.batchDepth == 0 {
		s.mu.Unlock()
		panic("signal: EndBatch without StartBatch")
	}
	s.batchDepth--
	if s.batchDepth > 0 || s.pending.len() == 0 {
		s.mu.Unlock()
		return
	}
	notes := make([]notification[T], 0, s.pending.len())
	for s.pending.len() > 0 {
		notes = append(notes, s.pending.pop().(notification[T]))
	}
	obs := s.snapshotLocked()
	s.mu.Unlock()

	for _, n := range notes {
		s.dispatch(obs, n.next, n.prev)
	}
}

// Batch runs fn inside a batch.
func (s *Signal[T]) Batch(fn func()) {
	s.StartBatch()
	defer s.EndBatch()
	fn()
}
