// Package pq provides a generic binary min-heap priority queue with
// membership testing, in-place priority updates (decrease-key), and a
// deterministic FIFO tie-break among equal priorities.
package pq

import (
	"container/heap"
	"errors"
	"sort"
)

// ErrEmptyQueue is returned by Dequeue and Peek when no entries remain.
var ErrEmptyQueue = errors.New("pq: queue is empty")

// entry is one queued value with its priority, heap slot, and tie-break
// sequence number.
type entry[T comparable] struct {
	value    T
	priority float64
	seq      uint64 // assignment order; lower pops first among equal priorities
	index    int    // current heap slot, maintained by Swap
}

// entryHeap implements heap.Interface over *entry items, ordered by
// (priority, seq) ascending. The secondary seq key makes the ordering total:
// equal-priority entries leave in the order their priorities were assigned.
type entryHeap[T comparable] []*entry[T]

func (h entryHeap[T]) Len() int { return len(h) }

func (h entryHeap[T]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].seq < h[j].seq
}

func (h entryHeap[T]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *entryHeap[T]) Push(x any) {
	e := x.(*entry[T])
	e.index = len(*h)
	*h = append(*h, e)
}

func (h *entryHeap[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return e
}

// Min is a minimum priority queue over comparable values. Each value may be
// queued at most once; Update repositions an existing value instead.
// The zero value is not usable; construct with NewMin.
// Not safe for concurrent use.
type Min[T comparable] struct {
	h   entryHeap[T]
	pos map[T]*entry[T]
	seq uint64
}

// NewMin returns an empty queue with capacity hint n.
func NewMin[T comparable](n int) *Min[T] {
	return &Min[T]{
		h:   make(entryHeap[T], 0, n),
		pos: make(map[T]*entry[T], n),
	}
}

// Len returns the number of queued values.
// Complexity: O(1).
func (q *Min[T]) Len() int { return len(q.h) }

// Enqueue inserts v with the given priority and reports whether it was
// inserted. A value already present is left untouched and false is returned;
// use Update to reprioritize.
// Complexity: O(log n).
func (q *Min[T]) Enqueue(v T, priority float64) bool {
	if _, ok := q.pos[v]; ok {
		return false
	}
	e := &entry[T]{value: v, priority: priority, seq: q.seq}
	q.seq++
	q.pos[v] = e
	heap.Push(&q.h, e)

	return true
}

// Dequeue removes and returns the minimum-priority value and its priority.
// Ties pop in priority-assignment order. Returns ErrEmptyQueue when drained.
// Complexity: O(log n).
func (q *Min[T]) Dequeue() (T, float64, error) {
	if len(q.h) == 0 {
		var zero T

		return zero, 0, ErrEmptyQueue
	}
	e := heap.Pop(&q.h).(*entry[T])
	delete(q.pos, e.value)

	return e.value, e.priority, nil
}

// Peek returns the minimum-priority value without removing it.
// Complexity: O(1).
func (q *Min[T]) Peek() (T, float64, error) {
	if len(q.h) == 0 {
		var zero T

		return zero, 0, ErrEmptyQueue
	}

	return q.h[0].value, q.h[0].priority, nil
}

// Contains reports whether v is currently queued.
// Complexity: O(1).
func (q *Min[T]) Contains(v T) bool {
	_, ok := q.pos[v]

	return ok
}

// Update assigns a new priority to an already-queued v, repositioning it in
// place, and reports whether v was found. The entry's tie-break sequence is
// refreshed, so after an update it ranks as the newest among its equals,
// exactly as if it had been re-inserted.
// Complexity: O(log n).
func (q *Min[T]) Update(v T, priority float64) bool {
	e, ok := q.pos[v]
	if !ok {
		return false
	}
	e.priority = priority
	e.seq = q.seq
	q.seq++
	heap.Fix(&q.h, e.index)

	return true
}

// Values returns the queued values in heap-pop order without draining the
// queue. Intended for frontier snapshots and debugging. Entries are copied
// before sorting so the live heap's bookkeeping stays untouched.
// Complexity: O(n log n).
func (q *Min[T]) Values() []T {
	tmp := make([]entry[T], len(q.h))
	for i, e := range q.h {
		tmp[i] = *e
	}
	sort.Slice(tmp, func(i, j int) bool {
		if tmp[i].priority != tmp[j].priority {
			return tmp[i].priority < tmp[j].priority
		}

		return tmp[i].seq < tmp[j].seq
	})
	out := make([]T, len(tmp))
	for i := range tmp {
		out[i] = tmp[i].value
	}

	return out
}
