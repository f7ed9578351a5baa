package keyed

import (
	"cmp"
	"iter"

	"github.com/davidvella/heapqueue"
)

// entry is a single key/value pair together with its heap position. The
// position is kept in sync on every swap so the map lookup always lands on
// the live slot.
type entry[K comparable, V any] struct {
	key   K
	value V
	index int
}

// Queue is a key-addressable priority queue. The zero value is not usable;
// construct queues with New, NewWithPriority or NewFunc.
type Queue[K comparable, V any] struct {
	entries []*entry[K, V]
	byKey   map[K]*entry[K, V]
	less    heapqueue.LessFunc[V]
}

// New creates an empty queue ordered by the natural ordering of V.
func New[K comparable, V cmp.Ordered](opts ...Option) *Queue[K, V] {
	return newQueue[K](heapqueue.NaturalLess[V](buildOptions(opts).heapType))
}

// NewWithPriority creates an empty queue ordered by the priority derived
// from each value. The extractor is called on demand during comparisons;
// its results are never cached.
func NewWithPriority[K comparable, V any, P cmp.Ordered](priority func(V) P, opts ...Option) *Queue[K, V] {
	return newQueue[K](heapqueue.KeyLess(priority, buildOptions(opts).heapType))
}

// NewFunc creates an empty queue ordered by an explicit less function
// defining the natural order of V. The orientation option still applies.
func NewFunc[K comparable, V any](less heapqueue.LessFunc[V], opts ...Option) *Queue[K, V] {
	return newQueue[K](heapqueue.OrientLess(less, buildOptions(opts).heapType))
}

func newQueue[K comparable, V any](less heapqueue.LessFunc[V]) *Queue[K, V] {
	return &Queue[K, V]{
		entries: make([]*entry[K, V], 0),
		byKey:   make(map[K]*entry[K, V]),
		less:    less,
	}
}

// Len returns the number of entries in the queue.
func (q *Queue[K, V]) Len() int {
	return len(q.entries)
}

// Get returns the value stored under key.
func (q *Queue[K, V]) Get(key K) (V, bool) {
	e, ok := q.byKey[key]
	if !ok {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set inserts a value under key, or updates the existing value and re-ranks
// the entry.
func (q *Queue[K, V]) Set(key K, value V) {
	if e, ok := q.byKey[key]; ok {
		old := e.value
		e.value = value
		if q.less(value, old) {
			q.up(e.index)
		} else {
			q.down(e.index)
		}
		return
	}

	e := &entry[K, V]{
		key:   key,
		value: value,
		index: len(q.entries),
	}
	q.entries = append(q.entries, e)
	q.byKey[key] = e
	q.up(e.index)
}

// Remove deletes the entry stored under key and reports whether it existed.
func (q *Queue[K, V]) Remove(key K) bool {
	e, ok := q.byKey[key]
	if !ok {
		return false
	}
	q.removeAt(e.index)
	delete(q.byKey, key)
	return true
}

// Pop removes and returns the highest priority entry. The ok result is
// false when the queue is empty.
func (q *Queue[K, V]) Pop() (key K, value V, ok bool) {
	if len(q.entries) == 0 {
		return key, value, false
	}

	top := q.entries[0]
	q.removeAt(0)
	delete(q.byKey, top.key)
	return top.key, top.value, true
}

// Peek returns the highest priority entry without removing it. The ok
// result is false when the queue is empty.
func (q *Queue[K, V]) Peek() (key K, value V, ok bool) {
	if len(q.entries) == 0 {
		return key, value, false
	}
	top := q.entries[0]
	return top.key, top.value, true
}

// Drain returns a destructive iterator that pops entries in priority order
// until the queue is empty. Stopping early leaves the remaining entries in
// the queue.
func (q *Queue[K, V]) Drain() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for {
			key, value, ok := q.Pop()
			if !ok || !yield(key, value) {
				return
			}
		}
	}
}

// removeAt detaches the entry at index i from the heap, filling the hole
// with the last entry and re-sifting it in both directions.
func (q *Queue[K, V]) removeAt(i int) {
	last := len(q.entries) - 1
	if i != last {
		q.swap(i, last)
	}
	q.entries[last] = nil
	q.entries = q.entries[:last]
	if i < last {
		q.down(i)
		q.up(i)
	}
}

// swap exchanges the entries at index i and j, keeping their positions in
// sync.
func (q *Queue[K, V]) swap(i, j int) {
	q.entries[i], q.entries[j] = q.entries[j], q.entries[i]
	q.entries[i].index = i
	q.entries[j].index = j
}

// rank compares the entries at index i and j.
func (q *Queue[K, V]) rank(i, j int) bool {
	return q.less(q.entries[i].value, q.entries[j].value)
}

// up moves the entry at index i toward the root until its parent outranks
// it or it becomes the root.
func (q *Queue[K, V]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.rank(i, parent) {
			break
		}
		q.swap(i, parent)
		i = parent
	}
}

// down moves the entry at index i toward the leaves, swapping with its
// highest ranking child, until neither child outranks it.
func (q *Queue[K, V]) down(i int) {
	n := len(q.entries)
	for {
		best := i
		if left := 2*i + 1; left < n && q.rank(left, best) {
			best = left
		}
		if right := 2*i + 2; right < n && q.rank(right, best) {
			best = right
		}
		if best == i {
			return
		}
		q.swap(i, best)
		i = best
	}
}
