package heapqueue

import (
	"cmp"
	"errors"
	"iter"
	"slices"
)

var (
	// ErrEmptyQueue is returned by Pop and Peek when the queue holds no
	// elements.
	ErrEmptyQueue = errors.New("heapqueue: empty queue")
	// ErrNegativeCount is returned by PopK when asked for a negative
	// number of elements.
	ErrNegativeCount = errors.New("heapqueue: negative element count")
)

// Queue is a priority queue over elements of type T. The zero value is not
// usable; construct queues with New, NewWithKey or NewFunc.
type Queue[T any] struct {
	items []T
	less  LessFunc[T]
}

// New creates an empty queue ordered by the natural ordering of T.
func New[T cmp.Ordered](opts ...Option) *Queue[T] {
	o := buildOptions(opts)
	return &Queue[T]{
		items: make([]T, 0, o.capacity),
		less:  NaturalLess[T](o.heapType),
	}
}

// NewWithKey creates an empty queue ordered by the key derived from each
// element. The extractor is called on demand during comparisons; its results
// are never cached.
func NewWithKey[T any, K cmp.Ordered](key func(T) K, opts ...Option) *Queue[T] {
	o := buildOptions(opts)
	return &Queue[T]{
		items: make([]T, 0, o.capacity),
		less:  KeyLess(key, o.heapType),
	}
}

// NewFunc creates an empty queue ordered by an explicit less function
// defining the natural order of T. The orientation option still applies:
// under MaxHeap the greatest element according to less is served first.
func NewFunc[T any](less LessFunc[T], opts ...Option) *Queue[T] {
	o := buildOptions(opts)
	return &Queue[T]{
		items: make([]T, 0, o.capacity),
		less:  OrientLess(less, o.heapType),
	}
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int {
	return len(q.items)
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool {
	return len(q.items) == 0
}

// Push adds an element to the queue.
func (q *Queue[T]) Push(item T) {
	q.items = append(q.items, item)
	q.up(len(q.items) - 1)
}

// PushAll adds all given elements to the queue. When the batch is at least
// as large as the current size the elements are appended in one go and the
// whole store is re-heapified, which costs O(n) instead of O(k log n).
func (q *Queue[T]) PushAll(items ...T) {
	if len(items) == 0 {
		return
	}
	if len(items) >= len(q.items) {
		q.items = append(q.items, items...)
		q.heapify()
		return
	}
	for _, item := range items {
		q.Push(item)
	}
}

// Pop removes and returns the highest priority element. It returns
// ErrEmptyQueue, leaving the queue untouched, when no elements exist.
func (q *Queue[T]) Pop() (T, error) {
	if len(q.items) == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}

	n := len(q.items) - 1
	top := q.items[0]
	q.items[0] = q.items[n]

	// Zero the vacated slot so the store does not pin the popped element.
	var zero T
	q.items[n] = zero
	q.items = q.items[:n]

	if n > 0 {
		q.down(0)
	}
	return top, nil
}

// PopK removes and returns up to k elements in priority order. Asking for
// more elements than the queue holds drains it without error; asking for a
// negative number returns ErrNegativeCount and removes nothing.
func (q *Queue[T]) PopK(k int) ([]T, error) {
	if k < 0 {
		return nil, ErrNegativeCount
	}
	if k > len(q.items) {
		k = len(q.items)
	}

	result := make([]T, 0, k)
	for i := 0; i < k; i++ {
		item, err := q.Pop()
		if err != nil {
			return result, err
		}
		result = append(result, item)
	}
	return result, nil
}

// Peek returns the highest priority element without removing it. It returns
// ErrEmptyQueue when no elements exist.
func (q *Queue[T]) Peek() (T, error) {
	if len(q.items) == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	return q.items[0], nil
}

// AsSortedSlice returns all current elements in priority order. The queue
// itself is left unmutated: the sort runs on a duplicate of the backing
// store.
func (q *Queue[T]) AsSortedSlice() []T {
	dup := Queue[T]{items: slices.Clone(q.items), less: q.less}
	result := make([]T, 0, len(dup.items))
	for len(dup.items) > 0 {
		item, _ := dup.Pop()
		result = append(result, item)
	}
	return result
}

// All returns a non-destructive iterator over the elements in priority
// order. The queue may be mutated freely once All returns; the iterator
// walks a duplicate of the store taken at call time.
func (q *Queue[T]) All() iter.Seq[T] {
	dup := Queue[T]{items: slices.Clone(q.items), less: q.less}
	return func(yield func(T) bool) {
		for len(dup.items) > 0 {
			item, _ := dup.Pop()
			if !yield(item) {
				return
			}
		}
	}
}

// Drain returns a destructive iterator that pops elements in priority order
// until the queue is empty. Stopping early leaves the remaining elements in
// the queue.
func (q *Queue[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for len(q.items) > 0 {
			item, _ := q.Pop()
			if !yield(item) {
				return
			}
		}
	}
}

// up moves the element at index i toward the root until its parent outranks
// it or it becomes the root.
func (q *Queue[T]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.less(q.items[i], q.items[parent]) {
			break
		}
		q.items[i], q.items[parent] = q.items[parent], q.items[i]
		i = parent
	}
}

// down moves the element at index i toward the leaves, swapping with its
// highest ranking child, until neither child outranks it.
func (q *Queue[T]) down(i int) {
	n := len(q.items)
	for {
		best := i
		if left := 2*i + 1; left < n && q.less(q.items[left], q.items[best]) {
			best = left
		}
		if right := 2*i + 2; right < n && q.less(q.items[right], q.items[best]) {
			best = right
		}
		if best == i {
			return
		}
		q.items[i], q.items[best] = q.items[best], q.items[i]
		i = best
	}
}

// heapify restores the heap property over the whole store bottom-up. Nodes
// past n/2-1 are leaves and already satisfy it, so the total work is O(n).
func (q *Queue[T]) heapify() {
	for i := len(q.items)/2 - 1; i >= 0; i-- {
		q.down(i)
	}
}
