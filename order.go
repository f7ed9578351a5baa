package heapqueue

import "cmp"

// Type defines the orientation of a queue: which end of the ordering is
// treated as the highest priority.
type Type int

const (
	// MinHeap keeps the smallest priority at the top of the queue.
	MinHeap Type = iota
	// MaxHeap keeps the largest priority at the top of the queue.
	MaxHeap
)

// LessFunc reports whether a outranks b, i.e. whether a should be served
// before b. It must describe a strict weak ordering; elements for which
// neither outranks the other are considered equal and may be served in any
// order.
type LessFunc[T any] func(a, b T) bool

// NaturalLess returns the ranking for a naturally ordered element type
// under the given orientation.
func NaturalLess[T cmp.Ordered](heapType Type) LessFunc[T] {
	if heapType == MaxHeap {
		return func(a, b T) bool { return cmp.Less(b, a) }
	}
	return func(a, b T) bool { return cmp.Less(a, b) }
}

// KeyLess returns the ranking derived from a key extractor under the given
// orientation. Keys are computed on every comparison and never cached, so
// the extractor must be cheap, deterministic and side-effect-free.
func KeyLess[T any, K cmp.Ordered](key func(T) K, heapType Type) LessFunc[T] {
	if heapType == MaxHeap {
		return func(a, b T) bool { return cmp.Less(key(b), key(a)) }
	}
	return func(a, b T) bool { return cmp.Less(key(a), key(b)) }
}

// OrientLess applies the orientation to a caller-supplied less function
// that defines the natural order of T.
func OrientLess[T any](less LessFunc[T], heapType Type) LessFunc[T] {
	if heapType == MaxHeap {
		return func(a, b T) bool { return less(b, a) }
	}
	return less
}
