// Package heapqueue implements a generic priority queue backed by an
// array-based binary heap. Every element has a priority derived from the
// element itself, and the queue's orientation decides whether the smallest
// or the largest priority sits at the top.
//
// Ordering is supplied at construction time and never lives inside the
// element type: a queue is built from the natural ordering of an ordered
// type, from a key extractor that derives an ordered value from each
// element, or from an explicit less function. The same element type can
// therefore back several differently-ordered queues at once.
//
// Key features:
//   - Generic implementation for any element type
//   - Min or max orientation selected per queue
//   - Key-extractor ordering without touching the element type
//   - O(log n) push and pop, O(1) peek, O(n) bulk loading
//   - Destructive and non-destructive iteration via iter.Seq
//
// Basic usage:
//
//	// Natural ordering, smallest value on top
//	q := heapqueue.New[int]()
//	q.PushAll(5, 1, 3)
//	v, _ := q.Pop() // 1
//
//	// Largest value on top
//	q = heapqueue.New[int](heapqueue.WithHeapType(heapqueue.MaxHeap))
//	q.PushAll(5, 1, 3)
//	v, _ = q.Pop() // 5
//
//	// Order structs by a derived key
//	type job struct{ deadline int64 }
//	jobs := heapqueue.NewWithKey(func(j job) int64 { return j.deadline })
//	jobs.Push(job{deadline: 42})
//
// Ties between equal priorities are broken arbitrarily by heap position.
// Callers that need deterministic tie-breaking should fold a secondary
// discriminant into the key, or use NewFunc with a less function that
// compares the discriminant after the priority.
//
// A Queue is not safe for concurrent use; callers sharing one across
// goroutines must serialize access themselves.
package heapqueue
