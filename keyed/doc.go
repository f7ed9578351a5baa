// Package keyed implements a priority queue whose entries are addressable
// by a unique key. It combines the binary heap of the parent package with a
// map from key to heap position, so priorities can be updated or entries
// removed by key in O(log n) while lookups stay O(1).
//
// Key features:
//   - Generic keys and values
//   - Min or max orientation, natural, derived-key or custom ordering
//   - O(log n) insert, update, remove and pop
//   - O(1) peek and key lookup
//   - Destructive iteration via iter.Seq2
//
// Basic usage:
//
//	// Smallest value on top, string keys
//	q := keyed.New[string, int]()
//	q.Set("a", 5)
//	q.Set("b", 3)
//	q.Set("a", 1) // update re-ranks the entry
//
//	key, value, ok := q.Pop() // "a", 1, true
//
// Accessors return ok-bools rather than errors: a missing key or an empty
// queue is a normal outcome for keyed access, not a failure.
//
// A Queue is not safe for concurrent use.
package keyed
