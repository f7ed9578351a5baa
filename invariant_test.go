package heapqueue

import (
	"math/rand"
	"testing"
)

// checkHeap verifies that no element outranks its parent.
func checkHeap[T any](t *testing.T, q *Queue[T]) {
	t.Helper()
	for i := 1; i < len(q.items); i++ {
		parent := (i - 1) / 2
		if q.less(q.items[i], q.items[parent]) {
			t.Fatalf("heap property violated at index %d: %v outranks parent %v",
				i, q.items[i], q.items[parent])
		}
	}
}

func TestHeapPropertyAfterRandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, heapType := range []Type{MinHeap, MaxHeap} {
		q := New[int](WithHeapType(heapType))

		for i := 0; i < 2000; i++ {
			switch rng.Intn(5) {
			case 0, 1:
				q.Push(rng.Intn(1000))
			case 2:
				batch := make([]int, rng.Intn(20))
				for j := range batch {
					batch[j] = rng.Intn(1000)
				}
				q.PushAll(batch...)
			case 3:
				_, _ = q.Pop()
			case 4:
				_, _ = q.PopK(rng.Intn(5))
			}
			checkHeap(t, q)
		}
	}
}

func TestHeapifyBuildsValidHeap(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	for _, n := range []int{0, 1, 2, 3, 7, 8, 100, 1023} {
		items := make([]int, n)
		for i := range items {
			items[i] = rng.Intn(100)
		}

		q := New[int]()
		q.PushAll(items...)
		checkHeap(t, q)
	}
}

func TestPopReleasesTailSlot(t *testing.T) {
	q := NewFunc(func(a, b *int) bool { return *a < *b })
	v := 1
	q.Push(&v)

	_, err := q.Pop()
	if err != nil {
		t.Fatal(err)
	}
	if got := q.items[:1][0]; got != nil {
		t.Errorf("vacated slot still holds %v, want nil", got)
	}
}
