package keyed

import "github.com/davidvella/heapqueue"

// options defines all configuration options for a keyed queue.
type options struct {
	heapType heapqueue.Type // Orientation of the queue
}

// Option is a function that configures the queue options.
type Option func(*options)

// WithHeapType sets the orientation of the queue.
func WithHeapType(t heapqueue.Type) Option {
	return func(o *options) {
		o.heapType = t
	}
}

func buildOptions(opts []Option) options {
	o := options{heapType: heapqueue.MinHeap}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
