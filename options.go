package heapqueue

// options defines all configuration options for a queue.
type options struct {
	heapType Type // Orientation of the queue
	capacity int  // Initial capacity of the backing store
}

// Option is a function that configures the queue options.
type Option func(*options)

// WithHeapType sets the orientation of the queue.
func WithHeapType(t Type) Option {
	return func(o *options) {
		o.heapType = t
	}
}

// WithCapacity pre-sizes the backing store for the expected number of
// elements, avoiding reallocation while the queue grows to that size.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		heapType: MinHeap,
		capacity: 0,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
