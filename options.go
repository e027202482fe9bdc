package position

// Option configures a Hierarchy or Builder during creation.
//
// Example:
//
//	// Room for a 10K node scene about 8 levels deep.
//	h := position.New(position.WithCapacity(10000), position.WithDepth(8))
type Option func(*options)

// options holds optional configuration for Hierarchy and Builder creation.
type options struct {
	capacity int
	depth    int
}

// defaultOptions returns the default options: room for the root only.
func defaultOptions() options {
	return options{
		capacity: 1,
		depth:    1,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithCapacity preallocates room for n nodes, the root included.
// Values smaller than 1 are ignored.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// WithDepth preallocates room for n generations, the root generation included.
// Values smaller than 1 are ignored.
func WithDepth(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.depth = n
		}
	}
}
