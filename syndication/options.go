package syndication

// Default parser limits. Feed fragments are small; these are generous.
const (
	// DefaultMaxDepth is the default element nesting depth limit.
	DefaultMaxDepth = 128
	// DefaultMaxFragmentBytes is the default fragment size limit.
	DefaultMaxFragmentBytes = 10 << 20 // 10 MiB
)

// Option configures fragment parsing behavior.
type Option func(*Options)

// Options configures fragment parsing behavior.
type Options struct {
	// MaxDepth limits element nesting depth for untrusted input.
	MaxDepth int
	// MaxFragmentBytes limits the total bytes consumed from the input.
	MaxFragmentBytes int64
}

// OptMaxDepth sets the maximum element nesting depth.
func OptMaxDepth(maxDepth int) Option {
	return func(opts *Options) {
		opts.MaxDepth = maxDepth
	}
}

// OptMaxFragmentBytes sets the maximum number of input bytes consumed.
func OptMaxFragmentBytes(maxBytes int64) Option {
	return func(opts *Options) {
		opts.MaxFragmentBytes = maxBytes
	}
}

func defaultOptions() Options {
	return Options{
		MaxDepth:         DefaultMaxDepth,
		MaxFragmentBytes: DefaultMaxFragmentBytes,
	}
}
