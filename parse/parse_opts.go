package parse

// DefaultMaxDepth bounds container nesting when no WithMaxDepth option
// is given. Deeply nested input fails with ErrTooDeep instead of
// exhausting the call stack.
const DefaultMaxDepth = 10000

type parseOpts struct {
	maxDepth int
}

type Option func(*parseOpts)

func WithMaxDepth(n int) Option {
	return func(o *parseOpts) { o.maxDepth = n }
}
