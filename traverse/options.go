package traverse

// PushPolicy controls how the DFS kernel treats vertices that are already on
// the stack.
type PushPolicy uint8

const (
	// PushAll pushes every unvisited neighbor, even one already on the
	// stack. The stack may grow past the vertex count on dense graphs.
	PushAll PushPolicy = iota

	// PushUnique pushes each vertex at most once per traversal. The stack is
	// bounded by the vertex count, but the discovery order can differ from
	// PushAll because a vertex is not moved to the top when it is seen again.
	PushUnique
)

// String returns the flag spelling of p.
func (p PushPolicy) String() string {
	switch p {
	case PushAll:
		return "all"
	case PushUnique:
		return "unique"
	default:
		return "unknown"
	}
}

// Option configures a Traverser.
type Option func(o *options)

type options struct {
	pushPolicy PushPolicy
	capacity   int
}

var defaultOptions = options{
	pushPolicy: PushAll,
}

// WithPushPolicy sets the DFS push policy. The default is PushAll.
func WithPushPolicy(p PushPolicy) Option {
	return func(o *options) {
		o.pushPolicy = p
	}
}

// WithCapacity preallocates work lists for graphs of n vertices.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}
