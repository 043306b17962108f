package ordmap

// Op labels the structural mutations reported through Metrics.
type Op int

const (
	// OpInsert — a new key was appended.
	OpInsert Op = iota
	// OpUpdate — an existing key's value was overwritten in place.
	OpUpdate
	// OpDelete — a key was removed by Delete.
	OpDelete
	// OpMove — an entry was repositioned by MoveToFront/MoveToBack.
	OpMove
	// OpPop — an entry was removed by PopFront/PopBack.
	OpPop
	// OpClear — all entries were removed at once by Clear.
	OpClear
)

// Metrics exposes container-level observability hooks.
// A NoopMetrics implementation is provided and used by default.
type Metrics interface {
	Hit()
	Miss()
	Mutate(op Op)
	Size(entries int)
}

// NoopMetrics is a drop-in Metrics implementation that does nothing.
// It is the default when no observability backend is configured.
type NoopMetrics struct{}

func (NoopMetrics) Hit()        {}
func (NoopMetrics) Miss()       {}
func (NoopMetrics) Mutate(Op)   {}
func (NoopMetrics) Size(int)    {}

// Ensure NoopMetrics implements the Metrics interface at compile time.
var _ Metrics = NoopMetrics{}
