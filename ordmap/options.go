package ordmap

// Options configures a Map. Zero values are safe; sane defaults are
// applied in New():
//   - Capacity <= 0 => small default
//   - nil Hasher    => seeded xxh3-based hash for common key types
//   - nil Metrics   => NoopMetrics
//   - nil ValueEqual => reflect.DeepEqual
type Options[K comparable, V any] struct {
	// Capacity is a size hint: node storage and the key index are
	// pre-sized for this many entries. The map grows past it freely.
	Capacity int

	// Hasher overrides the 64-bit key hash used by the index. Required
	// for key types the default hasher does not support (it panics on
	// them rather than hash poorly).
	Hasher func(K) uint64

	// Seed perturbs the default hasher so separate map instances probe
	// in different orders. 0 means pick a random seed. Ignored when
	// Hasher is set; fix it explicitly for reproducible layouts in tests.
	Seed uint64

	// ValueEqual is the value comparison used by Equal. Nil means
	// reflect.DeepEqual, which handles unconstrained V but costs
	// reflection; supply == for comparable value types on hot paths.
	ValueEqual func(a, b V) bool

	// Observability
	// Metrics receives Hit/Miss/Mutate/Size signals.
	Metrics Metrics
}
